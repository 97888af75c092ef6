package cmd

import (
	"fmt"
	"os"

	"shoperp/internal/config"
	"shoperp/internal/database/migration"
	"shoperp/internal/logger"

	"github.com/spf13/cobra"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations manually.",
	Long:  `Applies any pending schema migrations and exits.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		migrationDir, _ := cmd.Flags().GetString("dir")
		if migrationDir == "" {
			migrationDir = cfg.Database.MigrationsDir
		}

		err = migration.Migrate(
			cfg.Database.URL,
			fmt.Sprintf("file://%s", migrationDir),
			true,
			logger.NewLogger(cfg.Log.Level),
		)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "shoperp",
		Short: "Shop ERP inventory service",
	}
	MigrateCmd.Flags().String("dir", "", "Directory containing the migration files")
	rootCmd.AddCommand(MigrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
