package container

import (
	"database/sql"

	"shoperp/internal/catalog/categories"
	"shoperp/internal/catalog/products"
	"shoperp/internal/catalog/skus"
	"shoperp/internal/inventory"
	"shoperp/internal/repository"

	"go.uber.org/zap"
)

type Container struct {
	Repository       *repository.Repository
	CategoryHandler  *categories.CategoryHandler
	ProductHandler   *products.ProductHandler
	SKUHandler       *skus.SKUHandler
	InventoryHandler *inventory.InventoryHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)

	categoryRepo := categories.NewRepository(repo)
	categoryHandler := categories.NewCategoryHandler(categoryRepo, log)

	skuRepo := skus.NewRepository(repo)
	skuService := skus.NewSKUService(repo, skuRepo)
	skuHandler := skus.NewSKUHandler(skuService, log)

	productRepo := products.NewRepository(repo)
	productService := products.NewProductService(repo, productRepo, skuRepo)
	productHandler := products.NewProductHandler(productService, log)

	ledgerRepo := inventory.NewRepository(repo)
	ledgerService := inventory.NewLedgerService(repo, ledgerRepo)
	inventoryHandler := inventory.NewInventoryHandler(ledgerService, log)

	return &Container{
		Repository:       repo,
		CategoryHandler:  categoryHandler,
		ProductHandler:   productHandler,
		SKUHandler:       skuHandler,
		InventoryHandler: inventoryHandler,
	}
}
