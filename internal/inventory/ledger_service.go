package inventory

import (
	"fmt"
	"time"

	"shoperp/internal/repository"
	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/metadata"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type txRunner interface {
	WithTransaction(fn func(tx *goqu.TxDatabase) error) error
}

// MovementResult pairs the appended ledger entry with the inventory row
// it produced.
type MovementResult struct {
	Movement  *models.StockMovement `json:"movement"`
	Inventory *models.Inventory     `json:"inventory"`
}

// LedgerService maintains the on-hand-quantity invariant: the inventory
// row for a SKU always equals its initial quantity plus the sum of
// signed movement deltas, as observed at any transaction boundary.
type LedgerService struct {
	runner txRunner
	repo   LedgerRepository
	now    func() time.Time
}

func NewLedgerService(runner txRunner, repo LedgerRepository) *LedgerService {
	return &LedgerService{
		runner: runner,
		repo:   repo,
		now:    time.Now,
	}
}

// RecordMovement appends a movement, applies its signed delta to the
// on-hand quantity and raises a threshold alert when the post-update
// quantity sits at or below the reorder level. The three writes are one
// atomic unit; a missing inventory row rolls everything back.
func (s *LedgerService) RecordMovement(req MovementRequest) (*MovementResult, error) {
	kind, err := metadata.NewMovementKind(req.MovementType)
	if err != nil {
		return nil, custom_error.NewValidationError("%s", err.Error())
	}
	if req.Quantity <= 0 {
		return nil, custom_error.NewValidationError("quantity must be a positive number")
	}

	var result MovementResult

	err = s.runner.WithTransaction(func(tx *goqu.TxDatabase) error {
		movement, err := s.repo.InsertMovement(tx, req, kind)
		if err != nil {
			return err
		}

		inv, err := s.repo.ApplyQuantityDelta(tx, req.SkuID, kind.Delta(req.Quantity))
		if err != nil {
			return err
		}

		// The threshold check reads the post-update quantity returned by
		// the UPDATE itself, inside the same transaction, so concurrent
		// writers cannot make it alert on stale data.
		if inv.Quantity <= inv.MinimumStockLevel {
			message := fmt.Sprintf("Stock level is %d after %s movement", inv.Quantity, kind)
			if err := s.repo.InsertAlert(tx, req.SkuID, metadata.ThresholdAlertKind(inv.Quantity), message); err != nil {
				return err
			}
		}

		result.Movement = movement
		result.Inventory = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateBatch records a received lot. A batch expiring within the
// 30-day window additionally raises an EXPIRING_SOON alert in the same
// transaction. Existing unresolved alerts are not consulted, so nearby
// batches can raise duplicates; resolution is a user action.
func (s *LedgerService) CreateBatch(req BatchRequest) (*models.InventoryBatch, error) {
	manufacturingDate, err := parseDate(req.ManufacturingDate)
	if err != nil {
		return nil, err
	}
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	receivedDate, err := parseDate(req.ReceivedDate)
	if err != nil {
		return nil, err
	}

	var batch *models.InventoryBatch

	err = s.runner.WithTransaction(func(tx *goqu.TxDatabase) error {
		batch, err = s.repo.InsertBatch(tx, req, manufacturingDate, expiryDate, receivedDate)
		if err != nil {
			return err
		}

		if expiryDate != nil && !expiryDate.After(s.now().Add(metadata.ExpiryWindow)) {
			message := fmt.Sprintf("Batch %s expires on %s", req.BatchNumber, expiryDate.Format("2006-01-02"))
			if err := s.repo.InsertAlert(tx, req.SkuID, metadata.AlertExpiringSoon, message); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch, nil
}

// UpdateLevels is a direct override of the inventory row: it bypasses
// the movement log, so the log only reconciles with movement-driven
// changes. After the update the threshold is re-evaluated against the
// new quantity/minimum pairing.
func (s *LedgerService) UpdateLevels(skuID int, req UpdateLevelsRequest) (*models.Inventory, error) {
	inv, err := s.repo.UpdateInventoryLevels(skuID, req)
	if err != nil {
		return nil, err
	}

	if inv.Quantity <= inv.MinimumStockLevel {
		message := fmt.Sprintf("Stock level is %d", inv.Quantity)
		if err := s.repo.InsertThresholdAlertIfAbsent(skuID, metadata.ThresholdAlertKind(inv.Quantity), message); err != nil {
			return nil, err
		}
	}

	inv.StockStatus = metadata.StockStatusFor(inv.Quantity, inv.MinimumStockLevel)
	return inv, nil
}

func (s *LedgerService) ListInventory() (*[]models.Inventory, error) {
	rows, err := s.repo.GetInventoryRows()
	if err != nil {
		return nil, err
	}

	for i := range *rows {
		row := &(*rows)[i]
		row.StockStatus = metadata.StockStatusFor(row.Quantity, row.MinimumStockLevel)
	}

	return rows, nil
}

func (s *LedgerService) GetInventory(skuID int) (*models.Inventory, error) {
	row, err := s.repo.GetInventoryBySkuID(skuID)
	if err != nil {
		return nil, err
	}

	row.StockStatus = metadata.StockStatusFor(row.Quantity, row.MinimumStockLevel)
	return row, nil
}

func (s *LedgerService) ListMovements(skuID *int) (*[]models.StockMovement, error) {
	conditions := repository.NewQueryBuilder()
	if skuID != nil {
		conditions.AddCondition("sku_id", *skuID)
	}
	return s.repo.GetMovementRows(conditions)
}

func (s *LedgerService) ListBatches(skuID *int) (*[]models.InventoryBatch, error) {
	conditions := repository.NewQueryBuilder()
	if skuID != nil {
		conditions.AddCondition("sku_id", *skuID)
	}

	rows, err := s.repo.GetBatchRows(conditions)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range *rows {
		row := &(*rows)[i]
		row.BatchStatus = metadata.BatchStatusFor(row.ExpiryDate, now)
	}

	return rows, nil
}

func (s *LedgerService) ListAlerts(isResolved *bool) (*[]models.StockAlert, error) {
	conditions := repository.NewQueryBuilder()
	if isResolved != nil {
		conditions.AddCondition("is_resolved", *isResolved)
	}
	return s.repo.GetAlertRows(conditions)
}

func (s *LedgerService) ResolveAlert(alertID int) (*models.StockAlert, error) {
	return s.repo.ResolveAlert(alertID)
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, custom_error.NewValidationError("invalid date %q, expected YYYY-MM-DD", *value)
	}
	return &parsed, nil
}
