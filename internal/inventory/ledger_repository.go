package inventory

import (
	"time"

	"shoperp/internal/repository"
	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/metadata"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// movementListLimit caps the movement log listing; the log is
// append-only and unbounded.
const movementListLimit = 100

type LedgerRepository interface {
	GetInventoryRows() (*[]models.Inventory, error)
	GetInventoryBySkuID(skuID int) (*models.Inventory, error)
	UpdateInventoryLevels(skuID int, req UpdateLevelsRequest) (*models.Inventory, error)
	InsertThresholdAlertIfAbsent(skuID int, kind metadata.AlertKind, message string) error
	InsertMovement(tx *goqu.TxDatabase, req MovementRequest, kind metadata.MovementKind) (*models.StockMovement, error)
	ApplyQuantityDelta(tx *goqu.TxDatabase, skuID, delta int) (*models.Inventory, error)
	InsertAlert(tx *goqu.TxDatabase, skuID int, kind metadata.AlertKind, message string) error
	InsertBatch(tx *goqu.TxDatabase, req BatchRequest, manufacturingDate, expiryDate, receivedDate *time.Time) (*models.InventoryBatch, error)
	GetMovementRows(conditions repository.QueryBuilder) (*[]models.StockMovement, error)
	GetBatchRows(conditions repository.QueryBuilder) (*[]models.InventoryBatch, error)
	GetAlertRows(conditions repository.QueryBuilder) (*[]models.StockAlert, error)
	ResolveAlert(alertID int) (*models.StockAlert, error)
}

type ledgerRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) LedgerRepository {
	return &ledgerRepository{Repo: r}
}

func (r *ledgerRepository) GetInventoryRows() (*[]models.Inventory, error) {
	var rows []models.Inventory

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("i.id").As("id"),
			goqu.I("i.sku_id").As("sku_id"),
			goqu.I("i.quantity").As("quantity"),
			goqu.I("i.minimum_stock_level").As("minimum_stock_level"),
			goqu.I("i.maximum_stock_level").As("maximum_stock_level"),
			goqu.I("s.sku_code").As("sku_code"),
			goqu.I("s.variant_name").As("variant_name"),
			goqu.I("s.selling_price").As("selling_price"),
			goqu.I("p.name").As("product_name"),
			goqu.I("c.name").As("category_name"),
		).
		From(goqu.T("inventory").As("i")).
		Join(goqu.T("skus").As("s"), goqu.On(goqu.Ex{"i.sku_id": goqu.I("s.id")})).
		Join(goqu.T("products").As("p"), goqu.On(goqu.Ex{"s.product_id": goqu.I("p.id")})).
		LeftJoin(goqu.T("categories").As("c"), goqu.On(goqu.Ex{"p.category_id": goqu.I("c.id")})).
		Order(goqu.I("i.quantity").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("inventory", err)
	}

	return &rows, nil
}

func (r *ledgerRepository) GetInventoryBySkuID(skuID int) (*models.Inventory, error) {
	var row models.Inventory

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("i.id").As("id"),
			goqu.I("i.sku_id").As("sku_id"),
			goqu.I("i.quantity").As("quantity"),
			goqu.I("i.minimum_stock_level").As("minimum_stock_level"),
			goqu.I("i.maximum_stock_level").As("maximum_stock_level"),
			goqu.I("s.sku_code").As("sku_code"),
			goqu.I("s.variant_name").As("variant_name"),
			goqu.I("p.name").As("product_name"),
		).
		From(goqu.T("inventory").As("i")).
		Join(goqu.T("skus").As("s"), goqu.On(goqu.Ex{"i.sku_id": goqu.I("s.id")})).
		Join(goqu.T("products").As("p"), goqu.On(goqu.Ex{"s.product_id": goqu.I("p.id")})).
		Where(goqu.Ex{"i.sku_id": skuID})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, custom_error.TranslateDBError("inventory", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("inventory")
	}

	return &row, nil
}

func (r *ledgerRepository) UpdateInventoryLevels(skuID int, req UpdateLevelsRequest) (*models.Inventory, error) {
	var row models.Inventory

	query := r.Repo.GoquDBWrapper.Update("inventory").
		Set(goqu.Record{
			"quantity":            goqu.L("COALESCE(?, quantity)", req.Quantity),
			"minimum_stock_level": goqu.L("COALESCE(?, minimum_stock_level)", req.MinimumStockLevel),
			"maximum_stock_level": goqu.L("COALESCE(?, maximum_stock_level)", req.MaximumStockLevel),
		}).
		Where(goqu.Ex{"sku_id": skuID}).
		Returning("id", "sku_id", "quantity", "minimum_stock_level", "maximum_stock_level")

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, custom_error.TranslateDBError("inventory", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("inventory")
	}

	return &row, nil
}

// InsertThresholdAlertIfAbsent is the one guarded alert call site: the
// insert backs off on conflict instead of erroring. The other call
// sites insert unconditionally.
func (r *ledgerRepository) InsertThresholdAlertIfAbsent(skuID int, kind metadata.AlertKind, message string) error {
	query := r.Repo.GoquDBWrapper.Insert("stock_alerts").
		Rows(goqu.Record{
			"sku_id":     skuID,
			"alert_type": kind.String(),
			"message":    message,
		}).
		OnConflict(goqu.DoNothing())

	if _, err := query.Executor().Exec(); err != nil {
		return custom_error.TranslateDBError("stock alert", err)
	}

	return nil
}

func (r *ledgerRepository) InsertMovement(tx *goqu.TxDatabase, req MovementRequest, kind metadata.MovementKind) (*models.StockMovement, error) {
	var movement models.StockMovement

	query := tx.Insert("stock_movements").
		Rows(goqu.Record{
			"sku_id":           req.SkuID,
			"batch_id":         req.BatchID,
			"movement_type":    kind.String(),
			"quantity":         req.Quantity,
			"reference_number": req.ReferenceNumber,
			"notes":            req.Notes,
		}).
		Returning("id", "sku_id", "batch_id", "movement_type", "quantity", "reference_number", "notes", "created_at")

	if _, err := query.Executor().ScanStruct(&movement); err != nil {
		return nil, custom_error.TranslateDBError("stock movement", err)
	}

	return &movement, nil
}

// ApplyQuantityDelta performs the read-modify-write of the on-hand
// quantity as one UPDATE, so the returned row is the post-update state
// observed inside the caller's transaction.
func (r *ledgerRepository) ApplyQuantityDelta(tx *goqu.TxDatabase, skuID, delta int) (*models.Inventory, error) {
	var row models.Inventory

	query := tx.Update("inventory").
		Set(goqu.Record{"quantity": goqu.L("quantity + ?", delta)}).
		Where(goqu.Ex{"sku_id": skuID}).
		Returning("id", "sku_id", "quantity", "minimum_stock_level", "maximum_stock_level")

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, custom_error.TranslateDBError("inventory", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("inventory")
	}

	return &row, nil
}

func (r *ledgerRepository) InsertAlert(tx *goqu.TxDatabase, skuID int, kind metadata.AlertKind, message string) error {
	query := tx.Insert("stock_alerts").
		Rows(goqu.Record{
			"sku_id":     skuID,
			"alert_type": kind.String(),
			"message":    message,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return custom_error.TranslateDBError("stock alert", err)
	}

	return nil
}

func (r *ledgerRepository) InsertBatch(tx *goqu.TxDatabase, req BatchRequest, manufacturingDate, expiryDate, receivedDate *time.Time) (*models.InventoryBatch, error) {
	var batch models.InventoryBatch

	query := tx.Insert("inventory_batches").
		Rows(goqu.Record{
			"sku_id":             req.SkuID,
			"batch_number":       req.BatchNumber,
			"quantity":           req.Quantity,
			"manufacturing_date": manufacturingDate,
			"expiry_date":        expiryDate,
			"received_date":      receivedDate,
		}).
		Returning("id", "sku_id", "batch_number", "quantity", "manufacturing_date", "expiry_date", "received_date")

	if _, err := query.Executor().ScanStruct(&batch); err != nil {
		return nil, custom_error.TranslateDBError("inventory batch", err)
	}

	return &batch, nil
}

func (r *ledgerRepository) GetMovementRows(conditions repository.QueryBuilder) (*[]models.StockMovement, error) {
	var rows []models.StockMovement

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("sm.id").As("id"),
			goqu.I("sm.sku_id").As("sku_id"),
			goqu.I("sm.batch_id").As("batch_id"),
			goqu.I("sm.movement_type").As("movement_type"),
			goqu.I("sm.quantity").As("quantity"),
			goqu.I("sm.reference_number").As("reference_number"),
			goqu.I("sm.notes").As("notes"),
			goqu.I("sm.created_at").As("created_at"),
			goqu.I("s.sku_code").As("sku_code"),
			goqu.I("p.name").As("product_name"),
			goqu.I("ib.batch_number").As("batch_number"),
		).
		From(goqu.T("stock_movements").As("sm")).
		Join(goqu.T("skus").As("s"), goqu.On(goqu.Ex{"sm.sku_id": goqu.I("s.id")})).
		Join(goqu.T("products").As("p"), goqu.On(goqu.Ex{"s.product_id": goqu.I("p.id")})).
		LeftJoin(goqu.T("inventory_batches").As("ib"), goqu.On(goqu.Ex{"sm.batch_id": goqu.I("ib.id")})).
		Order(goqu.I("sm.created_at").Desc()).
		Limit(movementListLimit)

	if conditions.HasConditions() {
		query = query.Where(conditions.BuildConditions(map[string]string{"sku_id": "sm.sku_id"}))
	}

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("stock movements", err)
	}

	return &rows, nil
}

func (r *ledgerRepository) GetBatchRows(conditions repository.QueryBuilder) (*[]models.InventoryBatch, error) {
	var rows []models.InventoryBatch

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("ib.id").As("id"),
			goqu.I("ib.sku_id").As("sku_id"),
			goqu.I("ib.batch_number").As("batch_number"),
			goqu.I("ib.quantity").As("quantity"),
			goqu.I("ib.manufacturing_date").As("manufacturing_date"),
			goqu.I("ib.expiry_date").As("expiry_date"),
			goqu.I("ib.received_date").As("received_date"),
			goqu.I("s.sku_code").As("sku_code"),
			goqu.I("p.name").As("product_name"),
		).
		From(goqu.T("inventory_batches").As("ib")).
		Join(goqu.T("skus").As("s"), goqu.On(goqu.Ex{"ib.sku_id": goqu.I("s.id")})).
		Join(goqu.T("products").As("p"), goqu.On(goqu.Ex{"s.product_id": goqu.I("p.id")})).
		Order(goqu.I("ib.expiry_date").Asc().NullsLast())

	if conditions.HasConditions() {
		query = query.Where(conditions.BuildConditions(map[string]string{"sku_id": "ib.sku_id"}))
	}

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("inventory batches", err)
	}

	return &rows, nil
}

func (r *ledgerRepository) GetAlertRows(conditions repository.QueryBuilder) (*[]models.StockAlert, error) {
	var rows []models.StockAlert

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("sa.id").As("id"),
			goqu.I("sa.sku_id").As("sku_id"),
			goqu.I("sa.alert_type").As("alert_type"),
			goqu.I("sa.message").As("message"),
			goqu.I("sa.is_resolved").As("is_resolved"),
			goqu.I("sa.created_at").As("created_at"),
			goqu.I("sa.resolved_at").As("resolved_at"),
			goqu.I("s.sku_code").As("sku_code"),
			goqu.I("p.name").As("product_name"),
			goqu.I("i.quantity").As("current_quantity"),
		).
		From(goqu.T("stock_alerts").As("sa")).
		Join(goqu.T("skus").As("s"), goqu.On(goqu.Ex{"sa.sku_id": goqu.I("s.id")})).
		Join(goqu.T("products").As("p"), goqu.On(goqu.Ex{"s.product_id": goqu.I("p.id")})).
		LeftJoin(goqu.T("inventory").As("i"), goqu.On(goqu.Ex{"s.id": goqu.I("i.sku_id")})).
		Order(goqu.I("sa.created_at").Desc())

	if conditions.HasConditions() {
		query = query.Where(conditions.BuildConditions(map[string]string{"is_resolved": "sa.is_resolved"}))
	}

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("stock alerts", err)
	}

	return &rows, nil
}

// ResolveAlert marks an alert handled. Re-resolving an already resolved
// alert succeeds and refreshes the resolution timestamp.
func (r *ledgerRepository) ResolveAlert(alertID int) (*models.StockAlert, error) {
	var alert models.StockAlert

	query := r.Repo.GoquDBWrapper.Update("stock_alerts").
		Set(goqu.Record{
			"is_resolved": true,
			"resolved_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.Ex{"id": alertID}).
		Returning("id", "sku_id", "alert_type", "message", "is_resolved", "created_at", "resolved_at")

	found, err := query.Executor().ScanStruct(&alert)
	if err != nil {
		return nil, custom_error.TranslateDBError("stock alert", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("stock alert")
	}

	return &alert, nil
}
