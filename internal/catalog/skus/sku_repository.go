package skus

import (
	"shoperp/internal/repository"
	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type SKURepository interface {
	GetSKURows() (*[]models.SKU, error)
	GetSKUByID(skuID int) (*models.SKU, error)
	GetSKURowsByProductIDs(productIDs []int) (*[]models.SKU, error)
	InsertSKU(tx *goqu.TxDatabase, req SKURequest) (*models.SKU, error)
	InsertInventoryRow(tx *goqu.TxDatabase, skuID, initialQuantity, minimumStockLevel int, maximumStockLevel *int) error
	UpdateSKU(skuID int, req UpdateSKURequest) (*models.SKU, error)
	DeleteSKUCascade(tx *goqu.TxDatabase, skuID int) error
}

type skuRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) SKURepository {
	return &skuRepository{Repo: r}
}

func skuListQuery(db *goqu.Database) *goqu.SelectDataset {
	return db.
		Select(
			goqu.I("s.id").As("id"),
			goqu.I("s.product_id").As("product_id"),
			goqu.I("s.sku_code").As("sku_code"),
			goqu.I("s.variant_name").As("variant_name"),
			goqu.I("s.cost_price").As("cost_price"),
			goqu.I("s.selling_price").As("selling_price"),
			goqu.I("s.tax_percentage").As("tax_percentage"),
			goqu.I("s.is_active").As("is_active"),
			goqu.I("s.created_at").As("created_at"),
			goqu.I("p.name").As("product_name"),
			goqu.I("p.description").As("product_description"),
			goqu.I("c.name").As("category_name"),
			goqu.I("i.quantity").As("quantity"),
			goqu.I("i.minimum_stock_level").As("minimum_stock_level"),
			goqu.I("i.maximum_stock_level").As("maximum_stock_level"),
		).
		From(goqu.T("skus").As("s")).
		Join(goqu.T("products").As("p"), goqu.On(goqu.Ex{"s.product_id": goqu.I("p.id")})).
		LeftJoin(goqu.T("categories").As("c"), goqu.On(goqu.Ex{"p.category_id": goqu.I("c.id")})).
		LeftJoin(goqu.T("inventory").As("i"), goqu.On(goqu.Ex{"s.id": goqu.I("i.sku_id")}))
}

func (r *skuRepository) GetSKURows() (*[]models.SKU, error) {
	var rows []models.SKU

	query := skuListQuery(r.Repo.GoquDBWrapper).
		Order(goqu.I("s.created_at").Desc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("skus", err)
	}

	return &rows, nil
}

func (r *skuRepository) GetSKUByID(skuID int) (*models.SKU, error) {
	var row models.SKU

	query := skuListQuery(r.Repo.GoquDBWrapper).
		Where(goqu.Ex{"s.id": skuID})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, custom_error.TranslateDBError("sku", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("sku")
	}

	return &row, nil
}

func (r *skuRepository) GetSKURowsByProductIDs(productIDs []int) (*[]models.SKU, error) {
	rows := []models.SKU{}
	if len(productIDs) == 0 {
		return &rows, nil
	}

	query := skuListQuery(r.Repo.GoquDBWrapper).
		Where(goqu.Ex{"s.product_id": productIDs}).
		Order(goqu.I("s.id").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("skus", err)
	}

	return &rows, nil
}

func (r *skuRepository) InsertSKU(tx *goqu.TxDatabase, req SKURequest) (*models.SKU, error) {
	var sku models.SKU

	taxPercentage := 0.0
	if req.TaxPercentage != nil {
		taxPercentage = *req.TaxPercentage
	}

	query := tx.Insert("skus").
		Rows(goqu.Record{
			"product_id":     req.ProductID,
			"sku_code":       req.SkuCode,
			"variant_name":   req.VariantName,
			"cost_price":     *req.CostPrice,
			"selling_price":  *req.SellingPrice,
			"tax_percentage": taxPercentage,
		}).
		Returning("id", "product_id", "sku_code", "variant_name", "cost_price", "selling_price", "tax_percentage", "is_active", "created_at")

	if _, err := query.Executor().ScanStruct(&sku); err != nil {
		return nil, custom_error.TranslateDBError("sku", err)
	}

	return &sku, nil
}

func (r *skuRepository) InsertInventoryRow(tx *goqu.TxDatabase, skuID, initialQuantity, minimumStockLevel int, maximumStockLevel *int) error {
	query := tx.Insert("inventory").
		Rows(goqu.Record{
			"sku_id":              skuID,
			"quantity":            initialQuantity,
			"minimum_stock_level": minimumStockLevel,
			"maximum_stock_level": maximumStockLevel,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return custom_error.TranslateDBError("inventory", err)
	}

	return nil
}

func (r *skuRepository) UpdateSKU(skuID int, req UpdateSKURequest) (*models.SKU, error) {
	var sku models.SKU

	query := r.Repo.GoquDBWrapper.Update("skus").
		Set(goqu.Record{
			"sku_code":       goqu.L("COALESCE(?, sku_code)", req.SkuCode),
			"variant_name":   goqu.L("COALESCE(?, variant_name)", req.VariantName),
			"cost_price":     goqu.L("COALESCE(?, cost_price)", req.CostPrice),
			"selling_price":  goqu.L("COALESCE(?, selling_price)", req.SellingPrice),
			"tax_percentage": goqu.L("COALESCE(?, tax_percentage)", req.TaxPercentage),
			"is_active":      goqu.L("COALESCE(?, is_active)", req.IsActive),
		}).
		Where(goqu.Ex{"id": skuID}).
		Returning("id", "product_id", "sku_code", "variant_name", "cost_price", "selling_price", "tax_percentage", "is_active", "created_at")

	found, err := query.Executor().ScanStruct(&sku)
	if err != nil {
		return nil, custom_error.TranslateDBError("sku", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("sku")
	}

	return &sku, nil
}

// DeleteSKUCascade removes a SKU together with everything hanging off
// it. The order matters: ledger rows first, the SKU row last, so a
// failure partway leaves the transaction to roll the whole thing back.
func (r *skuRepository) DeleteSKUCascade(tx *goqu.TxDatabase, skuID int) error {
	dependents := []string{"stock_alerts", "stock_movements", "inventory_batches", "inventory"}
	for _, table := range dependents {
		if _, err := tx.Delete(table).Where(goqu.Ex{"sku_id": skuID}).Executor().Exec(); err != nil {
			return custom_error.TranslateDBError(table, err)
		}
	}

	result, err := tx.Delete("skus").Where(goqu.Ex{"id": skuID}).Executor().Exec()
	if err != nil {
		return custom_error.TranslateDBError("sku", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return custom_error.TranslateDBError("sku", err)
	}
	if affected == 0 {
		return custom_error.NewNotFoundError("sku")
	}

	return nil
}
