package products

import (
	"shoperp/internal/repository"
	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ProductRepository interface {
	GetProductRows() (*[]models.Product, error)
	GetProductByID(productID int) (*models.Product, error)
	InsertProduct(tx *goqu.TxDatabase, req ProductRequest) (*models.Product, error)
	UpdateProduct(productID int, req UpdateProductRequest) (*models.Product, error)
	DeleteProductCascade(tx *goqu.TxDatabase, productID int) error
}

type productRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) ProductRepository {
	return &productRepository{Repo: r}
}

func productListQuery(db *goqu.Database) *goqu.SelectDataset {
	return db.
		Select(
			goqu.I("p.id").As("id"),
			goqu.I("p.name").As("name"),
			goqu.I("p.description").As("description"),
			goqu.I("p.category_id").As("category_id"),
			goqu.I("p.created_at").As("created_at"),
			goqu.I("c.name").As("category_name"),
		).
		From(goqu.T("products").As("p")).
		LeftJoin(goqu.T("categories").As("c"), goqu.On(goqu.Ex{"p.category_id": goqu.I("c.id")}))
}

func (r *productRepository) GetProductRows() (*[]models.Product, error) {
	var rows []models.Product

	query := productListQuery(r.Repo.GoquDBWrapper).
		Order(goqu.I("p.created_at").Desc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("products", err)
	}

	return &rows, nil
}

func (r *productRepository) GetProductByID(productID int) (*models.Product, error) {
	var row models.Product

	query := productListQuery(r.Repo.GoquDBWrapper).
		Where(goqu.Ex{"p.id": productID})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, custom_error.TranslateDBError("product", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("product")
	}

	return &row, nil
}

func (r *productRepository) InsertProduct(tx *goqu.TxDatabase, req ProductRequest) (*models.Product, error) {
	var product models.Product

	query := tx.Insert("products").
		Rows(goqu.Record{
			"name":        req.Name,
			"description": req.Description,
			"category_id": req.CategoryID,
		}).
		Returning("id", "name", "description", "category_id", "created_at")

	if _, err := query.Executor().ScanStruct(&product); err != nil {
		return nil, custom_error.TranslateDBError("product", err)
	}

	return &product, nil
}

func (r *productRepository) UpdateProduct(productID int, req UpdateProductRequest) (*models.Product, error) {
	var product models.Product

	// category_id is a direct set: passing null detaches the product
	// from its category, it does not keep the old value.
	query := r.Repo.GoquDBWrapper.Update("products").
		Set(goqu.Record{
			"name":        goqu.L("COALESCE(?, name)", req.Name),
			"description": goqu.L("COALESCE(?, description)", req.Description),
			"category_id": req.CategoryID,
		}).
		Where(goqu.Ex{"id": productID}).
		Returning("id", "name", "description", "category_id", "created_at")

	found, err := query.Executor().ScanStruct(&product)
	if err != nil {
		return nil, custom_error.TranslateDBError("product", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("product")
	}

	return &product, nil
}

// DeleteProductCascade removes a product and everything below it:
// ledger rows for its SKUs, the inventory rows, then the SKUs and the
// product itself.
func (r *productRepository) DeleteProductCascade(tx *goqu.TxDatabase, productID int) error {
	skuIDs := tx.From("skus").Select("id").Where(goqu.Ex{"product_id": productID})

	dependents := []string{"stock_alerts", "stock_movements", "inventory_batches", "inventory"}
	for _, table := range dependents {
		if _, err := tx.Delete(table).Where(goqu.C("sku_id").In(skuIDs)).Executor().Exec(); err != nil {
			return custom_error.TranslateDBError(table, err)
		}
	}

	if _, err := tx.Delete("skus").Where(goqu.Ex{"product_id": productID}).Executor().Exec(); err != nil {
		return custom_error.TranslateDBError("skus", err)
	}

	result, err := tx.Delete("products").Where(goqu.Ex{"id": productID}).Executor().Exec()
	if err != nil {
		return custom_error.TranslateDBError("product", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return custom_error.TranslateDBError("product", err)
	}
	if affected == 0 {
		return custom_error.NewNotFoundError("product")
	}

	return nil
}
