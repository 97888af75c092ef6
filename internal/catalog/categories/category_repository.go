package categories

import (
	"shoperp/internal/repository"
	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type CategoryRepository interface {
	GetCategoryRows() (*[]models.Category, error)
	GetCategoryByID(categoryID int) (*models.Category, error)
	InsertCategory(req CategoryRequest) (*models.Category, error)
	UpdateCategory(categoryID int, req UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(categoryID int) error
}

type categoryRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) CategoryRepository {
	return &categoryRepository{Repo: r}
}

func categoryListQuery(db *goqu.Database) *goqu.SelectDataset {
	return db.
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.name").As("name"),
			goqu.I("c.description").As("description"),
			goqu.I("c.parent_id").As("parent_id"),
			goqu.I("c.created_at").As("created_at"),
			goqu.I("parent.name").As("parent_name"),
			goqu.L("(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id)").As("product_count"),
		).
		From(goqu.T("categories").As("c")).
		LeftJoin(goqu.T("categories").As("parent"), goqu.On(goqu.Ex{"c.parent_id": goqu.I("parent.id")}))
}

func (r *categoryRepository) GetCategoryRows() (*[]models.Category, error) {
	var rows []models.Category

	query := categoryListQuery(r.Repo.GoquDBWrapper).
		Order(goqu.I("c.name").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.TranslateDBError("categories", err)
	}

	return &rows, nil
}

func (r *categoryRepository) GetCategoryByID(categoryID int) (*models.Category, error) {
	var row models.Category

	query := categoryListQuery(r.Repo.GoquDBWrapper).
		Where(goqu.Ex{"c.id": categoryID})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, custom_error.TranslateDBError("category", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("category")
	}

	return &row, nil
}

func (r *categoryRepository) InsertCategory(req CategoryRequest) (*models.Category, error) {
	var category models.Category

	query := r.Repo.GoquDBWrapper.Insert("categories").
		Rows(goqu.Record{
			"name":        req.Name,
			"description": req.Description,
			"parent_id":   req.ParentID,
		}).
		Returning("id", "name", "description", "parent_id", "created_at")

	if _, err := query.Executor().ScanStruct(&category); err != nil {
		return nil, custom_error.TranslateDBError("category", err)
	}

	return &category, nil
}

func (r *categoryRepository) UpdateCategory(categoryID int, req UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category

	// parent_id is a direct set: null detaches the category from its
	// parent rather than keeping the old value.
	query := r.Repo.GoquDBWrapper.Update("categories").
		Set(goqu.Record{
			"name":        goqu.L("COALESCE(?, name)", req.Name),
			"description": goqu.L("COALESCE(?, description)", req.Description),
			"parent_id":   req.ParentID,
		}).
		Where(goqu.Ex{"id": categoryID}).
		Returning("id", "name", "description", "parent_id", "created_at")

	found, err := query.Executor().ScanStruct(&category)
	if err != nil {
		return nil, custom_error.TranslateDBError("category", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("category")
	}

	return &category, nil
}

// DeleteCategory removes the category only. Products keep existing with
// category_id set to null and child categories are detached, both via
// the ON DELETE SET NULL constraints.
func (r *categoryRepository) DeleteCategory(categoryID int) error {
	result, err := r.Repo.GoquDBWrapper.Delete("categories").
		Where(goqu.Ex{"id": categoryID}).
		Executor().Exec()
	if err != nil {
		return custom_error.TranslateDBError("category", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return custom_error.TranslateDBError("category", err)
	}
	if affected == 0 {
		return custom_error.NewNotFoundError("category")
	}

	return nil
}
