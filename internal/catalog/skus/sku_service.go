package skus

import (
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const defaultMinimumStockLevel = 10

type txRunner interface {
	WithTransaction(fn func(tx *goqu.TxDatabase) error) error
}

type SKUService struct {
	runner txRunner
	repo   SKURepository
}

func NewSKUService(runner txRunner, repo SKURepository) *SKUService {
	return &SKUService{
		runner: runner,
		repo:   repo,
	}
}

func (s *SKUService) ListSKUs() (*[]models.SKU, error) {
	return s.repo.GetSKURows()
}

func (s *SKUService) GetSKU(skuID int) (*models.SKU, error) {
	return s.repo.GetSKUByID(skuID)
}

// CreateSKU creates the SKU and its inventory row as one unit; a SKU
// without an inventory row would break every ledger operation on it.
func (s *SKUService) CreateSKU(req SKURequest) (*models.SKU, error) {
	var sku *models.SKU

	err := s.runner.WithTransaction(func(tx *goqu.TxDatabase) error {
		var err error
		sku, err = s.repo.InsertSKU(tx, req)
		if err != nil {
			return err
		}

		initialQuantity := 0
		if req.InitialQuantity != nil {
			initialQuantity = *req.InitialQuantity
		}
		minimumStockLevel := defaultMinimumStockLevel
		if req.MinimumStockLevel != nil {
			minimumStockLevel = *req.MinimumStockLevel
		}

		return s.repo.InsertInventoryRow(tx, sku.ID, initialQuantity, minimumStockLevel, req.MaximumStockLevel)
	})
	if err != nil {
		return nil, err
	}

	return sku, nil
}

func (s *SKUService) UpdateSKU(skuID int, req UpdateSKURequest) (*models.SKU, error) {
	return s.repo.UpdateSKU(skuID, req)
}

func (s *SKUService) DeleteSKU(skuID int) error {
	return s.runner.WithTransaction(func(tx *goqu.TxDatabase) error {
		return s.repo.DeleteSKUCascade(tx, skuID)
	})
}
