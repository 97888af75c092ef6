package products

import (
	"shoperp/internal/catalog/skus"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const defaultMinimumStockLevel = 10

type txRunner interface {
	WithTransaction(fn func(tx *goqu.TxDatabase) error) error
}

type ProductService struct {
	runner  txRunner
	repo    ProductRepository
	skuRepo skus.SKURepository
}

func NewProductService(runner txRunner, repo ProductRepository, skuRepo skus.SKURepository) *ProductService {
	return &ProductService{
		runner:  runner,
		repo:    repo,
		skuRepo: skuRepo,
	}
}

// ListProducts returns products with their SKUs (and each SKU's
// inventory fields) attached.
func (s *ProductService) ListProducts() (*[]models.Product, error) {
	rows, err := s.repo.GetProductRows()
	if err != nil {
		return nil, err
	}

	productIDs := make([]int, 0, len(*rows))
	for _, product := range *rows {
		productIDs = append(productIDs, product.ID)
	}

	skuRows, err := s.skuRepo.GetSKURowsByProductIDs(productIDs)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[int][]models.SKU, len(*rows))
	for _, sku := range *skuRows {
		byProduct[sku.ProductID] = append(byProduct[sku.ProductID], sku)
	}
	for i := range *rows {
		product := &(*rows)[i]
		product.SKUs = byProduct[product.ID]
		if product.SKUs == nil {
			product.SKUs = []models.SKU{}
		}
	}

	return rows, nil
}

func (s *ProductService) GetProduct(productID int) (*models.Product, error) {
	product, err := s.repo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	skuRows, err := s.skuRepo.GetSKURowsByProductIDs([]int{productID})
	if err != nil {
		return nil, err
	}
	product.SKUs = *skuRows
	if product.SKUs == nil {
		product.SKUs = []models.SKU{}
	}

	return product, nil
}

// CreateProduct creates the product and any nested SKUs, each with its
// inventory row, as a single atomic unit.
func (s *ProductService) CreateProduct(req ProductRequest) (*models.Product, error) {
	var product *models.Product

	err := s.runner.WithTransaction(func(tx *goqu.TxDatabase) error {
		var err error
		product, err = s.repo.InsertProduct(tx, req)
		if err != nil {
			return err
		}

		for _, nested := range req.SKUs {
			sku, err := s.skuRepo.InsertSKU(tx, nested.forProduct(product.ID))
			if err != nil {
				return err
			}

			initialQuantity := 0
			if nested.InitialQuantity != nil {
				initialQuantity = *nested.InitialQuantity
			}
			minimumStockLevel := defaultMinimumStockLevel
			if nested.MinimumStockLevel != nil {
				minimumStockLevel = *nested.MinimumStockLevel
			}

			if err := s.skuRepo.InsertInventoryRow(tx, sku.ID, initialQuantity, minimumStockLevel, nested.MaximumStockLevel); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Return the complete product, with SKUs, the way a follow-up GET
	// would see it.
	return s.GetProduct(product.ID)
}

func (s *ProductService) UpdateProduct(productID int, req UpdateProductRequest) (*models.Product, error) {
	return s.repo.UpdateProduct(productID, req)
}

func (s *ProductService) DeleteProduct(productID int) error {
	return s.runner.WithTransaction(func(tx *goqu.TxDatabase) error {
		return s.repo.DeleteProductCascade(tx, productID)
	})
}
