package products

import (
	"errors"
	"testing"

	"shoperp/internal/catalog/skus"
	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(fn func(tx *goqu.TxDatabase) error) error {
	f.calls++
	return fn(nil)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProductRows() (*[]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductByID(productID int) (*models.Product, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) InsertProduct(tx *goqu.TxDatabase, req ProductRequest) (*models.Product, error) {
	args := m.Called(tx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(productID int, req UpdateProductRequest) (*models.Product, error) {
	args := m.Called(productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProductCascade(tx *goqu.TxDatabase, productID int) error {
	args := m.Called(tx, productID)
	return args.Error(0)
}

type MockSKURepository struct {
	mock.Mock
}

func (m *MockSKURepository) GetSKURows() (*[]models.SKU, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.SKU), args.Error(1)
}

func (m *MockSKURepository) GetSKUByID(skuID int) (*models.SKU, error) {
	args := m.Called(skuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SKU), args.Error(1)
}

func (m *MockSKURepository) GetSKURowsByProductIDs(productIDs []int) (*[]models.SKU, error) {
	args := m.Called(productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.SKU), args.Error(1)
}

func (m *MockSKURepository) InsertSKU(tx *goqu.TxDatabase, req skus.SKURequest) (*models.SKU, error) {
	args := m.Called(tx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SKU), args.Error(1)
}

func (m *MockSKURepository) InsertInventoryRow(tx *goqu.TxDatabase, skuID, initialQuantity, minimumStockLevel int, maximumStockLevel *int) error {
	args := m.Called(tx, skuID, initialQuantity, minimumStockLevel, maximumStockLevel)
	return args.Error(0)
}

func (m *MockSKURepository) UpdateSKU(skuID int, req skus.UpdateSKURequest) (*models.SKU, error) {
	args := m.Called(skuID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SKU), args.Error(1)
}

func (m *MockSKURepository) DeleteSKUCascade(tx *goqu.TxDatabase, skuID int) error {
	args := m.Called(tx, skuID)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestCreateProductWithNestedSKUs(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockSKURepo := new(MockSKURepository)
	runner := &fakeTxRunner{}
	service := NewProductService(runner, mockRepo, mockSKURepo)

	req := ProductRequest{
		Name: "Widget",
		SKUs: []NestedSKURequest{
			{
				SkuCode:           "WID-S",
				CostPrice:         floatPtr(4),
				SellingPrice:      floatPtr(8),
				InitialQuantity:   intPtr(30),
				MinimumStockLevel: intPtr(5),
			},
			{
				SkuCode:      "WID-L",
				CostPrice:    floatPtr(6),
				SellingPrice: floatPtr(12),
			},
		},
	}

	mockRepo.On("InsertProduct", mock.Anything, req).
		Return(&models.Product{ID: 3, Name: "Widget"}, nil).Once()
	mockSKURepo.On("InsertSKU", mock.Anything, req.SKUs[0].forProduct(3)).
		Return(&models.SKU{ID: 10, ProductID: 3, SkuCode: "WID-S"}, nil).Once()
	mockSKURepo.On("InsertInventoryRow", mock.Anything, 10, 30, 5, (*int)(nil)).
		Return(nil).Once()
	mockSKURepo.On("InsertSKU", mock.Anything, req.SKUs[1].forProduct(3)).
		Return(&models.SKU{ID: 11, ProductID: 3, SkuCode: "WID-L"}, nil).Once()
	// The second SKU carries no levels, so inventory starts at zero with
	// the default threshold.
	mockSKURepo.On("InsertInventoryRow", mock.Anything, 11, 0, 10, (*int)(nil)).
		Return(nil).Once()
	mockRepo.On("GetProductByID", 3).
		Return(&models.Product{ID: 3, Name: "Widget"}, nil).Once()
	mockSKURepo.On("GetSKURowsByProductIDs", []int{3}).
		Return(&[]models.SKU{{ID: 10, ProductID: 3}, {ID: 11, ProductID: 3}}, nil).Once()

	product, err := service.CreateProduct(req)

	assert.NoError(t, err)
	assert.Len(t, product.SKUs, 2)
	assert.Equal(t, 1, runner.calls, "product and SKUs must share one transaction")
	mockRepo.AssertExpectations(t)
	mockSKURepo.AssertExpectations(t)
}

func TestCreateProductDuplicateSKUCodeRollsBack(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockSKURepo := new(MockSKURepository)
	service := NewProductService(&fakeTxRunner{}, mockRepo, mockSKURepo)

	req := ProductRequest{
		Name: "Widget",
		SKUs: []NestedSKURequest{
			{SkuCode: "WID-1", CostPrice: floatPtr(1), SellingPrice: floatPtr(2)},
		},
	}

	mockRepo.On("InsertProduct", mock.Anything, req).
		Return(&models.Product{ID: 3, Name: "Widget"}, nil).Once()
	mockSKURepo.On("InsertSKU", mock.Anything, req.SKUs[0].forProduct(3)).
		Return(nil, custom_error.WrapDBError("duplicate key value", "23505")).Once()

	_, err := service.CreateProduct(req)

	var unique *custom_error.UniqueViolationError
	assert.True(t, errors.As(err, &unique))
	mockSKURepo.AssertNotCalled(t, "InsertInventoryRow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "GetProductByID", mock.Anything)
}

func TestListProductsAttachesSKUs(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockSKURepo := new(MockSKURepository)
	service := NewProductService(&fakeTxRunner{}, mockRepo, mockSKURepo)

	mockRepo.On("GetProductRows").
		Return(&[]models.Product{{ID: 1, Name: "Widget"}, {ID: 2, Name: "Gadget"}}, nil).Once()
	mockSKURepo.On("GetSKURowsByProductIDs", []int{1, 2}).
		Return(&[]models.SKU{
			{ID: 10, ProductID: 1, SkuCode: "WID-1"},
			{ID: 11, ProductID: 1, SkuCode: "WID-2"},
		}, nil).Once()

	rows, err := service.ListProducts()

	assert.NoError(t, err)
	assert.Len(t, (*rows)[0].SKUs, 2)
	assert.Empty(t, (*rows)[1].SKUs)
	assert.NotNil(t, (*rows)[1].SKUs, "products without SKUs serialize as an empty list")
}

func TestGetProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewProductService(&fakeTxRunner{}, mockRepo, new(MockSKURepository))

	mockRepo.On("GetProductByID", 99).
		Return(nil, custom_error.NewNotFoundError("product")).Once()

	_, err := service.GetProduct(99)

	var notFound *custom_error.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestDeleteProductRunsCascadeInTransaction(t *testing.T) {
	mockRepo := new(MockProductRepository)
	runner := &fakeTxRunner{}
	service := NewProductService(runner, mockRepo, new(MockSKURepository))

	mockRepo.On("DeleteProductCascade", mock.Anything, 4).Return(nil).Once()

	assert.NoError(t, service.DeleteProduct(4))
	assert.Equal(t, 1, runner.calls)
	mockRepo.AssertExpectations(t)
}
