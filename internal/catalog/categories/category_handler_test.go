package categories

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "shoperp/pkg/errors"
	"shoperp/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetCategoryRows() (*[]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByID(categoryID int) (*models.Category, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) InsertCategory(req CategoryRequest) (*models.Category, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(categoryID int, req UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(categoryID int) error {
	args := m.Called(categoryID)
	return args.Error(0)
}

func newTestRouter(repo CategoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCategoryHandler(repo, zap.NewNop())
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateCategoryRequiresName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodPost, "/api/categories",
		map[string]interface{}{"description": "no name"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "InsertCategory", mock.Anything)
}

func TestCreateCategorySuccess(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("InsertCategory", CategoryRequest{Name: "Electronics"}).
		Return(&models.Category{ID: 1, Name: "Electronics"}, nil).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodPost, "/api/categories",
		map[string]interface{}{"name": "Electronics"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.Category
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Electronics", got.Name)
	mockRepo.AssertExpectations(t)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("InsertCategory", mock.Anything).
		Return(nil, custom_error.WrapDBError("duplicate key value", "23505")).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodPost, "/api/categories",
		map[string]interface{}{"name": "Electronics"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("InsertCategory", CategoryRequest{Name: "Phones", ParentID: intPtr(99)}).
		Return(nil, custom_error.WrapDBError("violates foreign key constraint", "23503")).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodPost, "/api/categories",
		map[string]interface{}{"name": "Phones", "parent_id": 99})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategoriesIncludesDerivedFields(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("GetCategoryRows").
		Return(&[]models.Category{
			{ID: 1, Name: "Electronics", ProductCount: 3},
			{ID: 2, Name: "Phones", ParentID: intPtr(1), ParentName: strPtr("Electronics")},
		}, nil).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Category
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got[0].ProductCount)
	assert.Equal(t, "Electronics", *got[1].ParentName)
}

func TestUpdateCategoryPartial(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("UpdateCategory", 2, UpdateCategoryRequest{Name: strPtr("Mobiles")}).
		Return(&models.Category{ID: 2, Name: "Mobiles", ParentID: intPtr(1)}, nil).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodPut, "/api/categories/2",
		map[string]interface{}{"name": "Mobiles"})

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateCategoryInvalidID(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodPut, "/api/categories/abc",
		map[string]interface{}{"name": "Mobiles"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("DeleteCategory", 99).
		Return(custom_error.NewNotFoundError("category")).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodDelete, "/api/categories/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategoriesRepositoryErrorDoesNotLeak(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("GetCategoryRows").Return(nil, assert.AnError).Once()
	router := newTestRouter(mockRepo)

	w := performRequest(router, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
