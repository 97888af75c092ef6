package categories

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "shoperp/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler talks to the repository directly. Categories have no
// derived state and no multi-table writes, so a service layer would
// only forward calls.
type CategoryHandler struct {
	repo CategoryRepository
	log  *zap.Logger
}

func NewCategoryHandler(repo CategoryRepository, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		repo: repo,
		log:  log,
	}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:id", h.GetCategory)
	router.POST("/categories", h.CreateCategory)
	router.PUT("/categories/:id", h.UpdateCategory)
	router.DELETE("/categories/:id", h.DeleteCategory)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	rows, err := h.repo.GetCategoryRows()
	if err != nil {
		h.respondError(c, err, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID parameter, must be an integer"})
		return
	}

	category, err := h.repo.GetCategoryByID(categoryID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch category")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := h.repo.InsertCategory(req)
	if err != nil {
		h.respondError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID parameter, must be an integer"})
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	category, err := h.repo.UpdateCategory(categoryID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID parameter, must be an integer"})
		return
	}

	if err := h.repo.DeleteCategory(categoryID); err != nil {
		h.respondError(c, err, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *CategoryHandler) respondError(c *gin.Context, err error, fallback string) {
	var validation *custom_error.ValidationError
	var notFound *custom_error.NotFoundError
	var unique *custom_error.UniqueViolationError
	var foreignKey *custom_error.ForeignKeyViolationError

	switch {
	case errors.As(err, &validation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &unique):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
	case errors.As(err, &foreignKey):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Referenced parent category does not exist"})
	default:
		h.log.Error(fallback, zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
