package products

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "shoperp/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service *ProductService
	log     *zap.Logger
}

func NewProductHandler(service *ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProduct)
	router.POST("/products", h.CreateProduct)
	router.PUT("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	rows, err := h.service.ListProducts()
	if err != nil {
		h.respondError(c, err, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID parameter, must be an integer"})
		return
	}

	product, err := h.service.GetProduct(productID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Product name is required, nested SKUs need a code and both prices"})
		return
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		h.respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID parameter, must be an integer"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	product, err := h.service.UpdateProduct(productID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID parameter, must be an integer"})
		return
	}

	if err := h.service.DeleteProduct(productID); err != nil {
		h.respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product and all related SKUs deleted successfully"})
}

func (h *ProductHandler) respondError(c *gin.Context, err error, fallback string) {
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
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "SKU code already exists"})
	case errors.As(err, &foreignKey):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Referenced category does not exist"})
	default:
		h.log.Error(fallback, zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
