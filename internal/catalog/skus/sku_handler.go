package skus

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "shoperp/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SKUHandler struct {
	service *SKUService
	log     *zap.Logger
}

func NewSKUHandler(service *SKUService, log *zap.Logger) *SKUHandler {
	return &SKUHandler{
		service: service,
		log:     log,
	}
}

func (h *SKUHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/skus", h.ListSKUs)
	router.GET("/skus/:id", h.GetSKU)
	router.POST("/skus", h.CreateSKU)
	router.PUT("/skus/:id", h.UpdateSKU)
	router.DELETE("/skus/:id", h.DeleteSKU)
}

func (h *SKUHandler) ListSKUs(c *gin.Context) {
	rows, err := h.service.ListSKUs()
	if err != nil {
		h.respondError(c, err, "Failed to fetch SKUs")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *SKUHandler) GetSKU(c *gin.Context) {
	skuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid SKU ID parameter, must be an integer"})
		return
	}

	row, err := h.service.GetSKU(skuID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch SKU")
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *SKUHandler) CreateSKU(c *gin.Context) {
	var req SKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Product ID, SKU code, cost price, and selling price are required"})
		return
	}

	sku, err := h.service.CreateSKU(req)
	if err != nil {
		h.respondError(c, err, "Failed to create SKU")
		return
	}

	c.JSON(http.StatusCreated, sku)
}

func (h *SKUHandler) UpdateSKU(c *gin.Context) {
	skuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid SKU ID parameter, must be an integer"})
		return
	}

	var req UpdateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	sku, err := h.service.UpdateSKU(skuID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update SKU")
		return
	}

	c.JSON(http.StatusOK, sku)
}

func (h *SKUHandler) DeleteSKU(c *gin.Context) {
	skuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid SKU ID parameter, must be an integer"})
		return
	}

	if err := h.service.DeleteSKU(skuID); err != nil {
		h.respondError(c, err, "Failed to delete SKU")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SKU deleted successfully"})
}

func (h *SKUHandler) respondError(c *gin.Context, err error, fallback string) {
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
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Referenced product does not exist"})
	default:
		h.log.Error(fallback, zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
