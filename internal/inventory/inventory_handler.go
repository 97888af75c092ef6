package inventory

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "shoperp/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	service *LedgerService
	log     *zap.Logger
}

func NewInventoryHandler(service *LedgerService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log,
	}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/inventory", h.ListInventory)
	router.GET("/inventory/movements/list", h.ListMovements)
	router.POST("/inventory/movements", h.RecordMovement)
	router.GET("/inventory/batches/list", h.ListBatches)
	router.POST("/inventory/batches", h.CreateBatch)
	router.GET("/inventory/alerts/list", h.ListAlerts)
	router.PUT("/inventory/alerts/:id/resolve", h.ResolveAlert)
	router.GET("/inventory/:sku_id", h.GetInventory)
	router.PUT("/inventory/:sku_id", h.UpdateLevels)
}

func (h *InventoryHandler) ListInventory(c *gin.Context) {
	rows, err := h.service.ListInventory()
	if err != nil {
		h.respondError(c, err, "Failed to fetch inventory")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	skuID, err := strconv.Atoi(c.Param("sku_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid SKU ID parameter, must be an integer"})
		return
	}

	row, err := h.service.GetInventory(skuID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch inventory")
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) UpdateLevels(c *gin.Context) {
	skuID, err := strconv.Atoi(c.Param("sku_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid SKU ID parameter, must be an integer"})
		return
	}

	var req UpdateLevelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	row, err := h.service.UpdateLevels(skuID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update inventory")
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "SKU ID, movement type, and quantity are required"})
		return
	}

	result, err := h.service.RecordMovement(req)
	if err != nil {
		h.respondError(c, err, "Failed to record stock movement")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var query struct {
		SkuID *int `form:"sku_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	rows, err := h.service.ListMovements(query.SkuID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch stock movements")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) CreateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "SKU ID, batch number, and quantity are required"})
		return
	}

	batch, err := h.service.CreateBatch(req)
	if err != nil {
		h.respondError(c, err, "Failed to create batch")
		return
	}

	c.JSON(http.StatusCreated, batch)
}

func (h *InventoryHandler) ListBatches(c *gin.Context) {
	var query struct {
		SkuID *int `form:"sku_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	rows, err := h.service.ListBatches(query.SkuID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch batches")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	var query struct {
		IsResolved *bool `form:"is_resolved"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	rows, err := h.service.ListAlerts(query.IsResolved)
	if err != nil {
		h.respondError(c, err, "Failed to fetch stock alerts")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) ResolveAlert(c *gin.Context) {
	alertID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid alert ID parameter, must be an integer"})
		return
	}

	alert, err := h.service.ResolveAlert(alertID)
	if err != nil {
		h.respondError(c, err, "Failed to resolve stock alert")
		return
	}

	c.JSON(http.StatusOK, alert)
}

// respondError translates domain errors to status codes. Store
// diagnostics stay in the log; callers only see the taxonomy.
func (h *InventoryHandler) respondError(c *gin.Context, err error, fallback string) {
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
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Batch number already exists for this SKU"})
	case errors.As(err, &foreignKey):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Referenced SKU or batch does not exist"})
	default:
		h.log.Error(fallback, zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
