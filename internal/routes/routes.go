package routes

import (
	"shoperp/internal/container"
	"shoperp/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes mounts every handler under /api.
func RegisterAPIRoutes(router *gin.Engine, c *container.Container) {
	api := router.Group("/api")

	c.CategoryHandler.RegisterRoutes(api)
	c.ProductHandler.RegisterRoutes(api)
	c.SKUHandler.RegisterRoutes(api)
	c.InventoryHandler.RegisterRoutes(api)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/api/health", middleware.HealthCheckHandler())
}
