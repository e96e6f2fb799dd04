// internal/handlers/health.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krowne/krownebase/internal/services"
)

const version = "1.0.0"

type HealthHandler struct {
	productService *services.ProductService
}

func NewHealthHandler(productService *services.ProductService) *HealthHandler {
	return &HealthHandler{productService: productService}
}

// GET /health
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": version,
	})
}

// GET /db-health
func (h *HealthHandler) Database(c *gin.Context) {
	health := h.productService.CheckDatabase(c.Request.Context())

	status := http.StatusOK
	if !health.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
