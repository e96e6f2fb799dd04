// internal/handlers/scrape.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/services"
	"github.com/krowne/krownebase/internal/utils"
)

type ScrapeHandler struct {
	scrapeService *services.ScrapeService
}

func NewScrapeHandler(scrapeService *services.ScrapeService) *ScrapeHandler {
	return &ScrapeHandler{scrapeService: scrapeService}
}

// GET /scrape/:sku
func (h *ScrapeHandler) ScrapeProduct(c *gin.Context) {
	product, err := h.scrapeService.Scrape(c.Request.Context(), c.Param("sku"))
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			utils.NotFoundResponse(c, "scrape", gin.H{"sku": c.Param("sku")})
			return
		}
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}
