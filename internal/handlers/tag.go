// internal/handlers/tag.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/krowne/krownebase/internal/i18n"
	"github.com/krowne/krownebase/internal/services"
	"github.com/krowne/krownebase/internal/utils"
)

type TagHandler struct {
	taggingService *services.TaggingService
}

func NewTagHandler(taggingService *services.TaggingService) *TagHandler {
	return &TagHandler{taggingService: taggingService}
}

// POST /tags
func (h *TagHandler) TagAll(c *gin.Context) {
	summary, err := h.taggingService.TagAll(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(utils.GetLangFromContext(c), i18n.KeyTagsComplete),
		"summary": summary,
	})
}

// POST /tags/:sku
func (h *TagHandler) TagOne(c *gin.Context) {
	tags, err := h.taggingService.TagOne(c.Request.Context(), c.Param("sku"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(utils.GetLangFromContext(c), i18n.KeyTagsProductTagged),
		"tags":    tags,
	})
}

// GET /tags/preview/:sku
func (h *TagHandler) PreviewTags(c *gin.Context) {
	tags, err := h.taggingService.PreviewTags(c.Request.Context(), c.Param("sku"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"tags": tags,
	})
}

// GET /tags
func (h *TagHandler) ListTags(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"tags": h.taggingService.KnownTags(),
	})
}
