// internal/handlers/product.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krowne/krownebase/internal/i18n"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/services"
	"github.com/krowne/krownebase/internal/utils"
)

type ProductHandler struct {
	productService   *services.ProductService
	specSheetService *services.SpecSheetService
}

func NewProductHandler(productService *services.ProductService, specSheetService *services.SpecSheetService) *ProductHandler {
	return &ProductHandler{
		productService:   productService,
		specSheetService: specSheetService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.SearchProducts(c.Request.Context(), params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	created, err := h.productService.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": created,
	})
}

// GET /products/:sku
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("sku"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// PUT /products/:sku
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("sku"), &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/:sku
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	product, err := h.productService.DeleteProduct(c.Request.Context(), c.Param("sku"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
		"product": product,
	})
}

// GET /products/:sku/spec-sheet
func (h *ProductHandler) GetSpecSheet(c *gin.Context) {
	sku := c.Param("sku")

	if strings.EqualFold(c.Query("format"), "html") {
		page, err := h.specSheetService.RenderHTML(c.Request.Context(), sku)
		if err != nil {
			utils.AppErrorResponse(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	sheet, err := h.specSheetService.GetSpecSheet(c.Request.Context(), sku)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"specSheet": sheet,
	})
}
