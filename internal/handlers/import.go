// internal/handlers/import.go
package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krowne/krownebase/internal/i18n"
	"github.com/krowne/krownebase/internal/services"
	"github.com/krowne/krownebase/internal/utils"
)

// uploadFields lists the accepted multipart field names in lookup order.
var uploadFields = []string{"csvFile", "file"}

var allowedImportExtensions = map[string]bool{
	"":      true,
	".csv":  true,
	".txt":  true,
	".xlsx": true,
}

type ImportHandler struct {
	importService *services.ImportService
	maxBytes      int64
}

func NewImportHandler(importService *services.ImportService, maxBytes int64) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		maxBytes:      maxBytes,
	}
}

// POST /products/import
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if h.maxBytes > 0 {
		// room for the multipart envelope around the file
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1024*1024)
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
				fmt.Sprintf("file exceeds the %d byte upload limit", h.maxBytes), nil)
			return
		}
	}

	header := formFile(c)
	if header == nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImportNoFile), nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImportExtensions[ext] {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImportUnsupportedType, ext), nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	defer file.Close()

	result, err := h.importService.Import(c.Request.Context(), header.Filename, file)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func formFile(c *gin.Context) *multipart.FileHeader {
	for _, field := range uploadFields {
		if header, err := c.FormFile(field); err == nil {
			return header
		}
	}
	return nil
}

// GET /products/import
func (h *ImportHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(utils.GetLangFromContext(c), i18n.KeyImportRunning),
	})
}

// GET /products/import/template
func (h *ImportHandler) Template(c *gin.Context) {
	template, err := h.importService.Template()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="product-import-template.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", template)
}
