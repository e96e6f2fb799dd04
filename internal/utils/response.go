// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/i18n"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessResponseWithMeta(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyAuthRequired)
	}
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func ForbiddenResponse(c *gin.Context, message string) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyAuthForbidden)
	}
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func NotFoundResponse(c *gin.Context, resource string, details interface{}) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, resource+".not_found")
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message, details)
}

func ConflictResponse(c *gin.Context, message string, details interface{}) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message, details)
}

// AppErrorResponse writes the response for an error returned by a service.
// Storage details never reach the client for server side kinds.
func AppErrorResponse(c *gin.Context, err error) {
	lang := GetLangFromContext(c)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unclassified error")
		InternalErrorResponse(c, "")
		return
	}

	var skuDetails interface{}
	if appErr.SKU != "" {
		skuDetails = gin.H{"sku": appErr.SKU}
	}

	switch appErr.Kind {
	case apperr.KindParse, apperr.KindEmptyInput, apperr.KindValidation:
		ErrorResponse(c, http.StatusBadRequest, string(appErr.Kind), appErr.Message, appErr.Details)
	case apperr.KindNotFound:
		NotFoundResponse(c, "product", skuDetails)
	case apperr.KindConflict:
		ConflictResponse(c, i18n.T(lang, i18n.KeyProductExists), skuDetails)
	case apperr.KindUnavailable:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Warn("Dependency unavailable")
		ErrorResponse(c, http.StatusServiceUnavailable, string(appErr.Kind), i18n.T(lang, i18n.KeyServiceUnavailable), nil)
	case apperr.KindDatabase:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Database error")
		ErrorResponse(c, http.StatusInternalServerError, string(appErr.Kind), i18n.T(lang, i18n.KeyDatabaseError), skuDetails)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Internal error")
		InternalErrorResponse(c, "")
	}
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyInternalError)
	}
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyValidationInvalid, "input")
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", message, errors)
}

func PaginatedResponse(c *gin.Context, result PaginationResult) {
	SetPaginationHeaders(c, result)
	SuccessResponseWithMeta(c, result.Data, gin.H{
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}

func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	if email, exists := c.Get("user_email"); exists {
		if emailStr, ok := email.(string); ok {
			return emailStr, true
		}
	}
	return "", false
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("user_role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
