package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	companydomain "github.com/anilkedia87/gstbill/internal/company/domain"
	"github.com/anilkedia87/gstbill/internal/gst"
	hsndomain "github.com/anilkedia87/gstbill/internal/hsn/domain"
	invoicedomain "github.com/anilkedia87/gstbill/internal/invoice/domain"
)

type errorPayload struct {
	Type    string                          `json:"type"`
	Message string                          `json:"message"`
	Errors  []invoicedomain.ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func newValidationError(field, code, message string) error {
	return &invoicedomain.ValidationErrors{
		Errors: []invoicedomain.ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	var vErr *invoicedomain.ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case isInvalidRequestError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, hsndomain.ErrDuplicateCode),
		errors.Is(err, invoicedomain.ErrDuplicateNumber):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isInvalidRequestError(err error) bool {
	switch {
	case errors.Is(err, gst.ErrIndeterminateJurisdiction),
		errors.Is(err, gst.ErrInvalidGSTIN),
		errors.Is(err, gst.ErrInvalidStateCode),
		errors.Is(err, gst.ErrInvalidRate),
		errors.Is(err, invoicedomain.ErrDiscountExceedsValue),
		errors.Is(err, invoicedomain.ErrAmountOutOfRange),
		errors.Is(err, invoicedomain.ErrUnknownRenderTarget),
		errors.Is(err, hsndomain.ErrInvalidCode),
		errors.Is(err, hsndomain.ErrInvalidRate),
		errors.Is(err, companydomain.ErrNameRequired):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, hsndomain.ErrNotFound),
		errors.Is(err, companydomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
