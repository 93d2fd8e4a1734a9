package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

type APIError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	apiErr := APIError{Message: msg, Code: code}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		apiErr.Fields = ve.Fields
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: apiErr})
}

// statusFor maps service errors to an HTTP status and an error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrNotReady):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict, "already_exists"
	case errors.Is(err, common.ErrCategoryInUse):
		return http.StatusConflict, "category_in_use"
	case errors.Is(err, common.ErrArchived), errors.Is(err, common.ErrHistoryRewrite):
		return http.StatusConflict, "conflict"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		err = common.ErrorInternal
	}
	respondError(c, status, code, err)
}
