package calculator

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"precisecalc/internal/domain"
)

// httpError возвращает HTTP-статус и вид ошибки для ответа.
func httpError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		return http.StatusBadRequest, domain.KindDivisionByZero.String()
	case errors.Is(err, domain.ErrEmptyHistory):
		return http.StatusNotFound, domain.KindEmptyHistory.String()
	case errors.Is(err, domain.ErrUnknownOperation):
		return http.StatusBadRequest, "unknown_operation"
	case errors.Is(err, domain.ErrInvalidOperand):
		return http.StatusBadRequest, "invalid_operand"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, domain.ErrDisabled):
		return http.StatusServiceUnavailable, "disabled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// fail пишет ошибку в ответ; внутренние ошибки логируются уровнем Error.
func (c *Controller) fail(ctx *gin.Context, action string, err error) {
	code, kind := httpError(err)
	if code >= http.StatusInternalServerError {
		c.log.Error(action+" failed", "error", err)
	} else {
		c.log.Debug(action+" rejected", "kind", kind, "error", err)
	}
	ctx.JSON(code, ErrorResponse{Error: err.Error(), Kind: kind})
}
