package calculator

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Создать сессию
// @Description Новый экземпляр калькулятора с пустой собственной историей на общей истории.
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /api/v1/sessions [post]
func (c *Controller) createSession(ctx *gin.Context) {
	id, err := c.uc.CreateSession(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "create session", err)
		return
	}
	ctx.JSON(http.StatusCreated, SessionResponse{SessionID: id})
}

// @Summary Закрыть сессию
// @Tags sessions
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (c *Controller) closeSession(ctx *gin.Context) {
	if err := c.uc.CloseSession(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.fail(ctx, "close session", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary История сессии
// @Tags sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} HistoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/history [get]
func (c *Controller) instanceHistory(ctx *gin.Context) {
	list, err := c.uc.InstanceHistory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.fail(ctx, "instance history", err)
		return
	}
	ctx.JSON(http.StatusOK, newHistoryResponse(list))
}

// @Summary Последняя операция сессии
// @Tags sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} EntryItem
// @Failure 404 {object} ErrorResponse "Сессия не найдена или история пуста"
// @Router /api/v1/sessions/{id}/last [get]
func (c *Controller) lastInstance(ctx *gin.Context) {
	e, err := c.uc.LastInstance(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.fail(ctx, "last instance", err)
		return
	}
	ctx.JSON(http.StatusOK, newEntryItem(e))
}

// @Summary Очистить историю сессии
// @Tags sessions
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/history [delete]
func (c *Controller) resetInstance(ctx *gin.Context) {
	if err := c.uc.ResetInstance(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.fail(ctx, "reset instance", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
