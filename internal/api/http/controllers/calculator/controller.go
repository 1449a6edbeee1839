package calculator

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"precisecalc/internal/domain"
	"precisecalc/internal/ports"
)

// Controller - маршруты калькулятора: calculate, общая история, сессии, журнал, статистика.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/calculate", c.calculate)

	api.GET("/history", c.sharedHistory)
	api.GET("/history/last", c.lastShared)
	api.DELETE("/history", c.resetShared)

	api.POST("/sessions", c.createSession)
	api.DELETE("/sessions/:id", c.closeSession)
	api.GET("/sessions/:id/history", c.instanceHistory)
	api.GET("/sessions/:id/last", c.lastInstance)
	api.DELETE("/sessions/:id/history", c.resetInstance)

	api.GET("/journal", c.journal)
	api.GET("/stats", c.stats)
	api.GET("/stats/analytics", c.analyticsCounts)
}

// @Summary Выполнить вычисление
// @Description Принимает два десятичных числа строками и операцию (+, -, *, / или add, subtract, multiply, divide).
// @Description Без session_id считает в экземпляре по умолчанию.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры вычисления"
// @Success 200 {object} CalculateResponse
// @Failure 400 {object} ErrorResponse "Невалидный операнд, неизвестная операция или деление на ноль"
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /api/v1/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Kind: "invalid_request"})
		return
	}

	n1, err := domain.ParseDecimal(req.Number1)
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}
	n2, err := domain.ParseDecimal(req.Number2)
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}
	op, err := domain.ParseOperator(req.Operation)
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}

	res, err := c.uc.Calculate(ctx.Request.Context(), req.SessionID, n1, n2, op)
	if err != nil {
		c.fail(ctx, "calculate", err)
		return
	}
	ctx.JSON(http.StatusOK, CalculateResponse{Result: res.Result.String(), Description: res.Description})
}

// @Summary Общая история
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /api/v1/history [get]
func (c *Controller) sharedHistory(ctx *gin.Context) {
	list, err := c.uc.SharedHistory(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "shared history", err)
		return
	}
	ctx.JSON(http.StatusOK, newHistoryResponse(list))
}

// @Summary Последняя операция общей истории
// @Tags history
// @Produce json
// @Success 200 {object} EntryItem
// @Failure 404 {object} ErrorResponse "История пуста"
// @Router /api/v1/history/last [get]
func (c *Controller) lastShared(ctx *gin.Context) {
	e, err := c.uc.LastShared(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "last shared", err)
		return
	}
	ctx.JSON(http.StatusOK, newEntryItem(e))
}

// @Summary Очистить общую историю
// @Tags history
// @Success 204
// @Router /api/v1/history [delete]
func (c *Controller) resetShared(ctx *gin.Context) {
	if err := c.uc.ResetShared(ctx.Request.Context()); err != nil {
		c.fail(ctx, "reset shared", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Журнал операций
// @Description Последние операции из журнала (PostgreSQL или MongoDB), последние сначала.
// @Tags journal
// @Produce json
// @Param limit query int false "Сколько записей вернуть"
// @Success 200 {object} JournalResponse
// @Failure 503 {object} ErrorResponse "Журнал выключен"
// @Router /api/v1/journal [get]
func (c *Controller) journal(ctx *gin.Context) {
	limit := 0
	if s := ctx.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit: " + s, Kind: "invalid_request"})
			return
		}
		limit = n
	}
	list, err := c.uc.Journal(ctx.Request.Context(), limit)
	if err != nil {
		c.fail(ctx, "journal", err)
		return
	}
	ctx.JSON(http.StatusOK, newJournalResponse(list))
}

// @Summary Статистика операций
// @Tags journal
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} ErrorResponse "Статистика выключена"
// @Router /api/v1/stats [get]
func (c *Controller) stats(ctx *gin.Context) {
	counts, err := c.uc.Stats(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "stats", err)
		return
	}
	ctx.JSON(http.StatusOK, StatsResponse{Counts: counts})
}

// @Summary Статистика из аналитики
// @Description Счётчики по оператору из ClickHouse (события доставляются через Kafka).
// @Tags journal
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Failure 503 {object} ErrorResponse "Аналитика выключена"
// @Router /api/v1/stats/analytics [get]
func (c *Controller) analyticsCounts(ctx *gin.Context) {
	counts, err := c.uc.AnalyticsCounts(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "analytics counts", err)
		return
	}
	ctx.JSON(http.StatusOK, AnalyticsResponse{Counts: counts})
}
