package system

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger - зависимость, доступность которой проверяет readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check - именованная проверка для readiness (journal, redis, clickhouse).
type Check struct {
	Name   string
	Pinger Pinger
}

// Controller - системные маршруты: liveness, readiness, метрики Prometheus.
type Controller struct {
	checks []Check
	log    *slog.Logger
}

// New создаёт системный контроллер. Без проверок сервис готов всегда.
func New(log *slog.Logger, checks ...Check) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{checks: checks, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	for _, check := range c.checks {
		if err := check.Pinger.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "check", check.Name, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "check": check.Name, "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
