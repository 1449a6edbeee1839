package system

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"precisecalc/internal/mocks"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newRouter(checks ...Check) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(nil, checks...).RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	w := get(newRouter(), "/liveness")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	journal := mocks.NewMockIOperationJournal(gomock.NewController(t))
	journal.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)

	r := newRouter(Check{Name: "journal", Pinger: journal})
	assert.Equal(t, http.StatusOK, get(r, "/readyness").Code)

	r = newRouter(
		Check{Name: "journal", Pinger: journal},
		Check{Name: "redis", Pinger: pingFunc(func(context.Context) error { return errors.New("connection refused") })},
	)
	w := get(r, "/readyness")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"check":"redis"`)
}

func TestMetrics(t *testing.T) {
	w := get(newRouter(), "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
