package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-console/internal/config"
	"hris-console/internal/leave/mock"
	"hris-console/internal/rbac"
	"hris-console/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestBuildApp_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	svcs := &Services{
		Leave: mock.NewMockService(ctrl),
		RBAC:  rbac.NewService(rbac.NewRepository(), enforcer, zap.NewNop()),
	}

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "0123456789abcdef"
	cfg.RateLimit.PerSecond = 100
	cfg.RateLimit.Burst = 100

	router := gin.New()
	BuildApp(router, svcs, cfg, zap.NewNop())

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /healthz",
		"GET /api/v1/leaves/:type",
		"GET /api/v1/leaves/:type/export",
		"GET /api/v1/leaves/:type/:id",
		"POST /api/v1/leaves/:type",
		"POST /api/v1/leaves/:type/:id/approve",
		"POST /api/v1/leaves/:type/:id/reject",
		"GET /api/v1/employees/search",
		"POST /api/v1/attachments",
		"DELETE /api/v1/attachments",
		"POST /api/v1/rbac/enforce",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaves/annual", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServices_CloseIsIdempotent(t *testing.T) {
	calls := 0
	s := &Services{closers: []func() error{func() error { calls++; return nil }}}
	s.Close()
	s.Close()
	assert.Equal(t, 1, calls)
}
