package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/authenticating"
	insightmocks "github.com/vfg2006/margin-insights-api/internal/usecases/insighting/mocks"
	pricingmocks "github.com/vfg2006/margin-insights-api/internal/usecases/pricing/mocks"
	"github.com/vfg2006/margin-insights-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type noopTrigger struct{}

func (noopTrigger) TriggerManualSync() {}

func (noopTrigger) GetStatus() map[string]any {
	return map[string]any{}
}

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	insighter := insightmocks.NewMockInsighter(ctrl)
	pricer := pricingmocks.NewMockPricer(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "segredo"},
	}
	auth := authenticating.NewService(cfg)

	srv, err := New(cfg, insighter, pricer, auth, noopTrigger{})
	require.NoError(t, err)

	t.Run("Healthcheck sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/insights", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token escopa o negócio", func(t *testing.T) {
		token, err := auth.GenerateToken("user-1", "biz-42", middleware.RoleOwner, time.Hour)
		require.NoError(t, err)

		insighter.EXPECT().
			Evaluate(gomock.Any(), "biz-42", domain.PeriodMonth, "").
			Return(&domain.InsightResult{ZeroState: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/insights?period=mes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
