package infrastructure

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestOTelInitialization(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), testLogger())
	require.NoError(t, err)
	require.NotNil(t, providers)

	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.PrometheusHTTP)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestOTelInitialization_MetricsDisabled(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.EnableMetrics = false

	providers, err := InitializeOTel(cfg, testLogger())
	require.NoError(t, err)
	assert.Nil(t, providers.MeterProvider)
	assert.Nil(t, providers.PrometheusHTTP)
}

func TestOTelInitialization_UnsupportedExporter(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.MetricExporter = "statsd"

	_, err := InitializeOTel(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metric exporter")
}

func TestBusinessMetrics(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), testLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	require.NotNil(t, metrics)

	ctx := context.Background()

	// Recording must not panic with or without a metrics instance
	RecordAnalysisMetrics(ctx, metrics, "xlsx", 2048, 120*time.Millisecond, nil)
	RecordAnalysisMetrics(ctx, metrics, "txt", 512, 10*time.Millisecond, os.ErrInvalid)
	RecordBalanceMismatch(ctx, metrics, `ООО "Пример"`)
	RecordSectorFallback(ctx, metrics, "timeout")

	RecordAnalysisMetrics(ctx, nil, "xlsx", 0, 0, nil)
	RecordBalanceMismatch(ctx, nil, "")
	RecordSectorFallback(ctx, nil, "")
}

func TestPrometheusEndpoint(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), testLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	RecordAnalysisMetrics(context.Background(), metrics, "docx", 1024, 50*time.Millisecond, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
