package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
)

const (
	ServiceName    = "finlens-statement-analyzer"
	ServiceVersion = "v1.0.0"
	MeterName      = "finlens"
)

// OTelConfig holds OpenTelemetry configuration
type OTelConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	MetricExporter string // "prometheus", "none"
	EnableMetrics  bool
}

// OTelProviders holds the OpenTelemetry providers
type OTelProviders struct {
	MeterProvider  *sdkmetric.MeterProvider
	Meter          metric.Meter
	PrometheusHTTP http.Handler
	Logger         *slog.Logger
}

// DefaultOTelConfig returns a default OpenTelemetry configuration
func DefaultOTelConfig() *OTelConfig {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return &OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: ServiceVersion,
		Environment:    env,
		MetricExporter: "prometheus",
		EnableMetrics:  true,
	}
}

// InitializeOTel initializes OpenTelemetry metrics
func InitializeOTel(cfg *OTelConfig, logger *slog.Logger) (*OTelProviders, error) {
	if cfg == nil {
		cfg = DefaultOTelConfig()
	}

	ctx := context.Background()

	logger.InfoContext(ctx, "Initializing OpenTelemetry",
		slog.String("service", cfg.ServiceName),
		slog.String("version", cfg.ServiceVersion),
		slog.String("environment", cfg.Environment),
		slog.Bool("metrics_enabled", cfg.EnableMetrics))

	res, err := createResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	providers := &OTelProviders{
		Logger: logger,
	}

	if cfg.EnableMetrics {
		if err := initializeMetrics(ctx, cfg, res, providers); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	logger.InfoContext(ctx, "OpenTelemetry initialization complete",
		slog.Bool("metrics_enabled", cfg.EnableMetrics))

	return providers, nil
}

// createResource creates the OpenTelemetry resource
func createResource(cfg *OTelConfig) (*resource.Resource, error) {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
		attribute.String("service.instance.id", generateInstanceID()),
	), nil
}

// initializeMetrics sets up OpenTelemetry metrics
func initializeMetrics(ctx context.Context, cfg *OTelConfig, res *resource.Resource, providers *OTelProviders) error {
	switch cfg.MetricExporter {
	case "prometheus":
		exporter, err := prometheus.New()
		if err != nil {
			return fmt.Errorf("failed to create prometheus exporter: %w", err)
		}

		providers.PrometheusHTTP = promhttp.Handler()

		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)

		providers.MeterProvider = mp
		providers.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(cfg.ServiceVersion))

		otel.SetMeterProvider(mp)

	case "none":
		// No exporter - metrics disabled
		return nil
	default:
		return fmt.Errorf("unsupported metric exporter: %s", cfg.MetricExporter)
	}

	providers.Logger.InfoContext(ctx, "Metrics initialized",
		slog.String("exporter", cfg.MetricExporter))

	return nil
}

// CreateBusinessMetrics creates application-specific metrics
func CreateBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	// HTTP metrics
	httpRequestsTotal, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	httpRequestDuration, err := meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	httpActiveRequests, err := meter.Int64UpDownCounter(
		"http_active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	// Analysis pipeline metrics
	analysesTotal, err := meter.Int64Counter(
		"analyses_total",
		metric.WithDescription("Total number of document analyses"),
	)
	if err != nil {
		return nil, err
	}

	analysisDuration, err := meter.Float64Histogram(
		"analysis_duration_seconds",
		metric.WithDescription("Document analysis duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	analysisErrors, err := meter.Int64Counter(
		"analysis_errors_total",
		metric.WithDescription("Total number of failed document analyses"),
	)
	if err != nil {
		return nil, err
	}

	documentBytesProcessed, err := meter.Int64Counter(
		"analysis_document_bytes_total",
		metric.WithDescription("Total bytes of documents processed"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	balanceMismatches, err := meter.Int64Counter(
		"analysis_balance_mismatches_total",
		metric.WithDescription("Total number of statements where assets did not equal liabilities plus equity"),
	)
	if err != nil {
		return nil, err
	}

	sectorLookupFallbacks, err := meter.Int64Counter(
		"enrichment_fallbacks_total",
		metric.WithDescription("Total number of sector lookups served from the static table"),
	)
	if err != nil {
		return nil, err
	}

	// System metrics
	systemErrors, err := meter.Int64Counter(
		"system_errors_total",
		metric.WithDescription("Total number of system errors"),
	)
	if err != nil {
		return nil, err
	}

	systemUptime, err := meter.Float64UpDownCounter(
		"system_uptime_seconds",
		metric.WithDescription("System uptime in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &BusinessMetrics{
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		HTTPActiveRequests:  httpActiveRequests,

		AnalysesTotal:          analysesTotal,
		AnalysisDuration:       analysisDuration,
		AnalysisErrors:         analysisErrors,
		DocumentBytesProcessed: documentBytesProcessed,
		BalanceMismatches:      balanceMismatches,
		SectorLookupFallbacks:  sectorLookupFallbacks,

		SystemErrors: systemErrors,
		SystemUptime: systemUptime,
	}, nil
}

// BusinessMetrics holds all application-specific metrics
type BusinessMetrics struct {
	// HTTP metrics
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPActiveRequests  metric.Int64UpDownCounter

	// Analysis pipeline metrics
	AnalysesTotal          metric.Int64Counter
	AnalysisDuration       metric.Float64Histogram
	AnalysisErrors         metric.Int64Counter
	DocumentBytesProcessed metric.Int64Counter
	BalanceMismatches      metric.Int64Counter
	SectorLookupFallbacks  metric.Int64Counter

	// System metrics
	SystemErrors metric.Int64Counter
	SystemUptime metric.Float64UpDownCounter
}

// Shutdown gracefully shuts down OpenTelemetry providers
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("meter provider shutdown: %w", err)
		}
	}

	p.Logger.InfoContext(ctx, "OpenTelemetry shutdown complete")
	return nil
}

// generateInstanceID generates a unique instance identifier
func generateInstanceID() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("%s-%d", hostname, time.Now().Unix())
}

// RecordAnalysisMetrics records metrics for a single document analysis
func RecordAnalysisMetrics(ctx context.Context, metrics *BusinessMetrics, format string, size int64, duration time.Duration, err error) {
	if metrics == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("document.format", format),
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	statusAttrs := append(attrs, attribute.String("status", status))

	metrics.AnalysesTotal.Add(ctx, 1, metric.WithAttributes(statusAttrs...))
	metrics.AnalysisDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(statusAttrs...))
	metrics.DocumentBytesProcessed.Add(ctx, size, metric.WithAttributes(attrs...))

	if err != nil {
		errorAttrs := append(attrs, attribute.String("error.type", fmt.Sprintf("%T", err)))
		metrics.AnalysisErrors.Add(ctx, 1, metric.WithAttributes(errorAttrs...))
	}
}

// RecordBalanceMismatch records a statement that failed the accounting identity check
func RecordBalanceMismatch(ctx context.Context, metrics *BusinessMetrics, entity string) {
	if metrics == nil {
		return
	}

	metrics.BalanceMismatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
	))
}

// RecordSectorFallback records a sector lookup that fell back to the static table
func RecordSectorFallback(ctx context.Context, metrics *BusinessMetrics, reason string) {
	if metrics == nil {
		return
	}

	metrics.SectorLookupFallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
