package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"finlens/internal/decoder"
	"finlens/internal/enrichment"
	"finlens/internal/extraction"
	"finlens/internal/infrastructure"
	"finlens/internal/ratios"
	"finlens/internal/statement"
	"finlens/pkg/contracts/domain"
)

// AnalysisService runs the full document analysis pipeline: decode the
// upload, extract a canonical statement record, normalize it, compute and
// classify financial ratios, and enrich with the industry sector.
type AnalysisService struct {
	decoder        *decoder.Decoder
	extractor      *extraction.Extractor
	sectors        enrichment.SectorResolver
	metrics        *infrastructure.BusinessMetrics
	maxUploadBytes int64
	logger         *slog.Logger
}

// AnalysisResult is the complete outcome of analyzing one document.
type AnalysisResult struct {
	AnalysisID  string                           `json:"analysis_id"`
	Record      *domain.FinancialStatementRecord `json:"record"`
	Assessments []domain.RatioAssessment         `json:"assessments"`
	Summary     domain.AssessmentSummary         `json:"summary"`
	Industry    *domain.IndustrySector           `json:"industry,omitempty"`
	AnalyzedAt  time.Time                        `json:"analyzed_at"`
}

// NewAnalysisService creates an analysis service with injected dependencies.
// sectors and metrics may be nil, in which case enrichment and metric
// recording are skipped.
func NewAnalysisService(sectors enrichment.SectorResolver, metrics *infrastructure.BusinessMetrics, maxUploadBytes int64, logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("AnalysisService initialized",
		slog.Int64("max_upload_bytes", maxUploadBytes),
		slog.Bool("enrichment_enabled", sectors != nil))

	return &AnalysisService{
		decoder:        decoder.New(logger),
		extractor:      extraction.New(logger),
		sectors:        sectors,
		metrics:        metrics,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// WithHeaderScanWindow overrides how many leading lines the header metadata
// scan covers. Non-positive values keep the default.
func (s *AnalysisService) WithHeaderScanWindow(n int) *AnalysisService {
	s.extractor.WithHeaderWindow(n)
	return s
}

// AnalyzeDocument runs the pipeline over one uploaded document. filename and
// contentType drive format detection; either may be empty.
func (s *AnalysisService) AnalyzeDocument(ctx context.Context, data []byte, filename, contentType string) (result *AnalysisResult, err error) {
	start := time.Now()
	format := decoder.Format(filename, contentType)
	logger := infrastructure.LoggerWithContext(ctx).With(
		slog.String("component", "analysis"),
		slog.String("filename", filename),
		slog.String("format", format),
	)

	defer func() {
		infrastructure.RecordAnalysisMetrics(ctx, s.metrics, format, int64(len(data)), time.Since(start), err)
	}()

	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	if s.maxUploadBytes > 0 && int64(len(data)) > s.maxUploadBytes {
		logger.Warn("document rejected",
			slog.Int("size", len(data)),
			slog.Int64("limit", s.maxUploadBytes))
		return nil, ErrDocumentTooLarge
	}

	content, err := s.decoder.Decode(data, filename, contentType)
	if err != nil {
		logger.Warn("document decode failed", slog.String("error", err.Error()))
		return nil, err
	}

	var rec *domain.FinancialStatementRecord
	if content.IsSpreadsheet() {
		rec, err = s.extractor.FromRows(content.Rows)
	} else {
		rec, err = s.extractor.FromLines(content.Lines)
	}
	if err != nil {
		logger.Warn("extraction failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err = statement.Validate(rec); err != nil {
		logger.Warn("extracted record rejected", slog.String("error", err.Error()))
		return nil, err
	}

	rec = statement.Normalize(rec, logger)
	if !statement.Balances(rec) {
		infrastructure.RecordBalanceMismatch(ctx, s.metrics, rec.EntityName)
	}

	ratioSet := ratios.Compute(rec)
	assessments := ratios.Assess(ratioSet)
	summary := ratios.Summarize(assessments)

	result = &AnalysisResult{
		AnalysisID:  uuid.New().String(),
		Record:      rec,
		Assessments: assessments,
		Summary:     summary,
		AnalyzedAt:  time.Now().UTC(),
	}

	if s.sectors != nil && rec.IndustryCode != "" {
		sector := s.sectors.Resolve(ctx, rec.IndustryCode)
		result.Industry = &sector
		if sector.Source == "static" {
			infrastructure.RecordSectorFallback(ctx, s.metrics, "remote_unavailable")
		}
	}

	logger.Info("document analyzed",
		slog.String("analysis_id", result.AnalysisID),
		slog.String("entity", rec.EntityName),
		slog.Int("ratios", len(assessments)),
		slog.String("overall", string(summary.Overall)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}
