package services

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "finlens/internal/errors"
	"finlens/pkg/contracts/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// statementText is a complete single-line-layout balance sheet.
var statementText = strings.Join([]string{
	"Организация: ООО «Вектор»",
	"ОКВЭД: 62.01",
	"Бухгалтерский баланс",
	"Запасы 1210 35000",
	"Дебиторская задолженность 1230 60000",
	"Финансовые вложения 1240 10000",
	"Денежные средства 1250 45000",
	"Оборотные активы 1200 150000",
	"Баланс 1600 300000",
	"Капитал и резервы 1300 180000",
	"Долгосрочные обязательства 1400 60000",
	"Краткосрочные заемные средства 1510 20000",
	"Краткосрочные обязательства 1500 60000",
}, "\n")

type stubResolver struct {
	sector domain.IndustrySector
	calls  int
}

func (r *stubResolver) Resolve(_ context.Context, code string) domain.IndustrySector {
	r.calls++
	r.sector.Code = code
	return r.sector
}

func TestAnalyzeDocument(t *testing.T) {
	svc := NewAnalysisService(nil, nil, 10<<20, testLogger())

	result, err := svc.AnalyzeDocument(context.Background(), []byte(statementText), "balance.txt", "text/plain")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.AnalysisID)
	assert.False(t, result.AnalyzedAt.IsZero())

	rec := result.Record
	require.NotNil(t, rec)
	assert.Equal(t, 300000.0, rec.TotalAssets)
	assert.Equal(t, 180000.0, rec.Equity)
	// Always recomputed from the components
	assert.Equal(t, 120000.0, rec.TotalLiabilities)
	assert.Equal(t, "ООО «Вектор»", rec.EntityName)

	require.NotEmpty(t, result.Assessments)
	byRatio := make(map[domain.Ratio]domain.RatioAssessment, len(result.Assessments))
	for _, a := range result.Assessments {
		byRatio[a.Ratio] = a
	}
	current, ok := byRatio[domain.RatioCurrent]
	require.True(t, ok)
	assert.InDelta(t, 2.5, current.Value, 1e-9)
	assert.Equal(t, domain.StatusExcellent, current.Status)

	total := result.Summary.Excellent + result.Summary.Good + result.Summary.Warning + result.Summary.Critical
	assert.Equal(t, len(result.Assessments), total)

	// No resolver wired, so no sector on the result
	assert.Nil(t, result.Industry)
}

func TestAnalyzeDocumentWithEnrichment(t *testing.T) {
	resolver := &stubResolver{sector: domain.IndustrySector{
		Name:   "Разработка программного обеспечения",
		Sector: "Информация и связь",
		Source: "service",
	}}
	svc := NewAnalysisService(resolver, nil, 10<<20, testLogger())

	result, err := svc.AnalyzeDocument(context.Background(), []byte(statementText), "balance.txt", "")
	require.NoError(t, err)

	require.NotNil(t, result.Industry)
	assert.Equal(t, "62.01", result.Industry.Code)
	assert.Equal(t, "Информация и связь", result.Industry.Sector)
	assert.Equal(t, 1, resolver.calls)
}

func TestAnalyzeDocumentEmpty(t *testing.T) {
	svc := NewAnalysisService(nil, nil, 10<<20, testLogger())

	_, err := svc.AnalyzeDocument(context.Background(), nil, "balance.txt", "")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestAnalyzeDocumentTooLarge(t *testing.T) {
	svc := NewAnalysisService(nil, nil, 16, testLogger())

	_, err := svc.AnalyzeDocument(context.Background(), []byte(statementText), "balance.txt", "")
	assert.ErrorIs(t, err, ErrDocumentTooLarge)
}

func TestAnalyzeDocumentUnsupportedFormat(t *testing.T) {
	svc := NewAnalysisService(nil, nil, 10<<20, testLogger())

	_, err := svc.AnalyzeDocument(context.Background(), []byte("%PDF-1.7"), "report.pdf", "application/pdf")
	var ude *apperrors.UnsupportedDocumentError
	require.ErrorAs(t, err, &ude)
	assert.NotEmpty(t, ude.Guidance)
}

func TestAnalyzeDocumentMissingRequiredField(t *testing.T) {
	svc := NewAnalysisService(nil, nil, 10<<20, testLogger())

	// No balance total anywhere in the document
	text := "Запасы 1210 35000\nДенежные средства 1250 45000"
	_, err := svc.AnalyzeDocument(context.Background(), []byte(text), "partial.txt", "")
	var rfe *apperrors.RequiredFieldError
	require.ErrorAs(t, err, &rfe)
}
