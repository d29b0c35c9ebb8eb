package exporter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finlens/pkg/contracts/domain"
)

func newTestWriter() *CSVWriter {
	return NewCSVWriter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWriteCSV(t *testing.T) {
	w := newTestWriter()
	path := filepath.Join(t.TempDir(), "out.csv")

	err := w.WriteCSV(path, WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}, {"3", "4"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, "1,2", lines[1])
}

func TestWriteCSVWithBOM(t *testing.T) {
	w := newTestWriter()
	path := filepath.Join(t.TempDir(), "out.csv")

	err := w.WriteCSV(path, WriteOptions{
		Headers:   []string{"entity"},
		Records:   [][]string{{"ООО «Вектор»"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestWriteCSVCreatesDirectory(t *testing.T) {
	w := newTestWriter()
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.csv")

	err := w.WriteCSV(path, WriteOptions{Records: [][]string{{"x"}}})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestAppendToCSV(t *testing.T) {
	w := newTestWriter()
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, w.WriteCSV(path, WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"1"}},
	}))
	require.NoError(t, w.AppendToCSV(path, [][]string{{"2"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
}

func TestAssessmentRows(t *testing.T) {
	rec := &domain.FinancialStatementRecord{
		EntityName:   "ООО «Вектор»",
		IndustryCode: "62.01",
	}
	assessments := []domain.RatioAssessment{
		{Ratio: domain.RatioCurrent, Value: 2.5, Status: domain.StatusExcellent, Benchmark: ">= 2.0"},
		{Ratio: domain.RatioEquity, Value: 0.6, Status: domain.StatusGood, Benchmark: ">= 0.5"},
	}

	rows := AssessmentRows("statement.txt", rec, assessments)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"statement.txt", "ООО «Вектор»", "62.01",
		"current_ratio", "2.5000", "excellent", ">= 2.0",
	}, rows[0])
}

func TestWriteAssessments(t *testing.T) {
	w := newTestWriter()
	path := filepath.Join(t.TempDir(), "assessments.csv")

	rec := &domain.FinancialStatementRecord{EntityName: "Тест"}
	rows := AssessmentRows("doc.xlsx", rec, []domain.RatioAssessment{
		{Ratio: domain.RatioCurrent, Value: 1.25, Status: domain.StatusWarning},
	})

	require.NoError(t, w.WriteAssessments(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "source,entity,industry_code,ratio,value,status,benchmark")
	assert.Contains(t, content, "1.2500")
}
