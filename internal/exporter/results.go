package exporter

import (
	"fmt"

	"finlens/pkg/contracts/domain"
)

// assessmentHeaders is the column layout of the ratio assessment export.
var assessmentHeaders = []string{
	"source",
	"entity",
	"industry_code",
	"ratio",
	"value",
	"status",
	"benchmark",
}

// AssessmentRows flattens one analysis into CSV rows, one per ratio.
func AssessmentRows(source string, rec *domain.FinancialStatementRecord, assessments []domain.RatioAssessment) [][]string {
	rows := make([][]string, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, []string{
			source,
			rec.EntityName,
			rec.IndustryCode,
			string(a.Ratio),
			formatFloat(a.Value),
			string(a.Status),
			a.Benchmark,
		})
	}
	return rows
}

// WriteAssessments writes the flattened assessment rows to path.
func (w *CSVWriter) WriteAssessments(path string, rows [][]string) error {
	return w.WriteCSV(path, WriteOptions{
		Headers:   assessmentHeaders,
		Records:   rows,
		BOMPrefix: true,
	})
}

// formatFloat formats a ratio value with four decimal places so small
// differences between assessments survive the round trip through Excel.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.4f", f)
}
