package http

import (
	"context"

	"finlens/internal/services"
)

// AnalysisServiceInterface defines the contract between the analysis handler
// and the service layer. Handlers depend on this interface rather than the
// concrete service so tests can substitute a stub.
type AnalysisServiceInterface interface {
	// AnalyzeDocument decodes the uploaded document, extracts the financial
	// statement and returns the full analysis result.
	AnalyzeDocument(ctx context.Context, data []byte, filename, contentType string) (*services.AnalysisResult, error)
}
