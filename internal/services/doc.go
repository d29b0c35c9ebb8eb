// Package services contains the business logic layer of the analysis
// server. Services are constructed with their dependencies injected and a
// *slog.Logger, and expose context-aware methods to the transport layer.
//
// AnalysisService is the core of the package: it owns the document analysis
// pipeline from raw upload bytes to a fully assessed statement record.
// HealthService reports liveness, readiness, and build information.
package services
