// Package config provides centralized configuration management for the
// financial statement analysis service. It handles loading configuration
// from multiple sources, validation, and provides a type-safe API for
// accessing configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (configs/config.yaml)
//	3. Struct-tag defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern FINLENS_* for namespacing:
//
//	FINLENS_SERVER_PORT=8080
//	FINLENS_LOGGING_LEVEL=info
//	FINLENS_ENRICHMENT_BASE_URL=https://classifier.internal
//	FINLENS_ANALYSIS_MAX_UPLOAD_BYTES=10485760
//
// # Validation
//
// All configuration is validated at load time to ensure required fields
// are present and values are within acceptable ranges. Logging settings
// that would break structured output are coerced back to JSON rather
// than rejected.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	addr := fmt.Sprintf(":%d", cfg.Server.Port)
package config
