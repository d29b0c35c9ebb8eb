package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	hs := NewHealthService("1.2.3", testLogger())

	status := hs.HealthCheck(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	assert.False(t, status.Timestamp.IsZero())
}

func TestReadinessCheck(t *testing.T) {
	hs := NewHealthService("1.2.3", testLogger())

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "ready", status.Status)

	hs.RegisterCheck("enrichment", func(context.Context) ServiceHealth {
		return ServiceHealth{Status: "ready"}
	})
	status = hs.ReadinessCheck(context.Background())
	assert.Equal(t, "ready", status.Status)
	require.Contains(t, status.Services, "enrichment")

	hs.RegisterCheck("storage", func(context.Context) ServiceHealth {
		return ServiceHealth{Status: "degraded", Message: "disk full"}
	})
	status = hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)
}

func TestLivenessCheck(t *testing.T) {
	hs := NewHealthService("1.2.3", testLogger())

	status := hs.LivenessCheck(context.Background())
	assert.Equal(t, "alive", status.Status)
	assert.Contains(t, status.Runtime, "goroutines")
}

func TestVersionInfo(t *testing.T) {
	hs := NewHealthServiceWithBuildInfo("1.2.3", "2026-08-01T00:00:00Z", "abc123", testLogger())

	info := hs.Version()
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, "abc123", info["build_id"])
	assert.NotEmpty(t, info["go_version"])
}

func TestSystemStats(t *testing.T) {
	hs := NewHealthService("1.2.3", testLogger())

	stats := hs.SystemStats(context.Background())
	assert.Positive(t, stats.Goroutines)
	assert.NotEmpty(t, stats.GoVersion)
	assert.NotEmpty(t, stats.OS)
}
