// Package enrichment resolves industry classification codes to sector
// descriptions. Resolution is advisory: an external service is consulted
// with a strict timeout when configured, and every failure path falls back
// to the bundled static classifier table, so callers always get a value and
// never an error.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"finlens/pkg/contracts/domain"
)

// SectorResolver is the collaborator interface consumed by the analysis
// pipeline. Implementations must be safe for concurrent use.
type SectorResolver interface {
	Resolve(ctx context.Context, code string) domain.IndustrySector
}

// Static resolves codes purely from the bundled table. It is the mandatory
// offline substitute and the fallback of every other resolver.
type Static struct{}

// Resolve implements SectorResolver.
func (Static) Resolve(_ context.Context, code string) domain.IndustrySector {
	sector := domain.IndustrySector{Code: code, Source: "static"}
	if letter, name, ok := lookupSection(code); ok {
		sector.Sector = fmt.Sprintf("%s. %s", letter, name)
	}
	return sector
}

// Client consults an external sector service and falls back to the static
// table on absence, timeout or any error. The pipeline stays agnostic to
// which path produced the value.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	static  Static
	logger  *slog.Logger
}

// NewClient creates a service-backed resolver. timeout bounds each lookup so
// service latency cannot block core computation.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger.With(slog.String("component", "enrichment")),
	}
}

// sectorResponse is the wire shape of the external sector service.
type sectorResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// Resolve implements SectorResolver.
func (c *Client) Resolve(ctx context.Context, code string) domain.IndustrySector {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/sectors/%s", c.baseURL, code), nil)
	if err != nil {
		return c.fallback(ctx, code, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fallback(ctx, code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback(ctx, code, fmt.Errorf("sector service returned %d", resp.StatusCode))
	}

	var sr sectorResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return c.fallback(ctx, code, err)
	}
	if sr.Sector == "" {
		return c.fallback(ctx, code, fmt.Errorf("sector service returned empty sector"))
	}

	return domain.IndustrySector{
		Code:   code,
		Name:   sr.Name,
		Sector: sr.Sector,
		Source: "service",
	}
}

func (c *Client) fallback(ctx context.Context, code string, cause error) domain.IndustrySector {
	c.logger.Debug("sector service unavailable, using static table",
		slog.String("code", code),
		slog.String("error", cause.Error()),
	)
	return c.static.Resolve(ctx, code)
}
