package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"finlens/internal/enrichment"
	"finlens/internal/exporter"
	"finlens/internal/services"
	"finlens/internal/validation"
)

const analyzeTimeout = 2 * time.Minute

func main() {
	output := flag.String("out", "text", "output format: text or json")
	maxBytes := flag.Int64("max-bytes", 10<<20, "maximum document size in bytes")
	enrichURL := flag.String("enrich-url", "", "base URL of the sector classification service (static table when empty)")
	csvPath := flag.String("csv", "", "also write ratio assessments to this CSV file")
	concurrency := flag.Int("concurrency", 4, "number of documents analyzed in parallel")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyze [flags] <document>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *output != "text" && *output != "json" {
		fmt.Fprintf(os.Stderr, "unknown output format %q, expected text or json\n", *output)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var sectors enrichment.SectorResolver = enrichment.Static{}
	if *enrichURL != "" {
		sectors = enrichment.NewClient(*enrichURL, 5*time.Second, logger)
	}

	svc := services.NewAnalysisService(sectors, nil, *maxBytes, logger)

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	files := flag.Args()
	results := make([]*services.AnalysisResult, len(files))
	failures := make([]error, len(files))

	validator := validation.NewDocumentValidator(*maxBytes, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := validator.ValidateDocument(path); err != nil {
				failures[i] = err
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				failures[i] = fmt.Errorf("read %s: %w", path, err)
				return nil
			}
			result, err := svc.AnalyzeDocument(ctx, data, filepath.Base(path), "")
			if err != nil {
				failures[i] = fmt.Errorf("analyze %s: %w", path, err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("analysis aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	failed := 0
	for i, path := range files {
		if failures[i] != nil {
			failed++
			fmt.Fprintf(os.Stderr, "error: %v\n", failures[i])
			continue
		}
		if err := printResult(os.Stdout, *output, path, results[i]); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "error: print %s: %v\n", path, err)
		}
	}

	if *csvPath != "" {
		var rows [][]string
		for i, path := range files {
			if results[i] == nil {
				continue
			}
			rows = append(rows, exporter.AssessmentRows(path, results[i].Record, results[i].Assessments)...)
		}
		writer := exporter.NewCSVWriter(logger)
		if err := writer.WriteAssessments(*csvPath, rows); err != nil {
			fmt.Fprintf(os.Stderr, "error: write csv: %v\n", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func printResult(w *os.File, format, path string, result *services.AnalysisResult) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "%s\n", path)
	if result.Record.EntityName != "" {
		fmt.Fprintf(w, "  entity:   %s\n", result.Record.EntityName)
	}
	if result.Industry != nil {
		fmt.Fprintf(w, "  sector:   %s (%s)\n", result.Industry.Sector, result.Industry.Code)
	}
	fmt.Fprintf(w, "  assets:   %.2f\n", result.Record.TotalAssets)
	fmt.Fprintf(w, "  equity:   %.2f\n", result.Record.Equity)
	fmt.Fprintln(w, "  ratios:")
	for _, a := range result.Assessments {
		fmt.Fprintf(w, "    %-28s %10.4f  %s\n", a.Ratio, a.Value, a.Status)
	}
	fmt.Fprintf(w, "  overall:  %s (excellent=%d good=%d warning=%d critical=%d)\n",
		result.Summary.Overall,
		result.Summary.Excellent,
		result.Summary.Good,
		result.Summary.Warning,
		result.Summary.Critical,
	)
	return nil
}
