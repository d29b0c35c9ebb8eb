// Package exporter writes analysis results to CSV files for downstream
// spreadsheet review. Output uses a UTF-8 BOM so Excel renders the Russian
// entity names correctly.
package exporter
