// Package render — CSV renderer.
// Tabulates record rows into UTF-8 CSV. The header comes from the first
// row and is fixed for the lifetime of the table.
package render

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/pagescrape/core"
)

// ErrNoRows reports an empty row set: with no first row there is no header
// to derive. It is a defined outcome, not a failure — callers decide
// whether to treat it as fatal.
var ErrNoRows = errors.New("no rows to tabulate")

// ToTable encodes rows as CSV. The header row is the first row's keys, in
// that row's order, and never changes once written: later rows missing a
// header key get an empty cell, and keys outside the header are dropped.
func ToTable(rows []core.Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	header := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		header = append(header, cell.Key)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		byKey := make(map[string]string, len(row))
		for _, cell := range row {
			byKey[cell.Key] = cell.Value
		}
		record := make([]string, len(header))
		for i, key := range header {
			record[i] = byKey[key]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVRenderer tabulates the scraped link records.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes one CSV row per extracted link. A page with no links
// yields ErrNoRows.
func (r *CSVRenderer) Render(res *core.ScrapeResult) ([]byte, error) {
	rows := make([]core.Row, 0, len(res.Links))
	for _, link := range res.Links {
		rows = append(rows, link.Row())
	}
	return ToTable(rows)
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}
