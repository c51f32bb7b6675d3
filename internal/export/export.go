// Package export writes enriched propositions as CSV, JSON, or XLSX. The
// header always carries the full canonical column set, even for zero rows,
// so downstream spreadsheets keep a stable shape.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/legitrack/legitrack/internal/proposicao"
)

// Format identifies an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat reads a format name, defaulting to CSV for blank input.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// Write serializes props in the given format.
func Write(w io.Writer, f Format, props []proposicao.Proposicao) error {
	switch f {
	case FormatJSON:
		return JSON(w, props)
	case FormatXLSX:
		return XLSX(w, props)
	default:
		return CSV(w, props)
	}
}

// CSV writes the canonical header followed by one row per proposition.
func CSV(w io.Writer, props []proposicao.Proposicao) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(proposicao.EnrichedColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range props {
		if err := cw.Write(props[i].Row()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes the enriched entities as a JSON array, [] for zero rows.
func JSON(w io.Writer, props []proposicao.Proposicao) error {
	if props == nil {
		props = []proposicao.Proposicao{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(props)
}

// XLSX writes a single-sheet workbook with the canonical header row.
func XLSX(w io.Writer, props []proposicao.Proposicao) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range proposicao.EnrichedColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r := range props {
		for c, v := range props[r].Row() {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
