package excel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"edudesk/domain/table"
	"edudesk/internal/errors"
)

const sheetName = "Sheet1"

// minColumnWidth is the floor for the title-based width heuristic.
const minColumnWidth = 15

// Export maps a record list and column contract into an XLSX workbook:
// header row from column titles, one data row per record. The value for a
// column comes from ExportKey when set, else Key; missing values render as
// empty cells, never as a null literal. Identical input produces identical
// row content.
func Export(records []table.Record, columns []table.ColumnDefinition) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errors.ExportFailed("could not address header cell", err)
		}
		if err := f.SetCellValue(sheetName, cell, col.Title); err != nil {
			return nil, errors.ExportFailed("could not write header row", err)
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.ExportFailed("could not resolve column name", err)
		}
		width := float64(len(col.Title))
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, errors.ExportFailed("could not size column", err)
		}
	}

	for r, record := range records {
		for c, col := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, errors.ExportFailed("could not address data cell", err)
			}
			if err := f.SetCellValue(sheetName, cell, table.ResolveString(record, col.ValuePath())); err != nil {
				return nil, errors.ExportFailed("could not write data row", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.ExportFailed("could not serialize workbook", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the download name: "<hint>-<ISO date>[_<tokens>].xlsx".
// Tokens from active non-default filters keep repeated exports under
// different filters from colliding.
func Filename(hint string, now time.Time, tokens []string) string {
	name := fmt.Sprintf("%s-%s", hint, now.Format("2006-01-02"))
	for _, token := range tokens {
		if token != "" {
			name += "_" + token
		}
	}
	return name + ".xlsx"
}

// FilterTokens renders the active parts of a filter state as short
// filename tokens: one per non-"all" discrete filter value, plus "search"
// when a search term is set.
func FilterTokens(state table.FilterState) []string {
	var tokens []string
	for _, value := range sortedFilterValues(state.Filters) {
		tokens = append(tokens, sanitizeToken(value))
	}
	if strings.TrimSpace(state.SearchTerm) != "" {
		tokens = append(tokens, "search")
	}
	return tokens
}

// sortedFilterValues returns active filter values in a stable order so the
// same state always yields the same filename.
func sortedFilterValues(filters map[string]string) []string {
	names := make([]string, 0, len(filters))
	for name, value := range filters {
		if value == "" || value == table.FilterAll {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = filters[name]
	}
	return values
}

func sanitizeToken(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, value)
}
