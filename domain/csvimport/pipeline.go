package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"edudesk/domain/table"
	"edudesk/internal/errors"
)

// Run parses delimited text, validates the header row against the
// contract, then validates and coerces every data row. The first failure
// anywhere aborts the whole import: a header mismatch aborts before any
// row is parsed, and a bad row aborts with no records returned, including
// rows that validated before it. This is an intentional all-or-nothing
// policy, not best-effort row skipping.
func Run(text string, contract Contract) ([]table.Record, error) {
	rows, err := parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse CSV")
	}
	if len(rows) == 0 {
		return nil, errors.ImportHeader("file is empty")
	}

	headers := cleanHeader(rows[0].cells)
	if missing := MissingColumns(headers, contract.Required); len(missing) > 0 {
		return nil, errors.ImportHeader(fmt.Sprintf(
			"missing required columns: %s", strings.Join(missing, ", ")))
	}

	records := make([]table.Record, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if len(r.cells) != len(headers) {
			return nil, errors.ImportRow(r.line, fmt.Sprintf(
				"has %d cells, expected %d", len(r.cells), len(headers)))
		}

		record := make(table.Record, len(headers))
		for pos, header := range headers {
			value, err := coerce(contract.spec(header), r.cells[pos])
			if err != nil {
				return nil, errors.ImportRow(r.line, err.Error())
			}
			if value != nil {
				record[header] = value
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// MissingColumns returns the required column names absent from a header
// row, in contract order.
func MissingColumns(headers, required []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// row is one non-blank CSV record together with the file line it starts
// on, so validation errors can name the line the user sees in their
// editor rather than a count of non-blank rows.
type row struct {
	line  int
	cells []string
}

// parse reads comma-delimited UTF-8 text with doubled-quote escaping.
// Blank lines are ignored; ragged rows are kept so the pipeline can report
// the cell-count mismatch itself.
func parse(text string) ([]row, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []row
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(cells) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, row{line: line, cells: cells})
	}
	return rows, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cleanHeader(row []string) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		headers[i] = strings.Trim(strings.TrimSpace(cell), `"`)
	}
	return headers
}
