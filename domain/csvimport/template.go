package csvimport

import (
	"bytes"
	"encoding/csv"
)

// SampleTemplate renders a downloadable starter CSV for a contract: the
// header row plus one example data row. Pure data-to-file, no validation;
// offered as an always-available action separate from the import pipeline.
func SampleTemplate(contract Contract) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, len(contract.Fields))
	example := make([]string, len(contract.Fields))
	for i, field := range contract.Fields {
		header[i] = field.Name
		example[i] = field.Example
	}

	if err := writer.Write(header); err != nil {
		return nil, err
	}
	if err := writer.Write(example); err != nil {
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
