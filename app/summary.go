package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"edudesk/domain/table"
)

// BuildCards computes a screen's summary-statistic cards over a record
// set. Cards back both the analytics endpoints and the header block of
// print documents.
func BuildCards(records []table.Record, specs []CardSpec) []Card {
	cards := make([]Card, 0, len(specs))
	for _, spec := range specs {
		cards = append(cards, Card{
			Label: spec.Label,
			Value: cardValue(records, spec),
		})
	}
	return cards
}

func cardValue(records []table.Record, spec CardSpec) string {
	switch spec.Kind {
	case CardCount:
		return strconv.Itoa(len(records))

	case CardCountWhere:
		count := 0
		for _, record := range records {
			if table.ResolveString(record, spec.Field) == spec.Match {
				count++
			}
		}
		return strconv.Itoa(count)

	case CardMean:
		mean, err := stats.Mean(numericSeries(records, spec.Field))
		if err != nil {
			return "–"
		}
		return fmt.Sprintf("%.2f", mean)

	case CardMax:
		max, err := stats.Max(numericSeries(records, spec.Field))
		if err != nil {
			return "–"
		}
		return strconv.FormatFloat(max, 'f', -1, 64)

	default:
		return "–"
	}
}

// numericSeries collects the parseable numeric values of a field; records
// where the field is absent or non-numeric are skipped, not zeroed.
func numericSeries(records []table.Record, field string) []float64 {
	series := make([]float64, 0, len(records))
	for _, record := range records {
		raw := strings.TrimSpace(table.ResolveString(record, field))
		if raw == "" {
			continue
		}
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			series = append(series, value)
		}
	}
	return series
}
