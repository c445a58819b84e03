package app

import (
	"edudesk/domain/csvimport"
	"edudesk/domain/table"
)

// CardKind selects how one summary card derives its value.
type CardKind string

const (
	CardCount      CardKind = "count"       // total records
	CardCountWhere CardKind = "count_where" // records with Field == Match
	CardMean       CardKind = "mean"        // mean of a numeric field
	CardMax        CardKind = "max"         // max of a numeric field
)

// CardSpec declares one summary-statistic card for a screen.
type CardSpec struct {
	Label string
	Kind  CardKind
	Field string
	Match string
}

// Card is a computed summary card, ready for rendering.
type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Screen declares one back-office screen: where its records come from,
// which columns the table shows, what is searchable and filterable, what
// its summary cards are, and — when the screen supports bulk import — the
// CSV contract.
type Screen struct {
	Name             string
	Title            string
	Resource         string
	Columns          []table.ColumnDefinition
	SearchableFields []string
	DiscreteFilters  []string
	Cards            []CardSpec
	ImportContract   *csvimport.Contract
}

// Column returns the column definition for a key, if the screen has one.
func (s Screen) Column(key string) (table.ColumnDefinition, bool) {
	for _, col := range s.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return table.ColumnDefinition{}, false
}
