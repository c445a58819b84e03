package app

import (
	"testing"

	"edudesk/domain/table"
)

func TestBuildCards(t *testing.T) {
	records := []table.Record{
		{"status": "published", "fee": "100"},
		{"status": "draft", "fee": "300"},
		{"status": "published", "fee": "not a number"},
		{"status": "published"},
	}

	cards := BuildCards(records, []CardSpec{
		{Label: "Total", Kind: CardCount},
		{Label: "Published", Kind: CardCountWhere, Field: "status", Match: "published"},
		{Label: "Average Fee", Kind: CardMean, Field: "fee"},
		{Label: "Highest Fee", Kind: CardMax, Field: "fee"},
	})

	want := []Card{
		{Label: "Total", Value: "4"},
		{Label: "Published", Value: "3"},
		{Label: "Average Fee", Value: "200.00"}, // over the two parseable fees
		{Label: "Highest Fee", Value: "300"},
	}
	for i, card := range cards {
		if card != want[i] {
			t.Errorf("card %d = %+v, want %+v", i, card, want[i])
		}
	}
}

func TestBuildCardsEmptySeries(t *testing.T) {
	cards := BuildCards(nil, []CardSpec{{Label: "Average Fee", Kind: CardMean, Field: "fee"}})
	if cards[0].Value != "–" {
		t.Errorf("empty series must render a placeholder, got %q", cards[0].Value)
	}
}
