package table

import (
	"testing"
)

func TestResolveNestedPath(t *testing.T) {
	record := Record{
		"user": map[string]interface{}{
			"email": "jane@example.com",
			"profile": map[string]interface{}{
				"level": "advanced",
			},
		},
		"title": "Intro to Go",
	}

	tests := []struct {
		path  string
		want  interface{}
		found bool
	}{
		{"title", "Intro to Go", true},
		{"user.email", "jane@example.com", true},
		{"user.profile.level", "advanced", true},
		{"user.missing", nil, false},
		{"user.email.domain", nil, false}, // intermediate is not a mapping
		{"missing.email", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		got, ok := Resolve(record, tt.path)
		if ok != tt.found {
			t.Errorf("Resolve(%q): found=%v, want %v", tt.path, ok, tt.found)
		}
		if ok && got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResolveNilIntermediate(t *testing.T) {
	record := Record{"user": nil}
	if _, ok := Resolve(record, "user.email"); ok {
		t.Error("expected nil intermediate to resolve as missing")
	}
	if _, ok := Resolve(nil, "user.email"); ok {
		t.Error("expected nil record to resolve as missing")
	}
}

func TestResolveStringMissingIsEmpty(t *testing.T) {
	record := Record{"fee": nil}
	if got := ResolveString(record, "fee"); got != "" {
		t.Errorf("nil value rendered as %q, want empty string", got)
	}
	if got := ResolveString(record, "absent"); got != "" {
		t.Errorf("absent field rendered as %q, want empty string", got)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{"text", "text"},
		{true, "true"},
		{float64(42), "42"}, // JSON integers arrive as float64
		{float64(3.5), "3.5"},
		{int(7), "7"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Stringify(tt.value); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
