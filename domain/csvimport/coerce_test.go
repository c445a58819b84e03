package csvimport

import (
	"strings"
	"testing"
)

func TestCoerceNumber(t *testing.T) {
	spec := FieldSpec{Name: "fee", Type: FieldNumber, Required: true}

	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"199.99", 199.99, false},
		{"1,250", 1250, false}, // thousands separators stripped
		{" 42 ", 42, false},
		{"free", 0, true},
		{"", 0, true}, // required
	}

	for _, tt := range tests {
		got, err := coerce(spec, tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("coerce(%q): err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("coerce(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCoerceOptionalEmptyIsNil(t *testing.T) {
	spec := FieldSpec{Name: "fee", Type: FieldNumber}
	got, err := coerce(spec, "")
	if err != nil {
		t.Fatalf("optional empty cell must not error: %v", err)
	}
	if got != nil {
		t.Errorf("optional empty cell = %v, want nil", got)
	}
}

func TestCoerceEnumCanonicalizes(t *testing.T) {
	spec := FieldSpec{Name: "level", Type: FieldEnum, Required: true,
		Enum: []string{"beginner", "advanced"}}

	got, err := coerce(spec, "BEGINNER")
	if err != nil {
		t.Fatalf("case-insensitive enum rejected: %v", err)
	}
	if got != "beginner" {
		t.Errorf("enum not canonicalized: %v", got)
	}

	if _, err := coerce(spec, "wizard"); err == nil {
		t.Error("unknown enum value accepted")
	} else if !strings.Contains(err.Error(), "beginner, advanced") {
		t.Errorf("enum error must list accepted values: %v", err)
	}
}

func TestCoerceDateFormats(t *testing.T) {
	spec := FieldSpec{Name: "starts_at", Type: FieldDate, Required: true}

	for _, raw := range []string{"2026-01-15", "01/15/2026", "15 Jan 2026"} {
		got, err := coerce(spec, raw)
		if err != nil {
			t.Errorf("coerce(%q) failed: %v", raw, err)
			continue
		}
		if got != "2026-01-15" {
			t.Errorf("coerce(%q) = %v, want normalized 2026-01-15", raw, got)
		}
	}

	if _, err := coerce(spec, "someday"); err == nil {
		t.Error("unparseable date accepted")
	}
}

func TestCoerceNormalizeRunsFirst(t *testing.T) {
	spec := FieldSpec{
		Name: "fee", Type: FieldNumber, Required: true,
		Normalize: func(s string) string { return strings.TrimPrefix(s, "$") },
	}
	got, err := coerce(spec, "$99")
	if err != nil {
		t.Fatalf("normalized value rejected: %v", err)
	}
	if got != float64(99) {
		t.Errorf("got %v, want 99", got)
	}
}
