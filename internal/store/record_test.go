package store

import "testing"

func TestRecordTypedAccessors(t *testing.T) {
	rec := Record{}
	rec.SetInt("quantity", 7)
	rec.SetFloat("pricePerNight", 99.5)
	rec["name"] = "single"

	if n, err := rec.Int("quantity"); err != nil || n != 7 {
		t.Errorf("Int = %v, %v", n, err)
	}

	if f, err := rec.Float("pricePerNight"); err != nil || f != 99.5 {
		t.Errorf("Float = %v, %v", f, err)
	}

	if s, err := rec.String("name"); err != nil || s != "single" {
		t.Errorf("String = %v, %v", s, err)
	}
}

func TestRecordSchemaViolations(t *testing.T) {
	rec := Record{"quantity": "lots"}

	if _, err := rec.Int("quantity"); IsSchemaError(err) == nil {
		t.Errorf("non-numeric text must be a schema error, got %v", err)
	}

	if _, err := rec.Int("missing"); IsSchemaError(err) == nil {
		t.Errorf("missing field must be a schema error, got %v", err)
	}

	if _, err := rec.Float("quantity"); IsSchemaError(err) == nil {
		t.Errorf("non-numeric text must be a schema error, got %v", err)
	}
}

func TestConditionHolds(t *testing.T) {
	rec := Record{"quantity": "3"}

	tests := []struct {
		name   string
		cond   Condition
		cur    Record
		exists bool
		want   bool
	}{
		{"none always holds", None(), nil, false, true},
		{"exists on present", IfExists(), rec, true, true},
		{"exists on absent", IfExists(), nil, false, false},
		{"absent on absent", IfAbsent(), nil, false, true},
		{"absent on present", IfAbsent(), rec, true, false},
		{"at-least met", IfAtLeast("quantity", 3), rec, true, true},
		{"at-least unmet", IfAtLeast("quantity", 4), rec, true, false},
		{"at-least on absent", IfAtLeast("quantity", 1), nil, false, false},
		{"at-least on bad field", IfAtLeast("nope", 1), rec, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Holds(tt.cur, tt.exists); got != tt.want {
				t.Errorf("Holds = %v, want %v", got, tt.want)
			}
		})
	}
}
