package query

import (
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// --- Range tests ---

func TestNewRangeBounds_Valid(t *testing.T) {
	tests := []struct {
		name     string
		gte, lte *float64
	}{
		{"gte only", floatPtr(100), nil},
		{"lte only", nil, floatPtr(500)},
		{"both", floatPtr(100), floatPtr(500)},
		{"inverted bounds still build", floatPtr(500), floatPtr(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRangeBounds(tt.gte, tt.lte)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (r.GTE() == nil) != (tt.gte == nil) {
				t.Error("GTE() mismatch")
			}
			if (r.LTE() == nil) != (tt.lte == nil) {
				t.Error("LTE() mismatch")
			}
		})
	}
}

func TestNewRangeBounds_NoBound(t *testing.T) {
	_, err := NewRangeBounds(nil, nil)
	if err == nil {
		t.Fatal("expected error for no bound")
	}
	if !strings.Contains(err.Error(), "at least one") {
		t.Errorf("error = %q", err)
	}
}

// --- Condition tests ---

func TestNewMatch_Valid(t *testing.T) {
	c, err := NewMatch("status", "For Sale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Field() != "status" {
		t.Errorf("Field() = %q", c.Field())
	}
	if c.Match() != "For Sale" {
		t.Errorf("Match() = %q", c.Match())
	}
	if !c.IsMatch() {
		t.Error("IsMatch() = false")
	}
	if c.IsRange() || c.IsContains() {
		t.Error("match condition reports another kind")
	}
}

func TestNewMatch_EmptyField(t *testing.T) {
	if _, err := NewMatch("", "x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewMatch_EmptyValue(t *testing.T) {
	if _, err := NewMatch("status", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewRange_Valid(t *testing.T) {
	r, _ := NewRangeBounds(floatPtr(3), nil)
	c, err := NewRange("beds", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsRange() {
		t.Error("IsRange() = false")
	}
	if c.IsMatch() || c.IsContains() {
		t.Error("range condition reports another kind")
	}
	if c.Range() == nil || c.Range().GTE() == nil || *c.Range().GTE() != 3 {
		t.Error("Range() bounds lost")
	}
}

func TestNewRange_EmptyField(t *testing.T) {
	r, _ := NewRangeBounds(floatPtr(0), nil)
	if _, err := NewRange("", r); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewContains_Valid(t *testing.T) {
	c, err := NewContains("title", "pool")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsContains() {
		t.Error("IsContains() = false")
	}
	if c.Contains() != "pool" {
		t.Errorf("Contains() = %q", c.Contains())
	}
	if c.IsMatch() || c.IsRange() {
		t.Error("contains condition reports another kind")
	}
}

func TestNewContains_Invalid(t *testing.T) {
	if _, err := NewContains("", "pool"); err == nil {
		t.Fatal("expected error for empty field")
	}
	if _, err := NewContains("title", ""); err == nil {
		t.Fatal("expected error for empty substring")
	}
}

// --- Expression tests ---

func TestNewExpression_Empty(t *testing.T) {
	expr, err := NewExpression(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expr.IsEmpty() {
		t.Error("IsEmpty() = false for empty expression")
	}
}

func TestNewExpression_Groups(t *testing.T) {
	m, _ := NewMatch("status", "For Sale")
	s1, _ := NewContains("title", "pool")
	s2, _ := NewContains("description", "pool")

	expr, err := NewExpression([]Condition{m}, []Condition{s1, s2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Must()) != 1 {
		t.Errorf("Must() len = %d", len(expr.Must()))
	}
	if len(expr.Should()) != 2 {
		t.Errorf("Should() len = %d", len(expr.Should()))
	}
	if expr.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty expression")
	}
}

func TestNewExpression_TooManyConditions(t *testing.T) {
	conds := make([]Condition, MaxConditionsPerGroup+1)
	for i := range conds {
		conds[i] = Condition{field: "f", match: "v"}
	}
	if _, err := NewExpression(conds, nil); err == nil {
		t.Fatal("expected error for too many must conditions")
	}
	if _, err := NewExpression(nil, conds); err == nil {
		t.Fatal("expected error for too many should conditions")
	}
}
