package query

import "fmt"

// MaxConditionsPerGroup is the maximum number of conditions per filter group.
const MaxConditionsPerGroup = 32

// Expression is a structured filter over stored property documents.
// Every must condition is a conjunctive constraint; the should group, when
// non-empty, contributes a single disjunctive sub-constraint (at least one
// should condition has to hold).
type Expression struct {
	must   []Condition
	should []Condition
}

// NewExpression validates and creates a filter Expression.
func NewExpression(must, should []Condition) (Expression, error) {
	if len(must) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many must conditions (max %d)", MaxConditionsPerGroup)
	}
	if len(should) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many should conditions (max %d)", MaxConditionsPerGroup)
	}
	return Expression{must: must, should: should}, nil
}

// Must returns the conjunctive conditions.
func (e Expression) Must() []Condition { return e.must }

// Should returns the disjunctive group.
func (e Expression) Should() []Condition { return e.should }

// IsEmpty reports whether the expression constrains nothing, i.e. matches
// every document.
func (e Expression) IsEmpty() bool {
	return len(e.must) == 0 && len(e.should) == 0
}

// Condition is a single filter clause: an exact field match, a numeric
// range, or a case-insensitive substring containment.
type Condition struct {
	field     string
	match     string
	rangeExpr *Range
	contains  string
}

// NewMatch creates an exact string match condition. A document without the
// field does not match.
func NewMatch(field, value string) (Condition, error) {
	if field == "" {
		return Condition{}, fmt.Errorf("filter field is required")
	}
	if value == "" {
		return Condition{}, fmt.Errorf("match value is required for field %q", field)
	}
	return Condition{field: field, match: value}, nil
}

// NewRange creates a numeric range condition. A document without the field
// does not match.
func NewRange(field string, r Range) (Condition, error) {
	if field == "" {
		return Condition{}, fmt.Errorf("filter field is required")
	}
	return Condition{field: field, rangeExpr: &r}, nil
}

// NewContains creates a case-insensitive substring condition. The value is
// treated as a literal, never as a pattern.
func NewContains(field, substr string) (Condition, error) {
	if field == "" {
		return Condition{}, fmt.Errorf("filter field is required")
	}
	if substr == "" {
		return Condition{}, fmt.Errorf("substring is required for field %q", field)
	}
	return Condition{field: field, contains: substr}, nil
}

// Field returns the document field name, possibly dotted for nested fields.
func (c Condition) Field() string { return c.field }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Range returns the numeric range.
func (c Condition) Range() *Range { return c.rangeExpr }

// Contains returns the substring to search for.
func (c Condition) Contains() string { return c.contains }

// IsMatch reports whether this is an exact match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsRange reports whether this is a numeric range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// IsContains reports whether this is a substring condition.
func (c Condition) IsContains() bool { return c.contains != "" }

// Range is a numeric range with inclusive bounds. Either bound may be absent.
// Inverted bounds (gte > lte) are deliberately allowed: the resulting filter
// simply matches nothing.
type Range struct {
	gte *float64
	lte *float64
}

// NewRangeBounds validates and creates a Range. At least one bound is
// required.
func NewRangeBounds(gte, lte *float64) (Range, error) {
	if gte == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range bound is required")
	}
	return Range{gte: gte, lte: lte}, nil
}

// GTE returns the inclusive lower bound.
func (r Range) GTE() *float64 { return r.gte }

// LTE returns the inclusive upper bound.
func (r Range) LTE() *float64 { return r.lte }
