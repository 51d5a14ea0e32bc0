// Package query translates the optional, independent property search
// parameters into a strongly typed filter expression, sort key and result
// limit ready for a document store.
package query

import "fmt"

// Pagination limits applied when a request does not set its own.
const (
	DefaultLimit = 24
	MaxLimit     = 100
)

// Document fields the builder filters and sorts on.
const (
	fieldStatus       = "status"
	fieldPrice        = "price"
	fieldBeds         = "beds"
	fieldBaths        = "baths"
	fieldPropertyType = "property_type"
	fieldCity         = "location.city"
	fieldTitle        = "title"
	fieldDescription  = "description"
)

// Params are the search inputs. Zero values mean "no constraint". All inputs
// are assumed well typed; malformed numerics are rejected at the HTTP binding
// boundary before reaching the builder.
type Params struct {
	Q            string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
	Beds         *int
	Baths        *float64
	PropertyType string
	City         string
	Sort         string
	Limit        int
}

// Query is the builder output: a filter, a sort key and a limit, ready for a
// store's find/sort/limit operations. The filter alone drives total counts.
type Query struct {
	filter Expression
	sort   Sort
	limit  int
}

// Filter returns the filter expression.
func (q Query) Filter() Expression { return q.filter }

// Sort returns the sort key.
func (q Query) Sort() Sort { return q.sort }

// Limit returns the result cap.
func (q Query) Limit() int { return q.limit }

// Builder turns Params into Queries. The zero-value limits are replaced by
// the package defaults.
type Builder struct {
	defaultLimit int
	maxLimit     int
}

// NewBuilder creates a Builder with the default pagination limits.
func NewBuilder() Builder {
	return Builder{defaultLimit: DefaultLimit, maxLimit: MaxLimit}
}

// WithLimits overrides the default and maximum result limits.
func (b Builder) WithLimits(defaultLimit, maxLimit int) Builder {
	if defaultLimit > 0 {
		b.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		b.maxLimit = maxLimit
	}
	return b
}

// Build deterministically translates params into a Query. Every present
// parameter contributes one conjunctive constraint; absent parameters
// contribute nothing. Q contributes a disjunctive title/description substring
// group ANDed with the rest. Min/max price compose into one inclusive range;
// inverted bounds are built as given and match nothing. Beds and baths are
// inclusive lower bounds.
func (b Builder) Build(p Params) (Query, error) {
	var must []Condition

	appendMatch := func(field, value string) error {
		if value == "" {
			return nil
		}
		c, err := NewMatch(field, value)
		if err != nil {
			return err
		}
		must = append(must, c)
		return nil
	}

	if err := appendMatch(fieldStatus, p.Status); err != nil {
		return Query{}, fmt.Errorf("status filter: %w", err)
	}

	if p.Beds != nil {
		c, err := lowerBound(fieldBeds, float64(*p.Beds))
		if err != nil {
			return Query{}, fmt.Errorf("beds filter: %w", err)
		}
		must = append(must, c)
	}
	if p.Baths != nil {
		c, err := lowerBound(fieldBaths, *p.Baths)
		if err != nil {
			return Query{}, fmt.Errorf("baths filter: %w", err)
		}
		must = append(must, c)
	}

	if err := appendMatch(fieldPropertyType, p.PropertyType); err != nil {
		return Query{}, fmt.Errorf("property_type filter: %w", err)
	}
	if err := appendMatch(fieldCity, p.City); err != nil {
		return Query{}, fmt.Errorf("city filter: %w", err)
	}

	if p.MinPrice != nil || p.MaxPrice != nil {
		r, err := NewRangeBounds(p.MinPrice, p.MaxPrice)
		if err != nil {
			return Query{}, fmt.Errorf("price range: %w", err)
		}
		c, err := NewRange(fieldPrice, r)
		if err != nil {
			return Query{}, fmt.Errorf("price filter: %w", err)
		}
		must = append(must, c)
	}

	var should []Condition
	if p.Q != "" {
		for _, field := range []string{fieldTitle, fieldDescription} {
			c, err := NewContains(field, p.Q)
			if err != nil {
				return Query{}, fmt.Errorf("text filter: %w", err)
			}
			should = append(should, c)
		}
	}

	filter, err := NewExpression(must, should)
	if err != nil {
		return Query{}, fmt.Errorf("build filter: %w", err)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = b.defaultLimit
	}
	if limit > b.maxLimit {
		limit = b.maxLimit
	}

	return Query{filter: filter, sort: ParseSort(p.Sort), limit: limit}, nil
}

func lowerBound(field string, min float64) (Condition, error) {
	r, err := NewRangeBounds(&min, nil)
	if err != nil {
		return Condition{}, err
	}
	return NewRange(field, r)
}
