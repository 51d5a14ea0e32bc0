package memory

import (
	"sort"
	"strings"

	"github.com/hearthapi/hearth/internal/db"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// matchExpression reports whether a document satisfies the filter: every
// must condition holds, and at least one should condition when the group is
// non-empty.
func matchExpression(doc db.Document, e query.Expression) bool {
	for _, c := range e.Must() {
		if !matchCondition(doc, c) {
			return false
		}
	}

	should := e.Should()
	if len(should) == 0 {
		return true
	}
	for _, c := range should {
		if matchCondition(doc, c) {
			return true
		}
	}
	return false
}

// matchCondition evaluates one condition. A document without the field never
// matches, whatever the kind.
func matchCondition(doc db.Document, c query.Condition) bool {
	value, ok := lookupField(doc, c.Field())
	if !ok || value == nil {
		return false
	}

	switch {
	case c.IsMatch():
		s, ok := value.(string)
		return ok && s == c.Match()
	case c.IsRange():
		n, ok := toFloat(value)
		if !ok {
			return false
		}
		r := c.Range()
		if r.GTE() != nil && n < *r.GTE() {
			return false
		}
		if r.LTE() != nil && n > *r.LTE() {
			return false
		}
		return true
	case c.IsContains():
		s, ok := value.(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(c.Contains()))
	default:
		return false
	}
}

// lookupField resolves a possibly dotted path through nested documents.
func lookupField(doc db.Document, path string) (any, bool) {
	head, rest, nested := strings.Cut(path, ".")
	value, ok := doc[head]
	if !ok {
		return nil, false
	}
	if !nested {
		return value, true
	}

	sub, ok := toDocument(value)
	if !ok {
		return nil, false
	}
	return lookupField(sub, rest)
}

func toDocument(v any) (db.Document, bool) {
	switch m := v.(type) {
	case db.Document:
		return m, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// sortDocuments orders matches in place. Recency compares assigned ids,
// whose lexical order equals insertion order; price compares numerically
// with missing prices sorting first.
func sortDocuments(docs []db.Document, s query.Sort) {
	less := func(a, b db.Document) bool {
		if s.Key() == query.KeyPrice {
			pa, _ := toFloat(a["price"])
			pb, _ := toFloat(b["price"])
			return pa < pb
		}
		ida, _ := a[db.IDField].(string)
		idb, _ := b[db.IDField].(string)
		return ida < idb
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if s.Descending() {
			return less(docs[j], docs[i])
		}
		return less(docs[i], docs[j])
	})
}
