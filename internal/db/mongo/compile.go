package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hearthapi/hearth/internal/db"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// compileFilter translates a filter expression into a BSON predicate:
// must conditions join under $and, the should group becomes one $or clause.
// An empty expression compiles to the match-all document {}.
func compileFilter(e query.Expression) bson.M {
	clauses := make([]bson.M, 0, len(e.Must())+1)
	for _, c := range e.Must() {
		clauses = append(clauses, compileCondition(c))
	}

	if should := e.Should(); len(should) > 0 {
		or := make([]bson.M, 0, len(should))
		for _, c := range should {
			or = append(or, compileCondition(c))
		}
		clauses = append(clauses, bson.M{"$or": or})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

func compileCondition(c query.Condition) bson.M {
	switch {
	case c.IsMatch():
		return bson.M{c.Field(): c.Match()}
	case c.IsRange():
		r := c.Range()
		bounds := bson.M{}
		if r.GTE() != nil {
			bounds["$gte"] = *r.GTE()
		}
		if r.LTE() != nil {
			bounds["$lte"] = *r.LTE()
		}
		return bson.M{c.Field(): bounds}
	case c.IsContains():
		// QuoteMeta keeps user text from being interpreted as a pattern.
		return bson.M{c.Field(): primitive.Regex{
			Pattern: regexp.QuoteMeta(c.Contains()),
			Options: "i",
		}}
	default:
		return bson.M{}
	}
}

// compileSort maps the sort key to a BSON sort document. Recency sorts on the
// ObjectID, whose order tracks insertion time.
func compileSort(s query.Sort) bson.D {
	field := db.IDField
	if s.Key() == query.KeyPrice {
		field = "price"
	}
	dir := 1
	if s.Descending() {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}}
}
