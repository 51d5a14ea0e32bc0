package listing

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hearthapi/hearth/internal/db"
)

// Normalize converts a stored document into its external representation: the
// reserved identifier key is removed and replaced by a string-typed "id"
// field. A document without the reserved key is returned unchanged, so the
// conversion is idempotent. The input is never mutated.
func Normalize(doc db.Document) db.Document {
	raw, ok := doc[db.IDField]
	if !ok {
		return doc
	}

	out := make(db.Document, len(doc))
	for k, v := range doc {
		if k != db.IDField {
			out[k] = v
		}
	}
	out["id"] = idString(raw)
	return out
}

// idString renders a native identifier as the canonical external string.
func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}
