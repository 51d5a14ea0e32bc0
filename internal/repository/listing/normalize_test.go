package listing

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hearthapi/hearth/internal/db"
)

func TestNormalize_ObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := db.Document{"_id": oid, "title": "a"}

	out := Normalize(doc)

	if _, ok := out["_id"]; ok {
		t.Error("normalized document must not carry the internal key")
	}
	if out["id"] != oid.Hex() {
		t.Errorf("id = %v, want %s", out["id"], oid.Hex())
	}
	if out["title"] != "a" {
		t.Error("other fields must be preserved")
	}
}

func TestNormalize_StringID(t *testing.T) {
	doc := db.Document{"_id": "00000000000000000000002a", "title": "a"}

	out := Normalize(doc)
	if out["id"] != "00000000000000000000002a" {
		t.Errorf("id = %v", out["id"])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	doc := db.Document{"_id": primitive.NewObjectID(), "title": "a"}

	once := Normalize(doc)
	twice := Normalize(once)

	if len(twice) != len(once) {
		t.Fatalf("second pass changed the document: %v vs %v", twice, once)
	}
	if twice["id"] != once["id"] {
		t.Error("second pass must not rewrite the id")
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	doc := db.Document{"_id": "x", "title": "a"}

	_ = Normalize(doc)

	if _, ok := doc["_id"]; !ok {
		t.Error("input document must not be mutated")
	}
	if _, ok := doc["id"]; ok {
		t.Error("input document must not gain an id field")
	}
}
