package intake

import (
	"context"
	"testing"

	"github.com/hearthapi/hearth/internal/db/memory"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
)

func TestRepo_CreateInquiry(t *testing.T) {
	store := memory.NewStore()
	repo := New(store)
	ctx := context.Background()

	in := &domlisting.Inquiry{
		Name:       "Ada Byron",
		Email:      "ada@example.com",
		Phone:      "555-0100",
		Message:    "Is the garden unit still available?",
		PropertyID: "64f000000000000000000001",
	}
	in.ApplyDefaults()

	id, err := repo.CreateInquiry(ctx, in)
	if err != nil {
		t.Fatalf("CreateInquiry: %v", err)
	}
	if id == "" {
		t.Fatal("expected assigned id")
	}

	doc, err := store.FindByID(ctx, CollectionInquiry, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got := doc["email"]; got != "ada@example.com" {
		t.Errorf("email = %v, want ada@example.com", got)
	}
	if got := doc["source"]; got != "website" {
		t.Errorf("source = %v, want website default", got)
	}
}

func TestRepo_CreateLead(t *testing.T) {
	store := memory.NewStore()
	repo := New(store)
	ctx := context.Background()

	l := &domlisting.Lead{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Phone:    "555-0101",
		Interest: "buy",
	}

	id, err := repo.CreateLead(ctx, l)
	if err != nil {
		t.Fatalf("CreateLead: %v", err)
	}

	doc, err := store.FindByID(ctx, CollectionLead, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got := doc["name"]; got != "Grace Hopper" {
		t.Errorf("name = %v, want Grace Hopper", got)
	}
}
