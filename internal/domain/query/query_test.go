package query

import (
	"reflect"
	"testing"
)

func mustBuild(t *testing.T, p Params) Query {
	t.Helper()
	q, err := NewBuilder().Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return q
}

func TestBuild_NoParams(t *testing.T) {
	q := mustBuild(t, Params{})

	if !q.Filter().IsEmpty() {
		t.Error("empty params should produce a match-all filter")
	}
	if q.Sort() != NewestFirst() {
		t.Errorf("Sort() = %v, want newest", q.Sort())
	}
	if q.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", q.Limit(), DefaultLimit)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	p := Params{
		Q:        "pool",
		Status:   "For Sale",
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(500000),
		Beds:     intPtr(3),
		City:     "Austin",
		Sort:     SortPriceAsc,
		Limit:    10,
	}

	a := mustBuild(t, p)
	b := mustBuild(t, p)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical params produced different queries")
	}
}

func TestBuild_EachParamContributesOneConstraint(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		wantMust int
	}{
		{"status", Params{Status: "For Rent"}, 1},
		{"beds", Params{Beds: intPtr(3)}, 1},
		{"baths", Params{Baths: floatPtr(2)}, 1},
		{"property_type", Params{PropertyType: "Condo"}, 1},
		{"city", Params{City: "Austin"}, 1},
		{"min_price only", Params{MinPrice: floatPtr(100)}, 1},
		{"max_price only", Params{MaxPrice: floatPtr(100)}, 1},
		{"price range is one constraint", Params{MinPrice: floatPtr(100), MaxPrice: floatPtr(500)}, 1},
		{"everything", Params{
			Status: "For Sale", Beds: intPtr(2), Baths: floatPtr(1.5),
			PropertyType: "House", City: "Denver",
			MinPrice: floatPtr(1), MaxPrice: floatPtr(2),
		}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustBuild(t, tt.params)
			if got := len(q.Filter().Must()); got != tt.wantMust {
				t.Errorf("Must() len = %d, want %d", got, tt.wantMust)
			}
			if len(q.Filter().Should()) != 0 {
				t.Error("Should() must be empty without q")
			}
		})
	}
}

func TestBuild_PriceRangeBounds(t *testing.T) {
	q := mustBuild(t, Params{MinPrice: floatPtr(100000), MaxPrice: floatPtr(500000)})

	must := q.Filter().Must()
	if len(must) != 1 {
		t.Fatalf("Must() len = %d", len(must))
	}
	c := must[0]
	if c.Field() != "price" || !c.IsRange() {
		t.Fatalf("expected price range, got %+v", c)
	}
	if *c.Range().GTE() != 100000 || *c.Range().LTE() != 500000 {
		t.Error("range bounds lost")
	}
}

func TestBuild_InvertedPriceRangeStillBuilds(t *testing.T) {
	q := mustBuild(t, Params{MinPrice: floatPtr(500), MaxPrice: floatPtr(100)})

	c := q.Filter().Must()[0]
	if *c.Range().GTE() != 500 || *c.Range().LTE() != 100 {
		t.Error("inverted bounds must be preserved as given")
	}
}

func TestBuild_BedsIsLowerBoundNotExact(t *testing.T) {
	q := mustBuild(t, Params{Beds: intPtr(3)})

	c := q.Filter().Must()[0]
	if c.Field() != "beds" || !c.IsRange() {
		t.Fatalf("expected beds range, got %+v", c)
	}
	if c.Range().GTE() == nil || *c.Range().GTE() != 3 {
		t.Error("beds should be an inclusive lower bound")
	}
	if c.Range().LTE() != nil {
		t.Error("beds must not have an upper bound")
	}
}

func TestBuild_TextSearchGroup(t *testing.T) {
	q := mustBuild(t, Params{Q: "pool", City: "Austin"})

	should := q.Filter().Should()
	if len(should) != 2 {
		t.Fatalf("Should() len = %d, want 2", len(should))
	}
	fields := map[string]bool{}
	for _, c := range should {
		if !c.IsContains() || c.Contains() != "pool" {
			t.Errorf("unexpected should condition %+v", c)
		}
		fields[c.Field()] = true
	}
	if !fields["title"] || !fields["description"] {
		t.Error("q must cover title and description")
	}
	if len(q.Filter().Must()) != 1 {
		t.Error("q must AND with the other constraints")
	}
}

func TestBuild_CityFiltersNestedFieldOnly(t *testing.T) {
	q := mustBuild(t, Params{City: "Austin"})

	c := q.Filter().Must()[0]
	if c.Field() != "location.city" {
		t.Errorf("Field() = %q, want location.city", c.Field())
	}
}

func TestBuild_SortOptions(t *testing.T) {
	tests := []struct {
		sort string
		want Sort
	}{
		{"", NewestFirst()},
		{SortNewest, NewestFirst()},
		{SortPriceAsc, PriceAscending()},
		{SortPriceDesc, PriceDescending()},
		{"bogus", NewestFirst()},
	}

	for _, tt := range tests {
		t.Run("sort="+tt.sort, func(t *testing.T) {
			q := mustBuild(t, Params{Sort: tt.sort})
			if q.Sort() != tt.want {
				t.Errorf("Sort() = %v, want %v", q.Sort(), tt.want)
			}
		})
	}
}

func TestBuild_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"absent defaults", 0, DefaultLimit},
		{"negative defaults", -5, DefaultLimit},
		{"explicit kept", 10, 10},
		{"capped at max", MaxLimit + 50, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustBuild(t, Params{Limit: tt.limit})
			if q.Limit() != tt.want {
				t.Errorf("Limit() = %d, want %d", q.Limit(), tt.want)
			}
		})
	}
}

func TestBuilder_WithLimits(t *testing.T) {
	b := NewBuilder().WithLimits(12, 48)

	q, err := b.Build(Params{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.Limit() != 12 {
		t.Errorf("default limit = %d, want 12", q.Limit())
	}

	q, err = b.Build(Params{Limit: 90})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.Limit() != 48 {
		t.Errorf("capped limit = %d, want 48", q.Limit())
	}
}

func TestParseSort_String(t *testing.T) {
	for _, name := range []string{SortNewest, SortPriceAsc, SortPriceDesc} {
		if got := ParseSort(name).String(); got != name {
			t.Errorf("ParseSort(%q).String() = %q", name, got)
		}
	}
	if got := ParseSort("bogus").String(); got != SortNewest {
		t.Errorf("ParseSort(bogus).String() = %q", got)
	}
}
