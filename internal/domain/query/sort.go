package query

// Sort option names accepted from clients.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Key identifies the field a sort orders by.
type Key string

const (
	// KeyRecency orders by the store-assigned identifier. The identifier's
	// sort order is assumed to correlate with insertion time, which holds
	// for the ids our stores assign but is not a real timestamp. Kept for
	// compatibility with the existing API contract.
	KeyRecency Key = "recency"
	// KeyPrice orders by the price field.
	KeyPrice Key = "price"
)

// Sort is a sort key plus direction.
type Sort struct {
	key        Key
	descending bool
}

// NewestFirst sorts by descending insertion order.
func NewestFirst() Sort { return Sort{key: KeyRecency, descending: true} }

// PriceAscending sorts by ascending price.
func PriceAscending() Sort { return Sort{key: KeyPrice} }

// PriceDescending sorts by descending price.
func PriceDescending() Sort { return Sort{key: KeyPrice, descending: true} }

// Key returns the sort field.
func (s Sort) Key() Key { return s.key }

// Descending reports the sort direction.
func (s Sort) Descending() bool { return s.descending }

// String returns the client-facing sort name.
func (s Sort) String() string {
	if s.key == KeyPrice {
		if s.descending {
			return SortPriceDesc
		}
		return SortPriceAsc
	}
	return SortNewest
}

// ParseSort maps a client sort name to a Sort. Unrecognized values fall back
// to newest-first rather than erroring.
func ParseSort(name string) Sort {
	switch name {
	case SortPriceAsc:
		return PriceAscending()
	case SortPriceDesc:
		return PriceDescending()
	default:
		return NewestFirst()
	}
}
