package enums

import "fmt"

// SortKey selects the comparator applied to the current filtered catalog
// view. SortKeyNewest is a stable partition by the is_new flag, not a total
// order: items with the flag come first and relative order is otherwise
// preserved, so applying it twice is a no-op.
type SortKey string

const (
	SortKeyPriceAsc  SortKey = "price-asc"
	SortKeyPriceDesc SortKey = "price-desc"
	SortKeyRating    SortKey = "rating"
	SortKeyNewest    SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyRating,
	SortKeyNewest,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
