package products

import (
	"sort"
	"strings"

	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/pkg/enums"
)

// State is the catalog view slice: the immutable listing plus a derived
// filtered view. The two filters are deliberately asymmetric, matching the
// observed storefront behavior: selecting a category REPLACES the view
// (dropping any search narrowing), while setting a search query INTERSECTS
// with the active category. Whichever filter ran last wins outside of that
// one conjunction.
type State struct {
	SelectedCategory string
	SearchQuery      string
	Loading          bool
	Filtered         []catalog.Product

	source *catalog.Catalog
}

// NewState builds a view over the catalog with no filters applied.
func NewState(source *catalog.Catalog) *State {
	return &State{
		SelectedCategory: catalog.CategoryAll,
		Filtered:         source.Products(),
		source:           source,
	}
}

// SetCategory selects a category and recomputes the view from the full
// listing. Matching is exact and case-sensitive; the sentinel CategoryAll
// restores the full listing. Any prior search narrowing is dropped.
func (s *State) SetCategory(category string) bool {
	s.SelectedCategory = category
	if category == catalog.CategoryAll {
		s.Filtered = s.source.Products()
		return true
	}
	s.Filtered = filter(s.source.Products(), func(p catalog.Product) bool {
		return p.Category == category
	})
	return true
}

// SetSearch recomputes the view as a case-insensitive substring match over
// name, brand, category and description, intersected with the selected
// category when one other than CategoryAll is active.
func (s *State) SetSearch(query string) bool {
	s.SearchQuery = query
	q := strings.ToLower(query)

	filtered := filter(s.source.Products(), func(p catalog.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})

	if s.SelectedCategory != "" && s.SelectedCategory != catalog.CategoryAll {
		filtered = filter(filtered, func(p catalog.Product) bool {
			return p.Category == s.SelectedCategory
		})
	}

	s.Filtered = filtered
	return true
}

// ClearFilters resets category and query and restores the full listing.
func (s *State) ClearFilters() bool {
	s.SelectedCategory = catalog.CategoryAll
	s.SearchQuery = ""
	s.Filtered = s.source.Products()
	return true
}

// SetLoading sets the view's loading flag.
func (s *State) SetLoading(loading bool) bool {
	s.Loading = loading
	return true
}

// FilterByPetType narrows the view to cat products (cat furniture or a
// "cat" name), their complement for dogs, or the full listing.
func (s *State) FilterByPetType(petType enums.PetType) bool {
	switch petType {
	case enums.PetTypeCat:
		s.Filtered = filter(s.source.Products(), isCatProduct)
	case enums.PetTypeDog:
		s.Filtered = filter(s.source.Products(), func(p catalog.Product) bool {
			return !strings.Contains(p.Category, "Cat") && !strings.Contains(strings.ToLower(p.Name), "cat")
		})
	case enums.PetTypeAll:
		s.Filtered = s.source.Products()
	default:
		return false
	}
	return true
}

// Sort applies the comparator to the CURRENT filtered view in place; it does
// not recompute from the source. SortKeyNewest is a stable partition by the
// is_new flag, not a total order: applying it repeatedly changes nothing.
func (s *State) Sort(key enums.SortKey) bool {
	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(s.Filtered, func(i, j int) bool {
			return s.Filtered[i].Price.LessThan(s.Filtered[j].Price)
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(s.Filtered, func(i, j int) bool {
			return s.Filtered[j].Price.LessThan(s.Filtered[i].Price)
		})
	case enums.SortKeyRating:
		sort.SliceStable(s.Filtered, func(i, j int) bool {
			return s.Filtered[i].Rating > s.Filtered[j].Rating
		})
	case enums.SortKeyNewest:
		sort.SliceStable(s.Filtered, func(i, j int) bool {
			return s.Filtered[i].IsNew && !s.Filtered[j].IsNew
		})
	default:
		return false
	}
	return true
}

// Snapshot returns a copy safe to hand outside the dispatch lock.
func (s *State) Snapshot() State {
	out := State{
		SelectedCategory: s.SelectedCategory,
		SearchQuery:      s.SearchQuery,
		Loading:          s.Loading,
		Filtered:         make([]catalog.Product, len(s.Filtered)),
	}
	for i, p := range s.Filtered {
		out.Filtered[i] = p.Copy()
	}
	return out
}

func isCatProduct(p catalog.Product) bool {
	return p.Category == "Cat Furniture" || strings.Contains(strings.ToLower(p.Name), "cat")
}

func filter(products []catalog.Product, keep func(catalog.Product) bool) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
