package catalog

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nicolesequeira/simpleshop/models"
)

// SortMode selects the ordering applied to the filtered set.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

var ErrUnknownSortMode = errors.New("catalog: unknown sort mode")

// ParseSortMode maps user input to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(s); m {
	case SortDefault, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return m, nil
	}
	return SortDefault, ErrUnknownSortMode
}

// newCollator gives locale-aware name ordering. Collators keep internal
// buffers, so each store owns one rather than sharing across sessions.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// SetCategory filters the catalog to one category ("all" for everything),
// discards any active search term and returns to page 1.
func (s *Store) SetCategory(cat string) {
	s.category = cat
	s.search = ""
	s.page = 1
	s.recompute(true)
}

// SetSearchTerm re-derives the filtered set from the current category's
// subset, matching the term case-insensitively against name, description
// and category. An empty term restores the full category subset.
func (s *Store) SetSearchTerm(term string) {
	s.search = term
	s.page = 1
	s.recompute(true)
}

// SetSortMode re-sorts the current filtered set and returns to page 1.
func (s *Store) SetSortMode(mode SortMode) {
	s.sortMode = mode
	s.page = 1
	s.recompute(false)
}

// SetPage moves to page n if it exists; out-of-range requests are
// silently ignored, mirroring the boundary guard on previous/next
// navigation.
func (s *Store) SetPage(n int) {
	if n >= 1 && n <= s.TotalPages() {
		s.page = n
	}
}

func (s *Store) NextPage() { s.SetPage(s.page + 1) }
func (s *Store) PrevPage() { s.SetPage(s.page - 1) }

// Page is the current 1-based page number.
func (s *Store) Page() int { return s.page }

// TotalPages is at least 1, even for an empty filtered set.
func (s *Store) TotalPages() int {
	n := (len(s.filtered) + PageSize - 1) / PageSize
	if n < 1 {
		n = 1
	}
	return n
}

// MatchCount is the size of the filtered set across all pages.
func (s *Store) MatchCount() int { return len(s.filtered) }

// VisibleSlice returns the products on the current page, in sorted order.
func (s *Store) VisibleSlice() []models.Product {
	start := (s.page - 1) * PageSize
	if start >= len(s.filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	out := make([]models.Product, end-start)
	copy(out, s.filtered[start:end])
	return out
}

// recompute rebuilds the visible set: filter (optional), sort, clamp page.
func (s *Store) recompute(refilter bool) {
	if refilter {
		s.filtered = s.applyFilters()
	}
	s.applySort()
	if total := s.TotalPages(); s.page > total {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}

// applyFilters narrows the full set to the active category, then to the
// search term within that subset. Search never composes with a previous
// search result.
func (s *Store) applyFilters() []models.Product {
	subset := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if s.category == AllCategories || p.Category == s.category {
			subset = append(subset, p)
		}
	}

	term := strings.ToLower(s.search)
	if term == "" {
		return subset
	}

	matched := subset[:0:0]
	for _, p := range subset {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *Store) applySort() {
	switch s.sortMode {
	case SortNameAsc:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.collator.CompareString(s.filtered[i].Name, s.filtered[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.collator.CompareString(s.filtered[j].Name, s.filtered[i].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.filtered[i].Price < s.filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.filtered[j].Price < s.filtered[i].Price
		})
	default:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.filtered[i].ID < s.filtered[j].ID
		})
	}
}
