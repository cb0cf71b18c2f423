package catalog

import (
	"errors"

	"golang.org/x/text/collate"

	"github.com/nicolesequeira/simpleshop/models"
)

// PageSize is the number of products shown per page.
const PageSize = 4

// AllCategories is the sentinel category matching every product.
const AllCategories = "all"

var ErrEmptyCatalog = errors.New("catalog: empty or malformed product set")

// Store holds the immutable product set for a session together with the
// current view parameters (category, search term, sort mode, page).
type Store struct {
	products []models.Product
	byID     map[int]models.Product

	filtered []models.Product
	category string
	search   string
	sortMode SortMode
	page     int

	collator *collate.Collator
}

func NewStore() *Store {
	return &Store{
		category: AllCategories,
		sortMode: SortDefault,
		page:     1,
		collator: newCollator(),
	}
}

// Load validates and stores the full product set and resets the view to
// its defaults. The catalog must be non-empty, ids unique and positive,
// names and categories non-blank, prices non-negative.
func (s *Store) Load(products []models.Product) error {
	if len(products) == 0 {
		return ErrEmptyCatalog
	}

	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		if p.ID <= 0 || p.Name == "" || p.Category == "" || p.Price < 0 {
			return ErrEmptyCatalog
		}
		if _, dup := byID[p.ID]; dup {
			return ErrEmptyCatalog
		}
		byID[p.ID] = p
	}

	s.products = make([]models.Product, len(products))
	copy(s.products, products)
	s.byID = byID

	s.category = AllCategories
	s.search = ""
	s.sortMode = SortDefault
	s.page = 1
	s.recompute(true)
	return nil
}

// Categories returns "all" followed by the distinct category values in
// first-occurrence order.
func (s *Store) Categories() []string {
	cats := []string{AllCategories}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Lookup finds a product by id in the full catalog, ignoring the active
// filters.
func (s *Store) Lookup(id int) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Products returns the full loaded set in load order.
func (s *Store) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Category() string   { return s.category }
func (s *Store) SearchTerm() string { return s.search }
func (s *Store) SortMode() SortMode { return s.sortMode }
