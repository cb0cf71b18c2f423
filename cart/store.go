package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nicolesequeira/simpleshop/models"
)

var (
	ErrUnknownProduct = errors.New("cart: unknown product")
	ErrEmptyCart      = errors.New("cart: empty cart")
)

// Storage is the persistence port the cart writes through. Implementations
// live in the storage package; tests use the in-memory one.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Catalog is the product lookup Add validates against.
type Catalog interface {
	Lookup(id int) (models.Product, bool)
}

// Store is a persisted list of cart lines, at most one per product id,
// kept in first-add insertion order.
type Store struct {
	storage Storage
	key     string
	lines   []models.CartLine
}

// New builds a cart over the given storage key and restores any persisted
// lines. Absent or malformed persisted data yields an empty cart; the
// storage layer is a best-effort cache, not a source of truth.
func New(storage Storage, key string) *Store {
	s := &Store{storage: storage, key: key}
	raw, ok := storage.Get(key)
	if !ok {
		return s
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return s
	}
	for _, l := range lines {
		if l.ProductID <= 0 || l.Quantity <= 0 {
			s.lines = nil
			return s
		}
		s.lines = append(s.lines, l)
	}
	return s
}

// Add puts one unit of the product in the cart. A line already holding the
// id gets its quantity bumped; otherwise a new line snapshots the
// product's id, name and price. The cart is persisted before returning.
func (s *Store) Add(productID int, cat Catalog) error {
	p, ok := cat.Lookup(productID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownProduct, productID)
	}

	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
		})
	}
	return s.persist()
}

// Remove drops the line for productID. Removing an id that is not in the
// cart is a no-op, not an error.
func (s *Store) Remove(productID int) error {
	kept := s.lines[:0:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(s.lines) {
		return nil
	}
	s.lines = kept
	return s.persist()
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums price*quantity over all lines; 0 for an empty cart.
func (s *Store) Total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// ItemCount sums quantities across lines, for the cart badge. Distinct
// from the number of lines.
func (s *Store) ItemCount() int {
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Clear empties the cart and removes the persisted entry.
func (s *Store) Clear() error {
	s.lines = nil
	return s.storage.Delete(s.key)
}

// Checkout reports the order total and empties the cart. No payment is
// made; this is a confirmation protocol only.
func (s *Store) Checkout() (float64, error) {
	if len(s.lines) == 0 {
		return 0, ErrEmptyCart
	}
	total := s.Total()
	if err := s.Clear(); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("cart: encode: %w", err)
	}
	if err := s.storage.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("cart: persist: %w", err)
	}
	return nil
}
