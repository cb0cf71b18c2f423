package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolesequeira/simpleshop/models"
)

func visibleIDs(s *Store) []int {
	var ids []int
	for _, p := range s.VisibleSlice() {
		ids = append(ids, p.ID)
	}
	return ids
}

func checkPageInvariant(t *testing.T, s *Store) {
	t.Helper()
	assert.GreaterOrEqual(t, s.TotalPages(), 1)
	assert.GreaterOrEqual(t, s.Page(), 1)
	assert.LessOrEqual(t, s.Page(), s.TotalPages())
}

func TestPageInvariantHolds(t *testing.T) {
	s := loadedStore(t)
	ops := []func(){
		func() { s.SetCategory("toys") },
		func() { s.SetSearchTerm("zzz-no-match") },
		func() { s.SetSortMode(SortPriceDesc) },
		func() { s.SetPage(99) },
		func() { s.SetPage(-3) },
		func() { s.SetCategory("all") },
		func() { s.NextPage() },
		func() { s.NextPage() },
		func() { s.PrevPage() },
	}
	checkPageInvariant(t, s)
	for _, op := range ops {
		op()
		checkPageInvariant(t, s)
	}
}

func TestSetCategory(t *testing.T) {
	t.Run("all shows first page of full set", func(t *testing.T) {
		s := loadedStore(t)
		s.SetCategory("all")
		assert.Equal(t, []int{1, 2, 3, 4}, visibleIDs(s))
		assert.Equal(t, 2, s.TotalPages())
	})

	t.Run("filters to exact category", func(t *testing.T) {
		s := loadedStore(t)
		s.SetCategory("toys")
		assert.Equal(t, []int{2, 4}, visibleIDs(s))
		assert.Equal(t, 1, s.TotalPages())
	})

	t.Run("clears active search term", func(t *testing.T) {
		s := loadedStore(t)
		s.SetCategory("toys")
		s.SetSearchTerm("bear")
		assert.Equal(t, []int{2}, visibleIDs(s))

		s.SetCategory("all")
		assert.Empty(t, s.SearchTerm())
		assert.Contains(t, visibleIDs(s), 1)
	})

	t.Run("resets to page 1", func(t *testing.T) {
		s := loadedStore(t)
		s.SetPage(2)
		require.Equal(t, 2, s.Page())
		s.SetCategory("kitchen")
		assert.Equal(t, 1, s.Page())
	})
}

func TestSetSearchTerm(t *testing.T) {
	t.Run("matches name description and category, case-insensitive", func(t *testing.T) {
		s := loadedStore(t)
		s.SetSearchTerm("BEAR")
		assert.Equal(t, []int{2}, visibleIDs(s))

		s.SetSearchTerm("kitchen")
		assert.Equal(t, []int{1, 3}, visibleIDs(s))
	})

	t.Run("searches within the current category only", func(t *testing.T) {
		s := loadedStore(t)
		s.SetCategory("kitchen")
		s.SetSearchTerm("a") // Alpaca Mug, Cactus Pot; never Bear Plush
		assert.Equal(t, []int{1, 3}, visibleIDs(s))
	})

	t.Run("re-derives from the category subset, not the previous result", func(t *testing.T) {
		s := loadedStore(t)
		s.SetSearchTerm("bear")
		require.Equal(t, []int{2}, visibleIDs(s))

		// Would be empty if it searched within the previous result.
		s.SetSearchTerm("cactus")
		assert.Equal(t, []int{3}, visibleIDs(s))
	})

	t.Run("empty term restores the category subset", func(t *testing.T) {
		s := loadedStore(t)
		s.SetCategory("toys")
		s.SetSearchTerm("bear")
		s.SetSearchTerm("")
		assert.Equal(t, []int{2, 4}, visibleIDs(s))
	})

	t.Run("no matches is a valid terminal state", func(t *testing.T) {
		s := loadedStore(t)
		s.SetSearchTerm("zzz-no-match")
		assert.Empty(t, s.VisibleSlice())
		assert.Equal(t, 0, s.MatchCount())
		assert.Equal(t, 1, s.TotalPages())
		assert.Equal(t, 1, s.Page())
	})
}

func TestSetSortMode(t *testing.T) {
	t.Run("price ascending", func(t *testing.T) {
		s := loadedStore(t)
		s.SetSortMode(SortPriceAsc)
		assert.Equal(t, []int{5, 2, 3, 1}, visibleIDs(s))
	})

	t.Run("name desc reverses name asc for distinct names", func(t *testing.T) {
		s := loadedStore(t)
		s.SetSortMode(SortNameAsc)
		asc := append([]models.Product(nil), s.VisibleSlice()...)
		s.SetPage(2)
		asc = append(asc, s.VisibleSlice()...)

		s.SetSortMode(SortNameDesc)
		desc := append([]models.Product(nil), s.VisibleSlice()...)
		s.SetPage(2)
		desc = append(desc, s.VisibleSlice()...)

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("default orders by id", func(t *testing.T) {
		s := loadedStore(t)
		s.SetSortMode(SortPriceDesc)
		s.SetSortMode(SortDefault)
		assert.Equal(t, []int{1, 2, 3, 4}, visibleIDs(s))
	})

	t.Run("keeps the active filter", func(t *testing.T) {
		s := loadedStore(t)
		s.SetCategory("toys")
		s.SetSortMode(SortPriceDesc)
		assert.Equal(t, []int{4, 2}, visibleIDs(s))
	})
}

func TestParseSortMode(t *testing.T) {
	for _, valid := range []string{"default", "name-asc", "name-desc", "price-asc", "price-desc"} {
		m, err := ParseSortMode(valid)
		require.NoError(t, err)
		assert.Equal(t, SortMode(valid), m)
	}

	_, err := ParseSortMode("price-sideways")
	assert.ErrorIs(t, err, ErrUnknownSortMode)
}

func TestSetPage(t *testing.T) {
	t.Run("moves within range", func(t *testing.T) {
		s := loadedStore(t)
		s.SetPage(2)
		assert.Equal(t, 2, s.Page())
		assert.Equal(t, []int{5}, visibleIDs(s))
	})

	t.Run("out of range is a silent no-op", func(t *testing.T) {
		s := loadedStore(t)
		s.SetPage(2)
		s.SetPage(3)
		assert.Equal(t, 2, s.Page())
		s.SetPage(0)
		assert.Equal(t, 2, s.Page())
	})

	t.Run("prev and next stop at the boundaries", func(t *testing.T) {
		s := loadedStore(t)
		s.PrevPage()
		assert.Equal(t, 1, s.Page())
		s.NextPage()
		assert.Equal(t, 2, s.Page())
		s.NextPage()
		assert.Equal(t, 2, s.Page())
	})
}

func TestPriceSortScenario(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Load([]models.Product{
		{ID: 1, Name: "A", Category: "x", Price: 10},
		{ID: 2, Name: "B", Category: "y", Price: 5},
	}))

	s.SetSortMode(SortPriceAsc)
	assert.Equal(t, []int{2, 1}, visibleIDs(s))

	s.SetCategory("y")
	s.SetSearchTerm("b")
	assert.Equal(t, []int{2}, visibleIDs(s))

	s.SetCategory("all")
	assert.Empty(t, s.SearchTerm())
	assert.Contains(t, visibleIDs(s), 1)
}
