package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carteasy/internal/models"
)

func TestApplyDefaultsKeepsEverything(t *testing.T) {
	list := Products()
	got := Apply(list, DefaultFilterOptions(list))
	assert.Len(t, got, len(list))
}

func TestApplyFiltersHold(t *testing.T) {
	list := Products()
	cases := []models.FilterOptions{
		{Category: "Electronics", MinPrice: 0, MaxPrice: 200000},
		{Category: "Smart Home", MinPrice: 0, MaxPrice: 200000},
		{Category: AllCategories, MinPrice: 8000, MaxPrice: 20000},
		{Category: AllCategories, MinPrice: 0, MaxPrice: 200000, InStock: true},
		{Category: AllCategories, MinPrice: 0, MaxPrice: 200000, SearchQuery: "WIRELESS"},
		{Category: "electronics", MinPrice: 10000, MaxPrice: 50000, InStock: true, SearchQuery: "smart"},
	}

	for _, opts := range cases {
		got := Apply(list, opts)
		for _, p := range got {
			if opts.Category != AllCategories {
				assert.True(t, strings.EqualFold(p.Category, opts.Category), "%s category", p.Name)
			}
			assert.GreaterOrEqual(t, p.Price, opts.MinPrice)
			assert.LessOrEqual(t, p.Price, opts.MaxPrice)
			if opts.InStock {
				assert.True(t, p.InStock, p.Name)
			}
			if opts.SearchQuery != "" {
				q := strings.ToLower(opts.SearchQuery)
				assert.True(t,
					strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q),
					p.Name)
			}
		}
	}
}

func TestApplyCategoryCounts(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)

	opts.Category = "Smart Home"
	assert.Len(t, Apply(list, opts), 2)

	opts.Category = "Electronics"
	assert.Len(t, Apply(list, opts), 7)

	opts.InStock = true
	assert.Len(t, Apply(list, opts), 6)
}

func TestApplyInclusivePriceRange(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)
	opts.MinPrice, opts.MaxPrice = 8999, 8999

	got := Apply(list, opts)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, int64(8999), p.Price)
	}
}

func TestApplySortByPrice(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)

	opts.SortBy = SortPriceAsc
	got := Apply(list, opts)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}

	opts.SortBy = SortPriceDesc
	got = Apply(list, opts)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestApplySortByName(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)

	opts.SortBy = SortNameAsc
	got := Apply(list, opts)
	assert.Equal(t, "Air Fryer", got[0].Name)
	assert.Equal(t, "Wireless Earbuds", got[len(got)-1].Name)

	opts.SortBy = SortNameDesc
	got = Apply(list, opts)
	assert.Equal(t, "Wireless Earbuds", got[0].Name)
}

func TestApplySortByRating(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)
	opts.SortBy = SortRatingDesc

	got := Apply(list, opts)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestApplySortFeatured(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)

	got := Apply(list, opts)
	seenPlain := false
	for i, p := range got {
		if !p.IsFeatured() {
			seenPlain = true
		} else {
			assert.False(t, seenPlain, "featured %s after a plain product", p.Name)
		}
		if i > 0 && got[i-1].IsFeatured() == p.IsFeatured() {
			assert.GreaterOrEqual(t, got[i-1].Rating, p.Rating)
		}
	}
	// Professional DSLR Camera y Gaming Console (4.9) encabezan los destacados
	assert.Equal(t, "6", got[0].ID)
	assert.Equal(t, "18", got[1].ID)
}

func TestApplyUnknownSortFallsBackToFeatured(t *testing.T) {
	list := Products()
	opts := DefaultFilterOptions(list)
	featured := Apply(list, opts)

	opts.SortBy = "bogus"
	assert.Equal(t, ids(featured), ids(Apply(list, opts)))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	list := Products()
	before := ids(list)

	opts := DefaultFilterOptions(list)
	opts.SortBy = SortPriceDesc
	Apply(list, opts)

	assert.Equal(t, before, ids(list))
}

func TestIsValidSort(t *testing.T) {
	assert.True(t, IsValidSort(SortRatingDesc))
	assert.False(t, IsValidSort("popularity"))
}
