package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digilib/internal/models"
)

func TestGenerateDeterministicWithSeed(t *testing.T) {
	first := Generate(rand.New(rand.NewSource(42)))
	second := Generate(rand.New(rand.NewSource(42)))

	require.Equal(t, len(first), len(second))
	assert.Equal(t, first, second, "same seed must reproduce the same collection, availability included")
}

func TestGenerateIDsSequentialAndUnique(t *testing.T) {
	books := Generate(rand.New(rand.NewSource(1)))

	require.NotEmpty(t, books)
	for i, b := range books {
		assert.Equal(t, i+1, b.ID)
	}
}

func TestGenerateVariantCountsPerCategory(t *testing.T) {
	books := Generate(rand.New(rand.NewSource(1)))

	counts := make(map[models.Category]int)
	for _, b := range books {
		counts[b.Category]++
	}

	for _, cs := range categorySeeds() {
		assert.Equal(t, len(cs.entries)*variantsPerSeed, counts[cs.category],
			"category %s", cs.category)
	}

	// Exact sizes of the seed tables, as a regression guard.
	assert.Equal(t, 50*variantsPerSeed, counts[models.CategoryFiction])
	assert.Equal(t, 30*variantsPerSeed, counts[models.CategoryScience])
	assert.Equal(t, 22*variantsPerSeed, counts[models.CategoryHistory])
	assert.Equal(t, 32*variantsPerSeed, counts[models.CategoryTechnology])
	assert.Equal(t, 46*variantsPerSeed, counts[models.CategoryChildren])
}

func TestGenerateVariantsShareBibliographicFields(t *testing.T) {
	books := Generate(rand.New(rand.NewSource(1)))

	for start := 0; start < len(books); start += variantsPerSeed {
		group := books[start : start+variantsPerSeed]
		first := group[0]
		for _, b := range group[1:] {
			assert.Equal(t, first.Title, b.Title)
			assert.Equal(t, first.Author, b.Author)
			assert.Equal(t, first.Category, b.Category)
			assert.Equal(t, first.Rating, b.Rating)
			assert.Equal(t, first.Pages, b.Pages)
			assert.Equal(t, first.Year, b.Year)
			// A missing PDF URL propagates to every variant alike.
			assert.Equal(t, first.PDFURL, b.PDFURL)
		}
	}
}

func TestGenerateTrendingPopularOnlyOnFixedVariants(t *testing.T) {
	books := Generate(rand.New(rand.NewSource(1)))

	for start := 0; start < len(books); start += variantsPerSeed {
		group := books[start : start+variantsPerSeed]
		for v, b := range group {
			if v != 0 {
				assert.False(t, b.Trending, "trending outside variant 0: %s", b.Title)
			}
			if v != 1 {
				assert.False(t, b.Popular, "popular outside variant 1: %s", b.Title)
			}
		}
	}
}

func TestGenerateNegativeYearsPassThrough(t *testing.T) {
	books := Generate(rand.New(rand.NewSource(1)))

	var found bool
	for _, b := range books {
		if b.Title == "The Odyssey" {
			found = true
			assert.Equal(t, -800, b.Year)
		}
	}
	require.True(t, found)
}

func TestGenerateCategoryAlwaysInClosedSet(t *testing.T) {
	valid := make(map[models.Category]bool)
	for _, c := range models.Categories() {
		valid[c] = true
	}

	for _, b := range Generate(rand.New(rand.NewSource(1))) {
		assert.True(t, valid[b.Category], "unexpected category %q", b.Category)
	}
}
