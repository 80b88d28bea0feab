package catalog

import (
	"math/rand"
	"strings"
	"time"

	"digilib/internal/models"
)

// Catalog is a read-only view over a generated book collection. It is built
// once at startup and injected into whatever needs it; none of its methods
// mutate the collection or return an error.
type Catalog struct {
	books []models.Book
}

// New wraps an already-generated collection.
func New(books []models.Book) *Catalog {
	return &Catalog{books: books}
}

// NewGenerated builds a catalog from the seed tables. A non-zero seed makes
// availability reproducible; seed 0 draws from the clock, giving each
// process a fresh availability pattern.
func NewGenerated(seed int64) *Catalog {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(Generate(rand.New(rand.NewSource(seed))))
}

// CategoryFilter selects either the whole collection or a single category.
// The zero value matches nothing; construct via AllCategories or OneCategory.
type CategoryFilter struct {
	all      bool
	category models.Category
}

func AllCategories() CategoryFilter { return CategoryFilter{all: true} }

func OneCategory(c models.Category) CategoryFilter { return CategoryFilter{category: c} }

// ParseCategoryFilter maps the wire value to a filter. "Semua" (and the
// empty string) mean the whole collection; any other value filters on exact
// category match, so an unrecognised name yields an empty result rather
// than an error.
func ParseCategoryFilter(s string) CategoryFilter {
	if s == "" || s == "Semua" {
		return AllCategories()
	}
	return OneCategory(models.Category(s))
}

func (f CategoryFilter) matches(b models.Book) bool {
	return f.all || b.Category == f.category
}

// All returns the full collection in insertion order.
func (c *Catalog) All() []models.Book {
	out := make([]models.Book, len(c.books))
	copy(out, c.books)
	return out
}

// ByCategory returns the books selected by f, preserving insertion order.
func (c *Catalog) ByCategory(f CategoryFilter) []models.Book {
	return c.filter(f.matches)
}

// Search returns books whose title, author or category contains the query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []models.Book {
	q := strings.ToLower(query)
	return c.filter(func(b models.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(string(b.Category)), q)
	})
}

// Trending returns the trending-flagged books in collection order.
func (c *Catalog) Trending() []models.Book {
	return c.filter(func(b models.Book) bool { return b.Trending })
}

// Popular returns the popular-flagged books in collection order.
func (c *Catalog) Popular() []models.Book {
	return c.filter(func(b models.Book) bool { return b.Popular })
}

// ByID returns the book with the given id. A miss is not an error.
func (c *Catalog) ByID(id int) (models.Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

// Statistics aggregates counts and the mean rating over the collection.
func (c *Catalog) Statistics() models.Statistics {
	stats := models.Statistics{
		TotalBooks:    len(c.books),
		CategoryCount: make(map[models.Category]int, 5),
	}
	for _, cat := range models.Categories() {
		stats.CategoryCount[cat] = 0
	}

	var totalRating float64
	for _, b := range c.books {
		stats.CategoryCount[b.Category]++
		if b.Available {
			stats.AvailableBooks++
		} else {
			stats.BorrowedBooks++
		}
		totalRating += b.Rating
	}
	if len(c.books) > 0 {
		stats.AverageRating = totalRating / float64(len(c.books))
	}
	return stats
}

func (c *Catalog) filter(keep func(models.Book) bool) []models.Book {
	var out []models.Book
	for _, b := range c.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
