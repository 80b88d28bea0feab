package catalog

import (
	"fmt"
	"math/rand"

	"digilib/internal/models"
)

// variantsPerSeed is how many catalog records each seed entry expands into.
// Variants share all bibliographic fields and differ only in cover image,
// availability and the trending/popular flags.
const variantsPerSeed = 7

// Generate expands the seed tables into the full catalog collection.
//
// IDs are assigned from a counter that increases monotonically across all
// categories, so absolute values depend on category order. Availability is
// drawn per variant from rng; everything else is deterministic. Seeds
// without a PDF URL propagate an empty PDFURL to all their variants.
func Generate(rng *rand.Rand) []models.Book {
	var total int
	for _, cs := range categorySeeds() {
		total += len(cs.entries) * variantsPerSeed
	}

	books := make([]models.Book, 0, total)
	id := 1
	for _, cs := range categorySeeds() {
		for seedIdx, e := range cs.entries {
			for v := 0; v < variantsPerSeed; v++ {
				books = append(books, models.Book{
					ID:          id,
					Title:       e.title,
					Author:      e.author,
					Category:    cs.category,
					Rating:      e.rating,
					Image:       cs.images[(seedIdx+v)%len(cs.images)],
					Available:   rng.Float64() > cs.unavailableProb,
					Description: fmt.Sprintf(cs.descriptionFmt, e.author),
					Pages:       e.pages,
					Year:        e.year,
					PDFURL:      e.pdfURL,
					Trending:    v == 0 && seedIdx < cs.trendingTop,
					Popular:     v == 1 && seedIdx < cs.popularTop,
				})
				id++
			}
		}
	}
	return books
}
