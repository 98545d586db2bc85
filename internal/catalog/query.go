package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wishwaD7/digital-books-store/internal/domain"
)

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortPrice  SortKey = "price"
	SortRating SortKey = "rating"
	SortTitle  SortKey = "title"
)

// QueryParams are the user-supplied browse controls. All conditions are
// AND-combined.
type QueryParams struct {
	Search string
	Genre  string
	Sort   SortKey
}

// Search returns the products matching params, sorted per params.Sort. It is
// a pure function of the catalog and params; the catalog order is never
// mutated. An unknown sort key leaves the catalog order untouched.
func (c *Catalog) Search(params QueryParams) []domain.Product {
	needle := strings.ToLower(params.Search)

	matched := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if !matchesText(p, needle) {
			continue
		}
		if params.Genre != "" && params.Genre != AllGenres && p.Genre != params.Genre {
			continue
		}
		matched = append(matched, p)
	}

	switch params.Sort {
	case SortPrice:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].EffectivePrice().LessThan(matched[j].EffectivePrice())
		})
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	case SortTitle:
		coll := collate.New(language.English)
		sort.SliceStable(matched, func(i, j int) bool {
			return coll.CompareString(matched[i].Title, matched[j].Title) < 0
		})
	}

	return matched
}

func matchesText(p domain.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Author), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
