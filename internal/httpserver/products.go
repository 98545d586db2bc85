package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wishwaD7/digital-books-store/internal/catalog"
	"github.com/wishwaD7/digital-books-store/internal/domain"
)

type productListResponse struct {
	Count   int              `json:"count"`
	Results []domain.Product `json:"results"`
}

// listProductsHandler runs the query engine over the catalog. Defaults match
// the storefront's initial view: empty search, all genres, title order.
func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.QueryParams{
			Search: c.Query("search"),
			Genre:  c.DefaultQuery("genre", catalog.AllGenres),
			Sort:   catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortTitle))),
		}

		results := cat.Search(params)
		c.JSON(http.StatusOK, productListResponse{
			Count:   len(results),
			Results: results,
		})
	}
}

func getProductHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func genresHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"genres": cat.Genres()})
	}
}
