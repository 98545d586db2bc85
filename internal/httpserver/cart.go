package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/wishwaD7/digital-books-store/internal/cart"
	"github.com/wishwaD7/digital-books-store/internal/domain"
)

type cartResponse struct {
	LineItems     []domain.CartLine `json:"lineItems"`
	TotalPrice    decimal.Decimal   `json:"totalPrice"`
	TotalQuantity int               `json:"totalQuantity"`
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type updateItemRequest struct {
	// Pointer so that an explicit zero (remove the line) is distinguishable
	// from a missing field.
	Quantity *int `json:"quantity" binding:"required"`
}

func toCartResponse(store *cart.Store) cartResponse {
	lines := store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{
		LineItems:     lines,
		TotalPrice:    store.Total(),
		TotalQuantity: store.ItemCount(),
	}
}

func getCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		product, err := deps.Catalog.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		deps.Cart.AddToCart(c.Request.Context(), product)
		c.JSON(http.StatusOK, toCartResponse(deps.Cart))
	}
}

func updateCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		store.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func removeCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveFromCart(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func clearCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.ClearCart(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}
