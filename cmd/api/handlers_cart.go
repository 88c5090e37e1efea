package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/cart"
)

type cartItemRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// addCartItemHandler puts a product in the user's cart.
//
//	@Summary  Add to cart
//	@Accept   json
//	@Produce  json
//	@Router   /cart/items [post]
func addCartItemHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserID <= 0 || req.ProductID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and product_id are required"})
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}
		if err := carts.Add(c.Request.Context(), req.UserID, req.ProductID, req.Quantity); err != nil {
			if errors.Is(err, cart.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user or product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "added to cart"})
	}
}

// getCartHandler lists the user's cart joined with product rows.
//
//	@Summary  Get cart
//	@Produce  json
//	@Success  200 {array} cart.Item
//	@Router   /cart/{user_id} [get]
func getCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		items, err := carts.ListByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []cart.Item{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// removeCartItemHandler deletes one product from the user's cart.
//
//	@Summary  Remove from cart
//	@Accept   json
//	@Produce  json
//	@Router   /cart/items [delete]
func removeCartItemHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserID <= 0 || req.ProductID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and product_id are required"})
			return
		}
		removed, err := carts.Remove(c.Request.Context(), req.UserID, req.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "removed from cart"})
	}
}
