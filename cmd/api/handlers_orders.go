package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/order"
)

// checkoutHandler finalizes an order: one transaction covering the order
// row, its line items and the user's new balances.
//
//	@Summary  Finalize an order
//	@Accept   json
//	@Produce  json
//	@Param    body body order.CheckoutRequest true "checkout"
//	@Success  201 {object} map[string]int64
//	@Router   /orders/checkout [post]
func checkoutHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.UserID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		if err := order.ValidateCheckout(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderID, err := orders.Finalize(c.Request.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			case errors.Is(err, order.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
	}
}

// listOrdersByUserHandler returns the user's order history with the
// already_rated flag per order.
//
//	@Summary  Orders of a user
//	@Produce  json
//	@Success  200 {array} order.Summary
//	@Router   /orders/user/{user_id} [get]
func listOrdersByUserHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		out, err := orders.ListByUser(c.Request.Context(), userID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []order.Summary{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderItemsHandler returns the line items of an order with product
// names for display.
//
//	@Summary  Items of an order
//	@Produce  json
//	@Success  200 {array} order.LineView
//	@Router   /orders/{id}/items [get]
func getOrderItemsHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		items, err := orders.GetItems(c.Request.Context(), orderID)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []order.LineView{}
		}
		c.JSON(http.StatusOK, items)
	}
}
