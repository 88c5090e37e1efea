package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/rating"
)

// rateOrderHandler records a rating and grants the author the fixed
// bonus. A duplicate submission is not an error: it answers 200 with
// accepted=false and mutates nothing.
//
//	@Summary  Rate an order
//	@Accept   json
//	@Produce  json
//	@Param    body body rating.SubmitRequest true "rating"
//	@Success  201 {object} map[string]bool
//	@Router   /orders/{id}/ratings [post]
func rateOrderHandler(ratings rating.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var req rating.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.UserID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		if req.Score < 1 || req.Score > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 1 and 5"})
			return
		}

		rt := &rating.Rating{OrderID: orderID, UserID: req.UserID, Score: req.Score, Comment: req.Comment}
		if err := ratings.Create(c.Request.Context(), rt); err != nil {
			switch {
			case errors.Is(err, rating.ErrAlreadyRated):
				c.JSON(http.StatusOK, gin.H{"accepted": false})
			case errors.Is(err, rating.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"accepted":      true,
			"points_earned": rating.BonusPoints,
			"coins_earned":  rating.BonusCoins,
		})
	}
}

// getOrderRatingsHandler lists the ratings left on one order.
//
//	@Summary  Ratings of an order
//	@Produce  json
//	@Success  200 {array} rating.View
//	@Router   /orders/{id}/ratings [get]
func getOrderRatingsHandler(ratings rating.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		out, err := ratings.ListByOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []rating.View{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getDonorRatingsHandler lists ratings on all orders containing the
// donor's products.
//
//	@Summary  Ratings received by a donor
//	@Produce  json
//	@Success  200 {array} rating.View
//	@Router   /donors/{id}/ratings [get]
func getDonorRatingsHandler(ratings rating.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		donorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donor id"})
			return
		}
		out, err := ratings.ListByDonor(c.Request.Context(), donorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []rating.View{}
		}
		c.JSON(http.StatusOK, out)
	}
}
