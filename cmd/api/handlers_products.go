package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/product"
)

// createProductHandler lists a product for donation and grants the donor
// the listing bonus in the same transaction.
//
//	@Summary  List a product
//	@Accept   json
//	@Produce  json
//	@Param    body body product.CreateProductRequest true "product"
//	@Success  201 {object} product.Product
//	@Router   /products [post]
func createProductHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.UserID <= 0 || req.Name == "" || req.Price == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, name and price are required"})
			return
		}
		p := &product.Product{
			UserID:      req.UserID,
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Condition:   req.Condition,
			Price:       req.Price,
			Size:        req.Size,
			Brand:       req.Brand,
			Color:       req.Color,
			ImageURL:    req.ImageURL,
		}
		if err := products.CreateWithReward(c.Request.Context(), p); err != nil {
			if errors.Is(err, product.ErrDonorNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":            p.ID,
			"points_earned": product.ListingBonusPoints,
			"coins_earned":  product.ListingBonusCoins,
		})
	}
}

// listProductsHandler returns the catalog with optional search.
//
//	@Summary  List products
//	@Produce  json
//	@Param    q      query string false "search"
//	@Param    limit  query int    false "limit"
//	@Param    offset query int    false "offset"
//	@Success  200 {object} product.ListResponse
//	@Router   /products [get]
func listProductsHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		q := product.Query{Q: c.Query("q"), Limit: limit, Offset: offset}

		items, err := products.List(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []product.Product{}
		}
		c.JSON(http.StatusOK, product.ListResponse{Q: q.Q, Limit: q.Limit, Offset: q.Offset, Items: items})
	}
}
