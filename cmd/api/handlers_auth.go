package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/user"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler creates a user with zero balances.
//
//	@Summary  Register a new user
//	@Accept   json
//	@Produce  json
//	@Success  201 {object} user.User
//	@Router   /register [post]
func registerHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
			return
		}
		hash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash error"})
			return
		}
		u := &user.User{Name: req.Name, Email: req.Email, Address: req.Address, PasswordHash: hash}
		if err := users.Create(c.Request.Context(), u); err != nil {
			if errors.Is(err, user.ErrAlreadyExist) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// loginHandler verifies credentials and returns the profile, including
// current points and coins.
//
//	@Summary  Log in
//	@Accept   json
//	@Produce  json
//	@Success  200 {object} user.User
//	@Router   /login [post]
func loginHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		u, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || !user.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// getUserHandler returns a profile without the password hash.
//
//	@Summary  Get user by id
//	@Produce  json
//	@Success  200 {object} user.User
//	@Router   /users/{id} [get]
func getUserHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		u, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// rankingHandler lists users by points, descending.
//
//	@Summary  Points leaderboard
//	@Produce  json
//	@Success  200 {array} user.RankEntry
//	@Router   /ranking [get]
func rankingHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := users.Ranking(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []user.RankEntry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}
