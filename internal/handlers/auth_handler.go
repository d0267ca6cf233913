// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harivola/medbot-api/internal/models"
	"github.com/harivola/medbot-api/internal/repository"
	"github.com/harivola/medbot-api/internal/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. No token is issued here; the client logs
// in separately afterwards.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email or username already exists"})
			return
		}
		log.Printf("Register: failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login checks the password and hands out a session token. An unknown
// username answers 400 rather than 404; existing clients key off the message.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.FindByUsername(c.Request.Context(), req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("Login: failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex())
	if err != nil {
		log.Printf("Login: failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// EditProfile updates the authenticated user's account. The password only
// changes when BOTH the current and the new password are supplied; a lone
// value in either field is ignored without validation. Username and email are
// overwritten without a pre-read re-check; the unique indexes reject a
// collision with another account at write time.
func (h *Handler) EditProfile(c *gin.Context) {
	var req struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and email are required"})
		return
	}

	userID := c.GetString("userID")
	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("EditProfile: failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if req.Password != "" && req.NewPassword != "" {
		if !utils.CheckPasswordHash(req.Password, user.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}
		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = hashed
	}

	user.Username = req.Username
	user.Email = req.Email

	if err := h.Users.Update(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email or username already exists"})
			return
		}
		log.Printf("EditProfile: failed to update user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex())
	if err != nil {
		log.Printf("EditProfile: failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	// The `json:"-"` tag on the password field keeps the hash out of the
	// response here, same as on the /user endpoint.
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetProfile returns the authenticated user's record, without the password.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("GetProfile: failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
