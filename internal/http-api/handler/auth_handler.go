package handler

import (
	"errors"
	"net/http"

	"albumrater/internal/http-api/dto"
	"albumrater/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// User-facing error strings. Unknown-user and wrong-password logins share
// one message so usernames cannot be enumerated.
const (
	msgMissingFields      = "Please fill all required fields."
	msgUsernameTaken      = "Username is taken."
	msgInvalidCredentials = "Invalid credentials"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the unauthenticated auth routes
func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
}

// Signup creates a new user and returns their bearer token
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{msgMissingFields}})
		return
	}

	token, err := h.authService.Signup(service.SignupParams{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{msgUsernameTaken}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login checks credentials and returns a bearer token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	// Malformed input gets the same response as bad credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{msgInvalidCredentials}})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{msgInvalidCredentials}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
