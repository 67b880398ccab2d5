package handler

import (
	"errors"
	"net/http"

	"albumrater/internal/http-api/dto"
	"albumrater/internal/http-api/middleware"
	"albumrater/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user-related routes (all behind auth middleware)
func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/users/:username", h.GetUser)
	router.POST("/users/:username/follow", h.ToggleFollow)
	router.PUT("/me", h.UpdateMe)
	router.DELETE("/me", h.DeleteMe)
}

// GetUser returns a user's profile and whether the requester follows them
// GET /users/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	requester := c.GetString(middleware.IdentityKey)

	user, following, err := h.userService.Profile(requester, c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.UserProfileResponse{User: user, Following: following})
}

// ToggleFollow flips the follow edge from the requester to the target user
// POST /users/:username/follow
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	requester := c.GetString(middleware.IdentityKey)

	following, err := h.userService.ToggleFollow(requester, c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// UpdateMe edits the signed-in user's profile
// PUT /me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	requester := c.GetString(middleware.IdentityKey)

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(requester, service.UpdateProfileParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteMe deletes the signed-in user's account, cascading their ratings
// and follow edges
// DELETE /me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	requester := c.GetString(middleware.IdentityKey)

	if err := h.userService.DeleteAccount(requester); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
