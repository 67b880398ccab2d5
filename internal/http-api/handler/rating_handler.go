package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"albumrater/internal/http-api/dto"
	"albumrater/internal/http-api/middleware"
	"albumrater/internal/http-api/service"
	"albumrater/internal/spotify"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating-related routes (all behind auth middleware)
func (h *RatingHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ratings", h.List)
	router.GET("/ratings/:rating_id", h.Get)
	router.DELETE("/ratings/:rating_id", h.Delete)
	router.POST("/albums/:album_id/ratings", h.Create)
	router.PUT("/albums/:album_id/ratings", h.Update)
}

// editPath is where an author who already rated the album is pointed to.
func editPath(albumID string) string {
	return fmt.Sprintf("/albums/%s/ratings", albumID)
}

// Create adds the requester's rating for an album, lazily pulling the album
// into the database from the catalog
// POST /albums/:album_id/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	author := c.GetString(middleware.IdentityKey)
	albumID := c.Param("album_id")

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), author, albumID, service.RatingParams{
		Rating:       req.Rating,
		Text:         req.Text,
		FavoriteSong: req.FavoriteSong,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "album already rated, edit the existing rating instead",
				"edit_path": editPath(albumID),
			})
		case errors.Is(err, spotify.ErrCatalogUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

// Update edits the requester's existing rating for an album
// PUT /albums/:album_id/ratings
func (h *RatingHandler) Update(c *gin.Context) {
	author := c.GetString(middleware.IdentityKey)
	albumID := c.Param("album_id")

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Update(author, albumID, service.RatingParams{
		Rating:       req.Rating,
		Text:         req.Text,
		FavoriteSong: req.FavoriteSong,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// Delete removes the requester's rating
// DELETE /ratings/:rating_id
func (h *RatingHandler) Delete(c *gin.Context) {
	author := c.GetString(middleware.IdentityKey)

	id, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	if err := h.ratingService.Delete(id, author); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

// Get returns a single rating with its album
// GET /ratings/:rating_id
func (h *RatingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	rating, err := h.ratingService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// List returns ratings filtered by the query parameters: homepage=true for
// the requester's feed, otherwise user and/or albumId filters
// GET /ratings?homepage=&user=&albumId=
func (h *RatingHandler) List(c *gin.Context) {
	requester := c.GetString(middleware.IdentityKey)

	homepage, _ := strconv.ParseBool(c.Query("homepage"))
	author := c.Query("user")
	albumID := c.Query("albumId")

	ratings, err := h.ratingService.Feed(requester, homepage, author, albumID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
