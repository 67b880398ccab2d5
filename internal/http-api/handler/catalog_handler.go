package handler

import (
	"errors"
	"net/http"
	"strconv"

	"albumrater/internal/http-api/service"
	"albumrater/internal/spotify"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	ratingService  service.RatingService
	userService    service.UserService
}

func NewCatalogHandler(catalogService service.CatalogService, ratingService service.RatingService, userService service.UserService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		ratingService:  ratingService,
		userService:    userService,
	}
}

// RegisterRoutes registers catalog-backed routes (all behind auth middleware)
func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/albums/:album_id", h.GetAlbum)
	router.GET("/artists/:artist_id", h.GetArtist)
	router.GET("/artists/:artist_id/albums", h.GetArtistAlbums)
	router.GET("/search/results", h.Search)
}

// GetAlbum returns catalog metadata for an album plus its local ratings
// GET /albums/:album_id
func (h *CatalogHandler) GetAlbum(c *gin.Context) {
	albumID := c.Param("album_id")

	album, err := h.catalogService.GetAlbum(c.Request.Context(), albumID)
	if err != nil {
		h.catalogError(c, err)
		return
	}

	ratings, err := h.ratingService.ListByAlbum(albumID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"album": album, "ratings": ratings})
}

// GetArtist returns catalog metadata for an artist
// GET /artists/:artist_id
func (h *CatalogHandler) GetArtist(c *gin.Context) {
	artist, err := h.catalogService.GetArtist(c.Request.Context(), c.Param("artist_id"))
	if err != nil {
		h.catalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// GetArtistAlbums returns a page of the artist's own releases
// GET /artists/:artist_id/albums?offset=
func (h *CatalogHandler) GetArtistAlbums(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	albums, err := h.catalogService.GetArtistAlbums(c.Request.Context(), c.Param("artist_id"), offset)
	if err != nil {
		h.catalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

// Search dispatches a free-text search to the catalog (albums, artists) or
// the local user table by the type query parameter
// GET /search/results?query=&type=&offset=
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.DefaultQuery("query", "a")
	searchType := c.DefaultQuery("type", "album")
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	switch searchType {
	case "album":
		results, err := h.catalogService.SearchAlbums(c.Request.Context(), query, offset)
		if err != nil {
			h.catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})

	case "artist":
		results, err := h.catalogService.SearchArtists(c.Request.Context(), query, offset)
		if err != nil {
			h.catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})

	case "user":
		results, err := h.userService.SearchUsers(query, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be album, artist or user"})
	}
}

func (h *CatalogHandler) catalogError(c *gin.Context, err error) {
	if errors.Is(err, spotify.ErrCatalogUnavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
