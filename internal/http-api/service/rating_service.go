package service

import (
	"context"
	"errors"
	"math"
	"time"

	"albumrater/internal/http-api/models"
	"albumrater/internal/http-api/repository"

	"gorm.io/gorm"
)

// feedLimit caps the homepage/activity feed.
const feedLimit = 100

type RatingParams struct {
	Rating       float64
	Text         string
	FavoriteSong *string
}

type RatingService interface {
	// Create adds a rating, lazily inserting the Album row from catalog
	// metadata the first time anyone rates that album. Returns
	// ErrAlreadyRated when the author has rated the album before.
	Create(ctx context.Context, author, albumID string, p RatingParams) (*models.Rating, error)
	Update(author, albumID string, p RatingParams) (*models.Rating, error)
	Delete(id int64, author string) error
	Get(id int64) (*models.Rating, error)
	ListByAlbum(albumID string) ([]models.Rating, error)
	// Feed returns ratings for the requester's homepage (own plus followed
	// authors) when homepage is true, otherwise filtered by author and/or
	// album id.
	Feed(requester string, homepage bool, author, albumID string) ([]models.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	followRepo repository.FollowRepository
	catalog    AlbumFetcher
}

func NewRatingService(ratingRepo repository.RatingRepository, followRepo repository.FollowRepository, catalog AlbumFetcher) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		followRepo: followRepo,
		catalog:    catalog,
	}
}

// ValidRatingValue reports whether v is one of the ten allowed half-star
// values 0.5, 1.0, ..., 5.0.
func ValidRatingValue(v float64) bool {
	doubled := v * 2
	return doubled == math.Trunc(doubled) && v >= 0.5 && v <= 5
}

func (s *ratingService) Create(ctx context.Context, author, albumID string, p RatingParams) (*models.Rating, error) {
	if !ValidRatingValue(p.Rating) {
		return nil, ErrInvalidRating
	}

	if _, err := s.ratingRepo.GetByAlbumAndAuthor(albumID, author); err == nil {
		return nil, ErrAlreadyRated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	catalogAlbum, err := s.catalog.GetAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	album := &models.Album{
		ID:       catalogAlbum.ID,
		Name:     catalogAlbum.Name,
		ImageURL: catalogAlbum.ImageURL,
	}
	if len(catalogAlbum.Artists) > 0 {
		album.ArtistName = catalogAlbum.Artists[0].Name
		album.ArtistID = catalogAlbum.Artists[0].ID
	}

	rating := &models.Rating{
		Rating:       p.Rating,
		Text:         p.Text,
		FavoriteSong: p.FavoriteSong,
		Timestamp:    time.Now(),
		AlbumID:      albumID,
		Author:       author,
	}

	if err := s.ratingRepo.CreateWithAlbum(rating, album); err != nil {
		// Concurrent create for the same (album, author) lost the race on
		// the unique constraint
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	// Reload with the album association populated
	return s.ratingRepo.GetByAlbumAndAuthor(albumID, author)
}

// Update edits the author's existing rating in place; id and timestamp are
// unchanged.
func (s *ratingService) Update(author, albumID string, p RatingParams) (*models.Rating, error) {
	if !ValidRatingValue(p.Rating) {
		return nil, ErrInvalidRating
	}

	rating, err := s.ratingRepo.GetByAlbumAndAuthor(albumID, author)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rating.Rating = p.Rating
	rating.Text = p.Text
	rating.FavoriteSong = p.FavoriteSong

	if err := s.ratingRepo.Update(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// Delete removes the rating when it belongs to author. A missing rating and
// someone else's rating both come back as ErrNotFound.
func (s *ratingService) Delete(id int64, author string) error {
	if err := s.ratingRepo.DeleteByIDAndAuthor(id, author); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ratingService) Get(id int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) ListByAlbum(albumID string) ([]models.Rating, error) {
	return s.ratingRepo.ListByAlbum(albumID)
}

func (s *ratingService) Feed(requester string, homepage bool, author, albumID string) ([]models.Rating, error) {
	var authors []string
	if homepage {
		followees, err := s.followRepo.ListFollowees(requester)
		if err != nil {
			return nil, err
		}
		authors = append(followees, requester)
	} else {
		authors = []string{author}
	}

	return s.ratingRepo.Feed(authors, albumID, feedLimit)
}
