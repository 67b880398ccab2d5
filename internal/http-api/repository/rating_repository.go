package repository

import (
	"errors"

	"albumrater/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	// CreateWithAlbum inserts the rating, first creating the album row if
	// this is the first rating that album has ever received. Both writes
	// happen in one transaction.
	CreateWithAlbum(rating *models.Rating, album *models.Album) error
	Update(rating *models.Rating) error
	DeleteByIDAndAuthor(id int64, author string) error
	GetByID(id int64) (*models.Rating, error)
	GetByAlbumAndAuthor(albumID, author string) (*models.Rating, error)
	ListByAlbum(albumID string) ([]models.Rating, error)
	// Feed returns ratings whose author is in authors or whose album
	// matches albumID, newest first.
	Feed(authors []string, albumID string, limit int) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) CreateWithAlbum(rating *models.Rating, album *models.Album) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Album
		err := tx.First(&existing, "id = ?", album.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(album).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		return tx.Create(rating).Error
	})
}

func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// DeleteByIDAndAuthor removes the rating only when it belongs to author;
// someone else's rating is indistinguishable from a missing one.
func (r *ratingRepository) DeleteByIDAndAuthor(id int64, author string) error {
	result := r.db.Where("id = ? AND author = ?", id, author).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByID(id int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Preload("Album").First(&rating, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByAlbumAndAuthor(albumID, author string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("album_id = ? AND author = ?", albumID, author).
		Preload("Album").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) ListByAlbum(albumID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("album_id = ?", albumID).
		Preload("Album").
		Order("timestamp DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Feed(authors []string, albumID string, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("author IN ? OR album_id = ?", authors, albumID).
		Preload("Album").
		Order("timestamp DESC").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
