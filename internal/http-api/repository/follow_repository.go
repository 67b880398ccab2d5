package repository

import (
	"albumrater/internal/http-api/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(follower, followee string) error
	Exists(follower, followee string) (bool, error)
	ListFollowees(follower string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *followRepository) Delete(follower, followee string) error {
	result := r.db.Where("follower = ? AND followee = ?", follower, followee).Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists is an indexed existence query against the composite primary key,
// never materializing the relationship collection.
func (r *followRepository) Exists(follower, followee string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower = ? AND followee = ?", follower, followee).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowees returns the usernames the given user follows.
func (r *followRepository) ListFollowees(follower string) ([]string, error) {
	var followees []string
	err := r.db.Model(&models.Follow{}).
		Where("follower = ?", follower).
		Pluck("followee", &followees).Error
	if err != nil {
		return nil, err
	}
	return followees, nil
}
