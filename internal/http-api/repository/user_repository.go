package repository

import (
	"errors"

	"albumrater/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. Used as the backstop for duplicate signups and duplicate
// ratings racing past the application-level checks.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(username string) error
	Search(query string, offset, limit int) ([]models.User, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	// Return nil on miss so a zero-value struct never masquerades as a hit
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user, their ratings and every follow edge they appear
// on, in one transaction. The FK cascades cover the same ground; doing it
// explicitly keeps the behavior independent of how the schema was created.
func (r *userRepository) Delete(username string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author = ?", username).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower = ? OR followee = ?", username, username).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		result := tx.Where("username = ?", username).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Search matches the query against username, first name and last name,
// case-insensitively.
func (r *userRepository) Search(query string, offset, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.
		Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
