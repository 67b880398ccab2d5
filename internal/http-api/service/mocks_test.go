package service

import (
	"context"

	"albumrater/internal/http-api/models"
	"albumrater/internal/spotify"

	"github.com/stretchr/testify/mock"
)

// Mocks for the repository interfaces and the catalog dependency, shared by
// the service tests in this package.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

func (m *MockUserRepository) Search(query string, offset, limit int) ([]models.User, error) {
	args := m.Called(query, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(follower, followee string) error {
	args := m.Called(follower, followee)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(follower, followee string) (bool, error) {
	args := m.Called(follower, followee)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) ListFollowees(follower string) ([]string, error) {
	args := m.Called(follower)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) CreateWithAlbum(rating *models.Rating, album *models.Album) error {
	args := m.Called(rating, album)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) DeleteByIDAndAuthor(id int64, author string) error {
	args := m.Called(id, author)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByID(id int64) (*models.Rating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByAlbumAndAuthor(albumID, author string) (*models.Rating, error) {
	args := m.Called(albumID, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByAlbum(albumID string) ([]models.Rating, error) {
	args := m.Called(albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Feed(authors []string, albumID string, limit int) ([]models.Rating, error) {
	args := m.Called(authors, albumID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

type MockAlbumFetcher struct {
	mock.Mock
}

func (m *MockAlbumFetcher) GetAlbum(ctx context.Context, albumID string) (*spotify.Album, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotify.Album), args.Error(1)
}
