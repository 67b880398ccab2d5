package service

import (
	"errors"

	"albumrater/internal/http-api/models"
	"albumrater/internal/http-api/repository"

	"gorm.io/gorm"
)

type UpdateProfileParams struct {
	FirstName string
	LastName  *string
	Bio       *string
	ImageURL  string
}

type UserService interface {
	// Profile returns the user plus whether requester follows them.
	Profile(requester, username string) (*models.User, bool, error)
	UpdateProfile(username string, p UpdateProfileParams) (*models.User, error)
	DeleteAccount(username string) error
	// ToggleFollow flips the follow edge requester→target and returns the
	// resulting state.
	ToggleFollow(requester, target string) (bool, error)
	SearchUsers(query string, offset int) ([]models.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *userService) Profile(requester, username string) (*models.User, bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	following, err := s.followRepo.Exists(requester, username)
	if err != nil {
		return nil, false, err
	}

	return user, following, nil
}

func (s *userService) UpdateProfile(username string, p UpdateProfileParams) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.FirstName = p.FirstName
	user.LastName = p.LastName
	user.Bio = p.Bio
	user.ImageURL = p.ImageURL
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultUserImage
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteAccount(username string) error {
	if err := s.userRepo.Delete(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *userService) ToggleFollow(requester, target string) (bool, error) {
	if requester == target {
		return false, ErrSelfFollow
	}

	if _, err := s.userRepo.FindByUsername(target); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	following, err := s.followRepo.Exists(requester, target)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.followRepo.Delete(requester, target); err != nil {
			// A concurrent unfollow already removed the edge
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return false, nil
	}

	if err := s.followRepo.Create(&models.Follow{Follower: requester, Followee: target}); err != nil {
		// A concurrent follow already created the edge
		if repository.IsUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (s *userService) SearchUsers(query string, offset int) ([]models.User, error) {
	return s.userRepo.Search(query, offset, 20)
}
