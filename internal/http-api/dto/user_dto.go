package dto

import "albumrater/internal/http-api/models"

// UpdateUserRequest: payload for editing the signed-in user's profile
type UpdateUserRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=25"`
	LastName  *string `json:"last_name" binding:"omitempty,max=25"`
	Bio       *string `json:"bio"`
	ImageURL  string  `json:"image_url" binding:"omitempty,url,max=255"`
}

// UserProfileResponse: a user plus whether the requester follows them
type UserProfileResponse struct {
	User      *models.User `json:"user"`
	Following bool         `json:"following"`
}
