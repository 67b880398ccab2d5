package dto

// Data Transfer Objects for authentication requests and responses

// SignupRequest: payload for user signup
type SignupRequest struct {
	Username  string  `json:"username" binding:"required,max=20"`
	FirstName string  `json:"first_name" binding:"required,max=25"`
	LastName  *string `json:"last_name" binding:"omitempty,max=25"`
	Password  string  `json:"password" binding:"required,min=6"`
	Bio       *string `json:"bio"`
	ImageURL  string  `json:"image_url" binding:"omitempty,url,max=255"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse: returned after successful signup or login
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorsResponse: the 400 shape for signup/login failures
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
