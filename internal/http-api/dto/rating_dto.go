package dto

// RatingRequest: payload for creating or editing a rating. The half-star
// constraint (0.5 steps between 0.5 and 5) is enforced by the service.
type RatingRequest struct {
	Rating       float64 `json:"rating" binding:"required"`
	Text         string  `json:"text"`
	FavoriteSong *string `json:"favorite_song"`
}
