package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultUserImage is used when a user signs up without a profile picture.
const DefaultUserImage = "https://braverplayers.org/wp-content/uploads/2022/09/blank-pfp.png"

type User struct {
	Username  string    `gorm:"primaryKey;size:20" json:"username"`
	FirstName string    `gorm:"size:25;not null" json:"first_name"`
	LastName  *string   `gorm:"size:25" json:"last_name,omitempty"`
	Bio       *string   `gorm:"type:text" json:"bio,omitempty"`
	ImageURL  string    `gorm:"size:255;not null" json:"image_url"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	CreatedAt time.Time `json:"created_at"`

	// Associations
	Ratings []Rating `gorm:"foreignKey:Author;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook to fall back to the placeholder image
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ImageURL == "" {
		user.ImageURL = DefaultUserImage
	}
	return
}

func (User) TableName() string {
	return "users"
}
