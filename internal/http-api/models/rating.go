package models

import "time"

type Rating struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Rating       float64   `gorm:"not null" json:"rating"`
	FavoriteSong *string   `gorm:"type:text" json:"favorite_song,omitempty"`
	Text         string    `gorm:"type:text;not null;default:''" json:"text"`
	Timestamp    time.Time `gorm:"not null;autoCreateTime;index" json:"timestamp"`
	AlbumID      string    `gorm:"size:30;not null;uniqueIndex:idx_ratings_album_author" json:"album_id"`
	Author       string    `gorm:"size:20;not null;uniqueIndex:idx_ratings_album_author;index" json:"author"`

	// Associations
	Album Album `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"album"`
	User  User  `gorm:"foreignKey:Author;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}
