package models

// Album rows are created lazily the first time anyone rates the album.
// The primary key is the Spotify album id, not locally generated.
type Album struct {
	ID         string `gorm:"primaryKey;size:30" json:"id"`
	Name       string `gorm:"type:text;not null" json:"name"`
	ImageURL   string `gorm:"size:255;not null" json:"image_url"`
	ArtistName string `gorm:"type:text;not null" json:"artist_name"`
	ArtistID   string `gorm:"size:30;not null" json:"artist_id"`

	// Associations
	Ratings []Rating `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Album) TableName() string {
	return "albums"
}
