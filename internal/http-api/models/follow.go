package models

import "time"

// Follow is a directed edge: Follower wants Followee's ratings in their feed.
type Follow struct {
	Follower  string    `gorm:"primaryKey;size:20" json:"follower"`
	Followee  string    `gorm:"primaryKey;size:20" json:"followee"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	FollowerUser User `gorm:"foreignKey:Follower;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	FolloweeUser User `gorm:"foreignKey:Followee;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
