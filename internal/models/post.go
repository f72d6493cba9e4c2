package models

import "gorm.io/datatypes"

type Post struct {
	BaseModel
	CreatorID   string                      `gorm:"type:varchar(36);not null;index" json:"creatorId"`
	Description string                      `gorm:"type:text" json:"description"`
	MediaURLs   datatypes.JSONSlice[string] `json:"mediaUrls"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Views       int                         `gorm:"default:0" json:"views"`

	// Relations
	Creator  *User     `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	AIRating *AIRating `gorm:"foreignKey:PostID" json:"aiRating,omitempty"`
}

type Like struct {
	BaseModel
	PostID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_like_post_user" json:"postId"`
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_like_post_user" json:"userId"`
}

type Comment struct {
	BaseModel
	PostID  string `gorm:"type:varchar(36);not null;index" json:"postId"`
	UserID  string `gorm:"type:varchar(36);not null" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
