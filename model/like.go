package model

import "time"

/*

Like links a user to a post they liked

Id: primary key, uuid assigned at creation
CreatedAt: time when relation is created
UpdatedAt: time when relation is last updated

UserID: the liking user
PostID: the liked post

A (user, post) pair carries at most one like, enforced by a composite unique
index. Repeated likePost calls return the existing row.

*/

type Like struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"uniqueIndex:idx_like_user_post;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    string `gorm:"uniqueIndex:idx_like_user_post;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
