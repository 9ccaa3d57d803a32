package model

import "time"

/*

Post is a piece of content a user shares to the feed

Id: primary key, uuid assigned at creation
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated

Description: post body in plain text
UserID:
User: the author, "belongs-to" relation. Always set from the authenticated
      identity at creation, never from a client argument.
CategoryID:
Category: the category this post is filed under, "belongs-to" relation
Files: uploaded attachments, "has-many" relation, created together with the
       post in one transaction
Likes: likes received, "has-many" relation

*/

type Post struct {
	Id          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Description string
	UserID      string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User        User
	CategoryID  string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category    Category
	Files       []*File `json:"files" gorm:"constraint:OnDelete:CASCADE;"`
	Likes       []*Like `json:"likes" gorm:"constraint:OnDelete:CASCADE;"`
}

func (p Post) IsFeed() {}

func (p Post) GetCreatedAt() time.Time { return p.CreatedAt }
