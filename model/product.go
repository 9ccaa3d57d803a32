package model

import "time"

/*

Product is an item a user offers for sale

Id: primary key, uuid assigned at creation
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated

ProductDescription: item description in plain text
Price: asking price
PhoneNumber: seller contact
UserID:
User: the seller, "belongs-to" relation. Always set from the authenticated
      identity at creation, never from a client argument.
ProductCategoryID:
ProductCategory: the category this product is filed under, "belongs-to" relation
Files: uploaded attachments, "has-many" relation, created together with the
       product in one transaction

*/

type Product struct {
	Id                 string `gorm:"primaryKey"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ProductDescription string
	Price              float64
	PhoneNumber        string
	UserID             string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User               User
	ProductCategoryID  string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProductCategory    ProductCategory
	Files              []*File `json:"files" gorm:"constraint:OnDelete:CASCADE;"`
}

func (p Product) IsFeed() {}

func (p Product) GetCreatedAt() time.Time { return p.CreatedAt }
