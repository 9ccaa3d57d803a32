package model

import "time"

/*

File is an uploaded attachment

Id: primary key, uuid assigned by the upload pipeline
CreatedAt: time when entity is created

Filename: original client file name, doubles as the object-store key
Mimetype: content type reported by the client
Encoding: transfer encoding of the upload
Url: public object-store location, immutable once assigned

A file is owned by exactly one post or one product and is only ever created
as part of that owner's creation mutation.

*/

type File struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Filename  string
	Mimetype  string
	Encoding  string
	Url       string
	PostID    *string `gorm:"index"`
	ProductID *string `gorm:"index"`
}
