package model

import "time"

/*

User is a registered account

Id: primary key, uuid assigned at sign up
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated

Name: display name
Email: sign-in email, unique across all users
Password: bcrypt hash of the sign-in password, never serialized
Posts: posts authored by this user, "has-many" relation
Products: products listed by this user, "has-many" relation

*/

type User struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string     `gorm:"uniqueIndex"`
	Password  string     `json:"-"`
	Posts     []*Post    `json:"posts"`
	Products  []*Product `json:"products"`
}

// LoginResponse is the signIn payload: a signed bearer token plus the
// authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
