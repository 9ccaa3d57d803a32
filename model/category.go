package model

/*

Category files posts, ProductCategory files products. Both are flat name
lists, created through their own mutations.

*/

type Category struct {
	Id    string `gorm:"primaryKey"`
	Name  string
	Posts []*Post `json:"posts"`
}

type ProductCategory struct {
	Id       string `gorm:"primaryKey"`
	Name     string
	Products []*Product `json:"products"`
}
