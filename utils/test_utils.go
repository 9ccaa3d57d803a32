package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ortoo/marketfeed/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestCreateUser seeds one user with a bcrypt-hashed password and returns it.
func TestCreateUser(t *testing.T, db *gorm.DB, name string, email string, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := model.User{
		Id:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// TestCreateCategory seeds one post category and returns it.
func TestCreateCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()

	category := model.Category{Id: uuid.New().String(), Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

// TestCreateProductCategory seeds one product category and returns it.
func TestCreateProductCategory(t *testing.T, db *gorm.DB, name string) *model.ProductCategory {
	t.Helper()

	category := model.ProductCategory{Id: uuid.New().String(), Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}
