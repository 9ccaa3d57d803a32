package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/ortoo/marketfeed/model"
	"github.com/ortoo/marketfeed/server/graph/generated"
	"github.com/ortoo/marketfeed/server/middlewares"
	"github.com/ortoo/marketfeed/utils"
	Logger "github.com/ortoo/marketfeed/utils/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func (r *categoryResolver) Posts(ctx context.Context, obj *model.Category) ([]*model.Post, error) {
	var posts []*model.Post
	result := r.DB.Where("category_id = ?", obj.Id).Find(&posts)
	return posts, result.Error
}

func (r *likeResolver) Post(ctx context.Context, obj *model.Like) (*model.Post, error) {
	var post model.Post
	result := r.DB.Where("id = ?", obj.PostID).First(&post)
	return &post, result.Error
}

func (r *likeResolver) User(ctx context.Context, obj *model.Like) (*model.User, error) {
	var user model.User
	result := r.DB.Where("id = ?", obj.UserID).First(&user)
	return &user, result.Error
}

func (r *mutationResolver) CreatePost(ctx context.Context, description string, categoryID string, files []*graphql.Upload) (*model.Post, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var category model.Category
	result := r.DB.Where("id = ?", categoryID).First(&category)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "category %s", categoryID)
	}

	// All attachments must land in the blob store before anything is written.
	uploaded, err := processUploads(r.FileStore, files)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		Id:          uuid.New().String(),
		Description: description,
		// Ownership always comes from the request identity, never from an
		// argument.
		UserID:     userId,
		CategoryID: categoryID,
		Files:      uploaded,
	}
	if err := r.DB.Create(&post).Error; err != nil {
		return nil, err
	}

	// Publish only after the row exists so subscribers always receive the
	// persisted post, id and timestamps included.
	r.PostChans.Publish(PostCreatedTopic, &post)
	Logger.Log.Info("post created: ", post.Id)

	return &post, nil
}

func (r *mutationResolver) UpdatePost(ctx context.Context, postID string, description string) (*model.Post, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var post model.Post
	result := r.DB.Where("id = ?", postID).First(&post)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "post %s", postID)
	}
	if post.UserID != userId {
		return nil, ErrPermissionDenied
	}

	post.Description = description
	if err := r.DB.Model(&post).Update("description", description).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mutationResolver) DeletePost(ctx context.Context, postID string) (*model.Post, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var post model.Post
	result := r.DB.Where("id = ?", postID).First(&post)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "post %s", postID)
	}
	if post.UserID != userId {
		return nil, ErrPermissionDenied
	}

	// Hard delete. Files and likes cascade through the FK constraints.
	if err := r.DB.Delete(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mutationResolver) LikePost(ctx context.Context, postID string) (*model.Like, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var post model.Post
	result := r.DB.Where("id = ?", postID).First(&post)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "post %s", postID)
	}

	like := model.Like{
		Id:     uuid.New().String(),
		UserID: userId,
		PostID: postID,
	}
	// At most one like per (user, post). Repeated calls return the existing
	// row.
	result = r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(&like)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		r.DB.Where("user_id = ? AND post_id = ?", userId, postID).First(&like)
	}
	return &like, nil
}

func (r *mutationResolver) CreateProduct(ctx context.Context, productDescription string, price float64, phoneNumber string, categoryID string, files []*graphql.Upload) (*model.Product, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var category model.ProductCategory
	result := r.DB.Where("id = ?", categoryID).First(&category)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "product category %s", categoryID)
	}

	uploaded, err := processUploads(r.FileStore, files)
	if err != nil {
		return nil, err
	}

	product := model.Product{
		Id:                 uuid.New().String(),
		ProductDescription: productDescription,
		Price:              price,
		PhoneNumber:        phoneNumber,
		UserID:             userId,
		ProductCategoryID:  categoryID,
		Files:              uploaded,
	}
	if err := r.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mutationResolver) UpdateProduct(ctx context.Context, productID string, productDescription *string, price float64, phoneNumber *string) (*model.Product, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var product model.Product
	result := r.DB.Where("id = ?", productID).First(&product)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "product %s", productID)
	}
	if product.UserID != userId {
		return nil, ErrPermissionDenied
	}

	updates := map[string]interface{}{"price": price}
	if productDescription != nil {
		updates["product_description"] = *productDescription
	}
	if phoneNumber != nil {
		updates["phone_number"] = *phoneNumber
	}
	if err := r.DB.Model(&product).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mutationResolver) DeleteProduct(ctx context.Context, productID string) (*model.Product, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	var product model.Product
	result := r.DB.Where("id = ?", productID).First(&product)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "product %s", productID)
	}
	if product.UserID != userId {
		return nil, ErrPermissionDenied
	}

	if err := r.DB.Delete(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mutationResolver) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category := model.Category{
		Id:   uuid.New().String(),
		Name: name,
	}
	result := r.DB.Create(&category)
	return &category, result.Error
}

func (r *mutationResolver) CreateProductCategory(ctx context.Context, name string) (*model.ProductCategory, error) {
	category := model.ProductCategory{
		Id:   uuid.New().String(),
		Name: name,
	}
	result := r.DB.Create(&category)
	return &category, result.Error
}

func (r *mutationResolver) SignUp(ctx context.Context, name string, email string, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Id:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := r.DB.Create(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "sign up failed for email: %s", email)
	}
	return &user, nil
}

func (r *mutationResolver) SignIn(ctx context.Context, email string, password string) (*model.LoginResponse, error) {
	var user model.User
	result := r.DB.Where("email = ?", email).First(&user)
	if result.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "user not found for email: %s", email)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredential
	}

	token, err := utils.SignToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, User: &user}, nil
}

func (r *postResolver) User(ctx context.Context, obj *model.Post) (*model.User, error) {
	var user model.User
	result := r.DB.Where("id = ?", obj.UserID).First(&user)
	return &user, result.Error
}

func (r *postResolver) Category(ctx context.Context, obj *model.Post) (*model.Category, error) {
	var category model.Category
	result := r.DB.Where("id = ?", obj.CategoryID).First(&category)
	return &category, result.Error
}

func (r *postResolver) Files(ctx context.Context, obj *model.Post) ([]*model.File, error) {
	var files []*model.File
	result := r.DB.Where("post_id = ?", obj.Id).Order("created_at").Find(&files)
	return files, result.Error
}

func (r *postResolver) Likes(ctx context.Context, obj *model.Post) ([]*model.Like, error) {
	var likes []*model.Like
	result := r.DB.Where("post_id = ?", obj.Id).Find(&likes)
	return likes, result.Error
}

func (r *productResolver) User(ctx context.Context, obj *model.Product) (*model.User, error) {
	var user model.User
	result := r.DB.Where("id = ?", obj.UserID).First(&user)
	return &user, result.Error
}

func (r *productResolver) Files(ctx context.Context, obj *model.Product) ([]*model.File, error) {
	var files []*model.File
	result := r.DB.Where("product_id = ?", obj.Id).Order("created_at").Find(&files)
	return files, result.Error
}

func (r *productResolver) ProductCategory(ctx context.Context, obj *model.Product) (*model.ProductCategory, error) {
	var category model.ProductCategory
	result := r.DB.Where("id = ?", obj.ProductCategoryID).First(&category)
	return &category, result.Error
}

func (r *productCategoryResolver) Products(ctx context.Context, obj *model.ProductCategory) ([]*model.Product, error) {
	var products []*model.Product
	result := r.DB.Where("product_category_id = ?", obj.Id).Find(&products)
	return products, result.Error
}

func (r *queryResolver) Feed(ctx context.Context) ([]model.Feed, error) {
	return fetchFeed(r)
}

func (r *queryResolver) Posts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	result := r.DB.Find(&posts)
	return posts, result.Error
}

func (r *queryResolver) Post(ctx context.Context, postID string) (*model.Post, error) {
	var post model.Post
	result := r.DB.Where("id = ?", postID).First(&post)
	if result.RowsAffected != 1 {
		return nil, nil
	}
	return &post, result.Error
}

func (r *queryResolver) Users(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	result := r.DB.Find(&users)
	return users, result.Error
}

func (r *queryResolver) User(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	result := r.DB.Where("id = ?", userID).First(&user)
	if result.RowsAffected != 1 {
		return nil, nil
	}
	return &user, result.Error
}

func (r *queryResolver) Me(ctx context.Context) (*model.User, error) {
	userId, ok := middlewares.UserId(ctx)
	if !ok {
		return nil, nil
	}

	var user model.User
	result := r.DB.Where("id = ?", userId).First(&user)
	if result.RowsAffected != 1 {
		return nil, nil
	}
	return &user, result.Error
}

func (r *queryResolver) Products(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	result := r.DB.Order("created_at desc").Find(&products)
	return products, result.Error
}

func (r *queryResolver) Product(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	result := r.DB.Where("id = ?", productID).First(&product)
	if result.RowsAffected != 1 {
		return nil, nil
	}
	return &product, result.Error
}

func (r *queryResolver) Categories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	result := r.DB.Find(&categories)
	return categories, result.Error
}

func (r *queryResolver) ProductCategories(ctx context.Context) ([]*model.ProductCategory, error) {
	var categories []*model.ProductCategory
	result := r.DB.Find(&categories)
	return categories, result.Error
}

func (r *queryResolver) Likes(ctx context.Context) ([]*model.Like, error) {
	var likes []*model.Like
	result := r.DB.Find(&likes)
	return likes, result.Error
}

func (r *subscriptionResolver) PostCreated(ctx context.Context) (<-chan *model.Post, error) {
	ch, _ := r.PostChans.AddNewConnection(ctx, PostCreatedTopic)
	return ch, nil
}

func (r *userResolver) Posts(ctx context.Context, obj *model.User) ([]*model.Post, error) {
	var posts []*model.Post
	result := r.DB.Where("user_id = ?", obj.Id).Find(&posts)
	return posts, result.Error
}

func (r *userResolver) Products(ctx context.Context, obj *model.User) ([]*model.Product, error) {
	var products []*model.Product
	result := r.DB.Where("user_id = ?", obj.Id).Find(&products)
	return products, result.Error
}

// Category returns generated.CategoryResolver implementation.
func (r *Resolver) Category() generated.CategoryResolver { return &categoryResolver{r} }

// Like returns generated.LikeResolver implementation.
func (r *Resolver) Like() generated.LikeResolver { return &likeResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Post returns generated.PostResolver implementation.
func (r *Resolver) Post() generated.PostResolver { return &postResolver{r} }

// Product returns generated.ProductResolver implementation.
func (r *Resolver) Product() generated.ProductResolver { return &productResolver{r} }

// ProductCategory returns generated.ProductCategoryResolver implementation.
func (r *Resolver) ProductCategory() generated.ProductCategoryResolver {
	return &productCategoryResolver{r}
}

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Subscription returns generated.SubscriptionResolver implementation.
func (r *Resolver) Subscription() generated.SubscriptionResolver { return &subscriptionResolver{r} }

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type categoryResolver struct{ *Resolver }
type likeResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type postResolver struct{ *Resolver }
type productResolver struct{ *Resolver }
type productCategoryResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
