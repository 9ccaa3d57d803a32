package resolver

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/ortoo/marketfeed/model"
	"github.com/ortoo/marketfeed/server/middlewares"
	"github.com/ortoo/marketfeed/storage"
	"github.com/ortoo/marketfeed/utils"
	"github.com/ortoo/marketfeed/utils/dotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Setenv("JWT_SECRET", "test_signing_secret")
	os.Exit(m.Run())
}

// prepareTestResolver builds a resolver root against a temp database and a
// fake file store. Database tests are skipped when no test DB is configured.
func prepareTestResolver(t *testing.T) (*Resolver, *storage.FakeFileStore) {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not configured, skipping database test")
	}

	db, _ := utils.CreateTempDB(t)
	store := &storage.FakeFileStore{}
	return &Resolver{
		DB:        db,
		FileStore: store,
		PostChans: NewPostChannels(),
	}, store
}

func authedContext(userId string) context.Context {
	return middlewares.WithUserId(context.Background(), userId)
}

func TestSignUpAndSignIn(t *testing.T) {
	root, _ := prepareTestResolver(t)
	mr := &mutationResolver{root}

	user, err := mr.SignUp(context.Background(), "test_user", "test@ortoo.io", "pass123")
	require.NoError(t, err)
	require.NotEmpty(t, user.Id)
	assert.NotEqual(t, "pass123", user.Password)

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := mr.SignIn(context.Background(), "nobody@ortoo.io", "pass123")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("wrong password is invalid credential", func(t *testing.T) {
		_, err := mr.SignIn(context.Background(), "test@ortoo.io", "wrong")
		assert.True(t, errors.Is(err, ErrInvalidCredential))
	})

	t.Run("correct password yields a token for the user", func(t *testing.T) {
		resp, err := mr.SignIn(context.Background(), "test@ortoo.io", "pass123")
		require.NoError(t, err)
		require.Equal(t, user.Id, resp.User.Id)

		subject, err := utils.VerifyToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.Id, subject)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := mr.SignUp(context.Background(), "other_user", "test@ortoo.io", "pass456")
		assert.Error(t, err)
	})
}

func TestCreatePostRequiresAuthentication(t *testing.T) {
	root, _ := prepareTestResolver(t)
	mr := &mutationResolver{root}

	_, err := mr.CreatePost(context.Background(), "hello", "whatever", nil)
	assert.True(t, errors.Is(err, ErrAuthenticationRequired))

	var count int64
	root.DB.Model(&model.Post{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreatePostUploadsFilesAndPublishes(t *testing.T) {
	root, store := prepareTestResolver(t)
	mr := &mutationResolver{root}
	sr := &subscriptionResolver{root}

	user := utils.TestCreateUser(t, root.DB, "author", "author@ortoo.io", "pass123")
	category := utils.TestCreateCategory(t, root.DB, "general")

	subCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := sr.PostCreated(subCtx)
	require.NoError(t, err)

	post, err := mr.CreatePost(
		authedContext(user.Id),
		"fresh post",
		category.Id,
		[]*graphql.Upload{pendingUpload("a.png", "aaa"), pendingUpload("b.png", "bbb")},
	)
	require.NoError(t, err)
	require.NotEmpty(t, post.Id)
	assert.Equal(t, user.Id, post.UserID)

	var files []*model.File
	require.NoError(t, root.DB.Where("post_id = ?", post.Id).Order("created_at").Find(&files).Error)
	require.Len(t, files, 2)
	assert.NotEmpty(t, files[0].Url)
	assert.Len(t, store.StoredKeys(), 2)

	select {
	case published := <-events:
		assert.Equal(t, post.Id, published.Id)
	case <-time.After(time.Second):
		t.Fatal("postCreated event not delivered")
	}
}

func TestLikePostIsIdempotent(t *testing.T) {
	root, _ := prepareTestResolver(t)
	mr := &mutationResolver{root}

	author := utils.TestCreateUser(t, root.DB, "author", "author@ortoo.io", "pass123")
	liker := utils.TestCreateUser(t, root.DB, "liker", "liker@ortoo.io", "pass123")
	category := utils.TestCreateCategory(t, root.DB, "general")

	post, err := mr.CreatePost(authedContext(author.Id), "like me", category.Id, nil)
	require.NoError(t, err)

	first, err := mr.LikePost(authedContext(liker.Id), post.Id)
	require.NoError(t, err)

	second, err := mr.LikePost(authedContext(liker.Id), post.Id)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	var count int64
	root.DB.Model(&model.Like{}).Where("user_id = ? AND post_id = ?", liker.Id, post.Id).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateAndDeleteEnforceOwnership(t *testing.T) {
	root, _ := prepareTestResolver(t)
	mr := &mutationResolver{root}

	owner := utils.TestCreateUser(t, root.DB, "owner", "owner@ortoo.io", "pass123")
	intruder := utils.TestCreateUser(t, root.DB, "intruder", "intruder@ortoo.io", "pass123")
	category := utils.TestCreateCategory(t, root.DB, "general")

	post, err := mr.CreatePost(authedContext(owner.Id), "mine", category.Id, nil)
	require.NoError(t, err)

	_, err = mr.UpdatePost(authedContext(intruder.Id), post.Id, "stolen")
	assert.True(t, errors.Is(err, ErrPermissionDenied))

	_, err = mr.DeletePost(authedContext(intruder.Id), post.Id)
	assert.True(t, errors.Is(err, ErrPermissionDenied))

	updated, err := mr.UpdatePost(authedContext(owner.Id), post.Id, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Description)

	_, err = mr.DeletePost(authedContext(owner.Id), post.Id)
	require.NoError(t, err)

	var count int64
	root.DB.Model(&model.Post{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFeedAggregatesPostsAndProducts(t *testing.T) {
	root, _ := prepareTestResolver(t)
	qr := &queryResolver{root}

	user := utils.TestCreateUser(t, root.DB, "seller", "seller@ortoo.io", "pass123")
	category := utils.TestCreateCategory(t, root.DB, "general")
	productCategory := utils.TestCreateProductCategory(t, root.DB, "electronics")

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, root.DB.Create(&model.Post{
		Id: "post_old", Description: "old", UserID: user.Id, CategoryID: category.Id,
		CreatedAt: base.Add(10 * time.Second),
	}).Error)
	require.NoError(t, root.DB.Create(&model.Post{
		Id: "post_new", Description: "new", UserID: user.Id, CategoryID: category.Id,
		CreatedAt: base.Add(30 * time.Second),
	}).Error)
	require.NoError(t, root.DB.Create(&model.Product{
		Id: "product_mid", ProductDescription: "mid", Price: 9.5, PhoneNumber: "555",
		UserID: user.Id, ProductCategoryID: productCategory.Id,
		CreatedAt: base.Add(20 * time.Second),
	}).Error)

	feed, err := qr.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, "post_new", feed[0].(*model.Post).Id)
	assert.Equal(t, "product_mid", feed[1].(*model.Product).Id)
	assert.Equal(t, "post_old", feed[2].(*model.Post).Id)
}
