package resolver

import (
	"testing"
	"time"

	"github.com/ortoo/marketfeed/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedTime(sec int) time.Time {
	return time.Unix(int64(sec), 0)
}

func TestMergeFeedOrdersByCreationDescending(t *testing.T) {
	posts := []*model.Post{
		{Id: "post_10", CreatedAt: feedTime(10)},
		{Id: "post_30", CreatedAt: feedTime(30)},
	}
	products := []*model.Product{
		{Id: "product_20", CreatedAt: feedTime(20)},
	}

	feed := mergeFeed(posts, products)
	require.Len(t, feed, 3)

	assert.Equal(t, feedTime(30), feed[0].GetCreatedAt())
	assert.Equal(t, feedTime(20), feed[1].GetCreatedAt())
	assert.Equal(t, feedTime(10), feed[2].GetCreatedAt())

	assert.IsType(t, &model.Post{}, feed[0])
	assert.IsType(t, &model.Product{}, feed[1])
	assert.IsType(t, &model.Post{}, feed[2])
}

func TestMergeFeedIsStableOnEqualTimestamps(t *testing.T) {
	posts := []*model.Post{
		{Id: "post_1", CreatedAt: feedTime(10)},
		{Id: "post_2", CreatedAt: feedTime(10)},
	}
	products := []*model.Product{
		{Id: "product_1", CreatedAt: feedTime(10)},
	}

	feed := mergeFeed(posts, products)
	require.Len(t, feed, 3)

	// Ties keep source order: posts in insertion order, then products.
	assert.Equal(t, "post_1", feed[0].(*model.Post).Id)
	assert.Equal(t, "post_2", feed[1].(*model.Post).Id)
	assert.Equal(t, "product_1", feed[2].(*model.Product).Id)
}

func TestMergeFeedLengthIsSumOfInputs(t *testing.T) {
	assert.Empty(t, mergeFeed(nil, nil))

	feed := mergeFeed(
		[]*model.Post{{Id: "p1", CreatedAt: feedTime(1)}},
		nil,
	)
	assert.Len(t, feed, 1)
}
