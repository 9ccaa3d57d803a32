package resolver

import (
	"sort"
	"sync"

	"github.com/ortoo/marketfeed/model"
)

// fetchFeed reads both content collections concurrently and merges them into
// one chronological feed.
func fetchFeed(r *queryResolver) ([]model.Feed, error) {
	var (
		posts      []*model.Post
		products   []*model.Product
		postErr    error
		productErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		postErr = r.DB.Find(&posts).Error
	}()
	go func() {
		defer wg.Done()
		productErr = r.DB.Find(&products).Error
	}()
	wg.Wait()

	if postErr != nil {
		return nil, postErr
	}
	if productErr != nil {
		return nil, productErr
	}

	return mergeFeed(posts, products), nil
}

// mergeFeed concatenates the collections and orders them by creation time,
// newest first. The sort is stable: elements with equal timestamps keep their
// relative source order (posts before products). Each element is tagged with
// its concrete type at construction, so downstream type resolution never has
// to sniff fields.
func mergeFeed(posts []*model.Post, products []*model.Product) []model.Feed {
	feed := make([]model.Feed, 0, len(posts)+len(products))
	for _, post := range posts {
		feed = append(feed, post)
	}
	for _, product := range products {
		feed = append(feed, product)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].GetCreatedAt().After(feed[j].GetCreatedAt())
	})

	return feed
}
