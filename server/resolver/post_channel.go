package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ortoo/marketfeed/model"
	Logger "github.com/ortoo/marketfeed/utils/log"
)

const (
	// PostCreatedTopic carries every successfully persisted post.
	PostCreatedTopic = "post_created"
)

// PostChannels contains all structures that handle live post subscriptions.
// All internal state should not be handled directly by hand but managed by its
// public receivers.
//
// Delivery is in-process only and at-most-once: a subscriber that registers
// after a publish never sees it, and a subscriber that cannot keep up has the
// overflowing event dropped rather than blocking the publisher.
type PostChannels struct {
	// connectionMap maps from topic to the topic's active channels, keyed by
	// channel id (uuid) so that deletion of a channel is O(1). A topic entry
	// is deleted once all of its channels are closed.
	connectionMap map[string]map[string]chan *model.Post

	// Adding/Removing a subscription must grab WriteLock, while all other
	// usage (e.g. publishing a new post) should grab a ReadLock.
	mu sync.RWMutex
}

func NewPostChannels() *PostChannels {
	return &PostChannels{
		connectionMap: make(map[string]map[string]chan *model.Post),
		mu:            sync.RWMutex{},
	}
}

// cleanUp a single connection when the context terminates. If a topic's
// active connections all terminate, clean up the topic's top-level entry as
// well.
func (pc *PostChannels) cleanUp(ctx context.Context, topic string, chId string) {
	<-ctx.Done()

	pc.mu.Lock()
	defer pc.mu.Unlock()

	delete(pc.connectionMap[topic], chId)
	if len(pc.connectionMap[topic]) == 0 {
		delete(pc.connectionMap, topic)
	}
}

// AddNewConnection registers a subscriber on the topic for the lifetime of
// ctx. Connection teardown is the only deregistration path.
// Thread-safe
func (pc *PostChannels) AddNewConnection(ctx context.Context, topic string) (chan *model.Post, string) {
	chId := "post_channel_" + uuid.New().String()
	ch := make(chan *model.Post, 1)

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if _, ok := pc.connectionMap[topic]; !ok {
		pc.connectionMap[topic] = make(map[string]chan *model.Post)
	}

	pc.connectionMap[topic][chId] = ch

	// Spin up a background garbage collector.
	go pc.cleanUp(ctx, topic, chId)

	return ch, chId
}

// Thread-safe
func (pc *PostChannels) GetActiveConnectionsCount() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	count := 0
	for _, mp := range pc.connectionMap {
		count += len(mp)
	}
	return count
}

// Publish delivers the post to every subscriber currently registered on the
// topic and returns immediately. Publishing to a topic with no subscribers is
// a no-op.
// Thread-safe
func (pc *PostChannels) Publish(topic string, post *model.Post) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	for chId, ch := range pc.connectionMap[topic] {
		select {
		case ch <- post:
		default:
			Logger.Log.Warn("subscriber too slow, dropping event for channel: ", chId)
		}
	}
}
