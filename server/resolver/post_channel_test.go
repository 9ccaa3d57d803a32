package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/ortoo/marketfeed/model"
	"github.com/stretchr/testify/assert"
)

func TestPostChannelCreation(t *testing.T) {
	postChans := NewPostChannels()
	ctx, cancel := context.WithCancel(context.Background())

	postChans.AddNewConnection(ctx, PostCreatedTopic)
	assert.Equal(t, 1, postChans.GetActiveConnectionsCount())

	cancel()

	// Force trigger a long IO operation to context switching to clean up.
	time.Sleep(1 * time.Second)

	assert.Equal(t, 0, postChans.GetActiveConnectionsCount())
}

func TestPostChannelMultipleCreation(t *testing.T) {
	postChans := NewPostChannels()
	ctx_1, cancel_1 := context.WithCancel(context.Background())
	ctx_2, cancel_2 := context.WithCancel(context.Background())
	ctx_3, cancel_3 := context.WithCancel(context.Background())

	postChans.AddNewConnection(ctx_1, PostCreatedTopic)
	postChans.AddNewConnection(ctx_2, PostCreatedTopic)
	postChans.AddNewConnection(ctx_3, "another_topic")

	assert.Equal(t, 3, postChans.GetActiveConnectionsCount())

	cancel_1()
	cancel_2()
	cancel_3()

	// Force trigger a long IO operation to context switching to clean up.
	time.Sleep(1 * time.Second)
	assert.Equal(t, 0, postChans.GetActiveConnectionsCount())
}

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	postChans := NewPostChannels()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch_1, _ := postChans.AddNewConnection(ctx, PostCreatedTopic)
	ch_2, _ := postChans.AddNewConnection(ctx, PostCreatedTopic)

	post := &model.Post{Id: "post_1", Description: "hello"}
	postChans.Publish(PostCreatedTopic, post)

	assert.Equal(t, post, <-ch_1)
	assert.Equal(t, post, <-ch_2)
}

func TestPublishPreservesOrderPerSubscriber(t *testing.T) {
	postChans := NewPostChannels()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, _ := postChans.AddNewConnection(ctx, PostCreatedTopic)

	first := &model.Post{Id: "post_1"}
	postChans.Publish(PostCreatedTopic, first)
	assert.Equal(t, first, <-ch)

	second := &model.Post{Id: "post_2"}
	postChans.Publish(PostCreatedTopic, second)
	assert.Equal(t, second, <-ch)
}

func TestPublishWithoutSubscriberIsNoop(t *testing.T) {
	postChans := NewPostChannels()

	// Must return immediately, nothing to deliver to.
	postChans.Publish(PostCreatedTopic, &model.Post{Id: "post_1"})
	assert.Equal(t, 0, postChans.GetActiveConnectionsCount())
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	postChans := NewPostChannels()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, _ := postChans.AddNewConnection(ctx, PostCreatedTopic)

	done := make(chan interface{})
	go func() {
		// The subscriber never reads; both publishes must still return.
		postChans.Publish(PostCreatedTopic, &model.Post{Id: "post_1"})
		postChans.Publish(PostCreatedTopic, &model.Post{Id: "post_2"})
		done <- 0
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The first event is buffered, the overflow is dropped.
	assert.Equal(t, "post_1", (<-ch).Id)
}
