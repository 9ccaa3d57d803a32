package model

import "time"

// Feed is the read-time union of content types shown in the unified feed.
// Membership is decided by the concrete Go type at construction, there is no
// persisted feed entity. GetCreatedAt exposes the ordering key to the
// aggregator without a type switch.
type Feed interface {
	IsFeed()
	GetCreatedAt() time.Time
}
