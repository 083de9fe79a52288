package broadcast

import "context"

// Broadcaster publishes job events and hands out per-job subscriptions.
// Implementations must preserve the order events were published for a given
// job; there is no replay, so a late subscriber only sees what follows.
type Broadcaster interface {
	// Publish emits one event on the job's channel.
	Publish(ctx context.Context, jobID string, event Event) error
	// Subscribe returns a stream of events for the job. The channel closes
	// when ctx is done.
	Subscribe(ctx context.Context, jobID string) (<-chan Event, error)
	// Close releases the underlying transport.
	Close() error
}

// ChannelFor names the transport channel carrying a job's events.
func ChannelFor(jobID string) string {
	return "job:" + jobID
}
