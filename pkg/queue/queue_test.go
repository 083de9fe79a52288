package queue

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/channels/gochannel"
)

func testQueue(t *testing.T) (*Queue, message.Publisher) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	pub, sub, err := gochannel.CreateChannel(watermill.NewSlogLogger(logger))
	require.NoError(t, err)

	return New(pub, sub, logger), pub
}

func TestEnqueueConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, _ := testQueue(t)

	handled := make(chan Payload, 1)

	err := q.Consume(ctx, 1, func(ctx context.Context, payload Payload) error {
		handled <- payload

		return nil
	})
	require.NoError(t, err)

	payload := Payload{JobID: "job-1", WorkspaceID: "ws-1", UserID: "user-1"}
	require.NoError(t, q.Enqueue(ctx, payload))

	select {
	case got := <-handled:
		assert.Equal(t, payload, got)
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}
}

func TestConsume_MalformedPayloadIsDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, pub := testQueue(t)

	handled := make(chan Payload, 1)

	err := q.Consume(ctx, 1, func(ctx context.Context, payload Payload) error {
		handled <- payload

		return nil
	})
	require.NoError(t, err)

	// Garbage first, then a real payload; only the real one reaches the
	// handler.
	require.NoError(t, pub.Publish(Topic, message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	require.NoError(t, q.Enqueue(ctx, Payload{JobID: "job-2"}))

	select {
	case payload := <-handled:
		assert.Equal(t, "job-2", payload.JobID)
	case <-time.After(2 * time.Second):
		t.Fatal("valid payload never handled")
	}
}

func TestConsume_BoundsConcurrency(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, _ := testQueue(t)

	var mu sync.Mutex

	inFlight, peak := 0, 0

	var wg sync.WaitGroup

	const jobs = 6

	wg.Add(jobs)

	err := q.Consume(ctx, 2, func(ctx context.Context, payload Payload) error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		wg.Done()

		return nil
	})
	require.NoError(t, err)

	for range jobs {
		require.NoError(t, q.Enqueue(ctx, Payload{JobID: "job"}))
	}

	waited := make(chan struct{})
	go func() { wg.Wait(); close(waited) }()

	select {
	case <-waited:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs never finished")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, 2)
}

func TestConsume_FailedJobIsRedelivered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, _ := testQueue(t)

	var mu sync.Mutex

	attempts := 0
	succeeded := make(chan struct{})

	err := q.Consume(ctx, 1, func(ctx context.Context, payload Payload) error {
		mu.Lock()
		attempts++
		attempt := attempts
		mu.Unlock()

		if attempt == 1 {
			return errors.New("transient failure")
		}

		close(succeeded)

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, Payload{JobID: "retry-me"}))

	select {
	case <-succeeded:
	case <-time.After(2 * time.Second):
		t.Fatal("nacked job was never redelivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}
