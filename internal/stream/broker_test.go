package stream_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/internal/driver"
	"github.com/katalvlaran/somtsp/internal/stream"
	"github.com/katalvlaran/somtsp/som"
)

var _ driver.Sink = (*stream.Broker)(nil)

func frame(epoch int) som.Snapshot {
	return som.Snapshot{
		Epoch:     epoch,
		MaxEpochs: 10,
		State:     som.Running,
		Running:   true,
		Nodes:     []som.Point{{X: float64(epoch), Y: 1}, {X: 2, Y: 2}},
	}
}

func recv(t *testing.T, ch <-chan som.Snapshot) som.Snapshot {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "channel closed")
		return s
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for snapshot")
		return som.Snapshot{}
	}
}

func TestBroker_PublishSubscribe(t *testing.T) {
	b := stream.NewBroker()
	_, ok := b.Latest()
	require.False(t, ok)

	a := b.Subscribe()
	c := b.Subscribe()
	require.Equal(t, 2, b.Subscribers())

	require.NoError(t, b.Publish(context.Background(), frame(1)))
	require.Equal(t, 1, recv(t, a).Epoch)
	require.Equal(t, 1, recv(t, c).Epoch)

	latest, ok := b.Latest()
	require.True(t, ok)
	require.Equal(t, frame(1), latest)

	b.Unsubscribe(a)
	b.Unsubscribe(a) // no-op
	require.Equal(t, 1, b.Subscribers())
	_, open := <-a
	require.False(t, open)
}

func TestBroker_LateSubscriberGetsLatest(t *testing.T) {
	b := stream.NewBroker()
	_ = b.Publish(context.Background(), frame(1))
	_ = b.Publish(context.Background(), frame(2))

	ch := b.Subscribe()
	require.Equal(t, 2, recv(t, ch).Epoch)
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := stream.NewBroker()
	slow := b.Subscribe()

	const frames = 100
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= frames; i++ {
			_ = b.Publish(context.Background(), frame(i))
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffer kept the oldest frames; the rest were dropped.
	require.Equal(t, 1, recv(t, slow).Epoch)
	require.Positive(t, b.Dropped())
	require.Equal(t, uint64(frames-8), b.Dropped())
}

func TestBroker_Close(t *testing.T) {
	b := stream.NewBroker()
	ch := b.Subscribe()
	b.Close()
	b.Close()

	_, open := <-ch
	require.False(t, open)
	require.Equal(t, 0, b.Subscribers())

	late := b.Subscribe()
	_, open = <-late
	require.False(t, open)

	require.NoError(t, b.Publish(context.Background(), frame(1)))
	_, ok := b.Latest()
	require.False(t, ok)
}
