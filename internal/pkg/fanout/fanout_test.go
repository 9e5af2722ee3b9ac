package fanout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/munchkin-api/internal/pkg/fanout"
)

func TestPublishDeliversToEverySubscriber(t *testing.T) {
	b := fanout.New[string](4)
	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish("players")
	assert.Equal(t, "players", <-ch1)
	assert.Equal(t, "players", <-ch2)
	assert.Equal(t, 2, b.Len())
}

func TestLaggingSubscriberKeepsNewest(t *testing.T) {
	b := fanout.New[int](1)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(1)
	b.Publish(2)
	b.Publish(3)

	assert.Equal(t, 3, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected pending value %d", v)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := fanout.New[int](1)
	ch, cancel := b.Subscribe()
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.Len())

	b.Publish(1)
}

func TestClose(t *testing.T) {
	b := fanout.New[int](1)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Close()
	_, open := <-ch
	assert.False(t, open)

	late, lateCancel := b.Subscribe()
	defer lateCancel()
	_, open = <-late
	require.False(t, open)
}
