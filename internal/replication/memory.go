package replication

import (
	"context"
	"sync"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/fanout"
)

// MemoryClient is an in-process store for single node deployments and tests.
// A slow subscriber only sees the latest pending value.
type MemoryClient struct {
	mu     sync.Mutex
	values map[string][]byte
	topics map[string]*fanout.Broadcaster[[]byte]
}

// NewMemoryClient creates an empty in-process store
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		values: make(map[string][]byte),
		topics: make(map[string]*fanout.Broadcaster[[]byte]),
	}
}

func (c *MemoryClient) topic(path string) *fanout.Broadcaster[[]byte] {
	t, ok := c.topics[path]
	if !ok {
		t = fanout.New[[]byte](1)
		c.topics[path] = t
	}
	return t
}

// Subscribe implements Client
func (c *MemoryClient) Subscribe(ctx context.Context, path string, fn Snapshot) (func(), error) {
	if path == "" {
		return nil, errors.InvalidArgument("path is required")
	}
	if fn == nil {
		return nil, errors.InvalidArgument("snapshot callback is required")
	}

	c.mu.Lock()
	current := c.values[path]
	updates, cancel := c.topic(path).Subscribe()
	c.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			cancel()
		})
	}

	go func() {
		defer unsubscribe()

		fn(current)
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case value, ok := <-updates:
				if !ok {
					return
				}
				select {
				case <-done:
					return
				default:
				}
				fn(value)
			}
		}
	}()

	return unsubscribe, nil
}

// Set implements Client
func (c *MemoryClient) Set(ctx context.Context, path string, value []byte) error {
	if path == "" {
		return errors.InvalidArgument("path is required")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	stored := normalize(value)
	if stored != nil {
		stored = append([]byte(nil), stored...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if stored == nil {
		delete(c.values, path)
	} else {
		c.values[path] = stored
	}
	c.topic(path).Publish(stored)
	return nil
}

// Get returns the stored value at path, nil when absent
func (c *MemoryClient) Get(path string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[path]
}
