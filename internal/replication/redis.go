package replication

import (
	"context"
	"log/slog"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
	redisclient "github.com/KirkDiggler/munchkin-api/internal/redis"
)

const (
	defaultKeyPrefix = "munchkin:"
	changesSegment   = "changes:"
)

// RedisConfig holds the configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix namespaces keys and channels; defaults to "munchkin:"
	KeyPrefix string
}

// Validate ensures all required dependencies are present
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// RedisClient shares rooms between nodes. Documents live in plain keys and
// every write is announced on a per-path channel carrying the new value.
type RedisClient struct {
	client redisclient.Client
	prefix string
}

// NewRedisClient creates a Redis backed store
func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisClient{
		client: cfg.Client,
		prefix: prefix,
	}, nil
}

func (c *RedisClient) key(path string) string {
	return c.prefix + path
}

func (c *RedisClient) channel(path string) string {
	return c.prefix + changesSegment + path
}

// Set implements Client. The write and its announcement run in one MULTI
// so every stored value has exactly one matching message.
func (c *RedisClient) Set(ctx context.Context, path string, value []byte) error {
	if path == "" {
		return errors.InvalidArgument("path is required")
	}

	value = normalize(value)
	pipe := c.client.TxPipeline()
	if value == nil {
		pipe.Del(ctx, c.key(path))
	} else {
		pipe.Set(ctx, c.key(path), value, 0)
	}
	pipe.Publish(ctx, c.channel(path), value)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write "+path).
			WithMeta(errors.MetaPath, path)
	}
	return nil
}

// Subscribe implements Client. The channel subscription is confirmed
// before the current value is read, so no write can fall between the two.
func (c *RedisClient) Subscribe(ctx context.Context, path string, fn Snapshot) (func(), error) {
	if path == "" {
		return nil, errors.InvalidArgument("path is required")
	}
	if fn == nil {
		return nil, errors.InvalidArgument("snapshot callback is required")
	}

	pubsub := c.client.Subscribe(ctx, c.channel(path))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to subscribe to "+path).
			WithMeta(errors.MetaPath, path)
	}

	current, err := c.client.Get(ctx, c.key(path)).Bytes()
	if err != nil && err != redis.Nil {
		_ = pubsub.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read "+path).
			WithMeta(errors.MetaPath, path)
	}

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			if err := pubsub.Close(); err != nil {
				slog.Debug("Failed to close subscription", "path", path, "error", err)
			}
		})
	}

	messages := pubsub.Channel()
	go func() {
		defer unsubscribe()

		fn(normalize(current))
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case <-done:
					return
				default:
				}
				fn(normalize([]byte(msg.Payload)))
			}
		}
	}()

	return unsubscribe, nil
}
