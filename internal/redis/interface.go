package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mock/mock_client.go -package=redismock -source=interface.go

// Client is the subset of go-redis the replication store is written against.
// Single-node and cluster clients both satisfy it.
type Client interface {
	redis.UniversalClient
}
