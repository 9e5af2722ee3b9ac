// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/munchkin-api/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// ID lengths used by the game
const (
	RoomIDLength   = 6
	PlayerIDLength = 9
	LogIDLength    = 7
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Base36Generator generates short lowercase alphanumeric IDs that are safe
// in URLs and store paths
type Base36Generator struct {
	length int
}

// NewBase36 creates a generator for IDs of the given length
func NewBase36(length int) *Base36Generator {
	if length < 1 {
		length = RoomIDLength
	}
	return &Base36Generator{length: length}
}

// NewRoomIDs creates the room ID generator
func NewRoomIDs() *Base36Generator { return NewBase36(RoomIDLength) }

// NewPlayerIDs creates the player ID generator
func NewPlayerIDs() *Base36Generator { return NewBase36(PlayerIDLength) }

// NewLogIDs creates the log entry ID generator
func NewLogIDs() *Base36Generator { return NewBase36(LogIDLength) }

// Generate creates a new random ID
func (g *Base36Generator) Generate() string {
	out := make([]byte, g.length)
	limit := big.NewInt(int64(len(base36)))
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand only fails when the system entropy source is broken
			panic(fmt.Sprintf("crypto/rand.Int failed: %v", err))
		}
		out[i] = base36[n.Int64()]
	}
	return string(out)
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix. Used for connection IDs.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
