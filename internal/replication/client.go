// Package replication is the boundary to the shared room store.
//
// The store holds whole documents at slash-separated paths. Writers
// overwrite a document in full and the last write wins; every subscriber
// of a path, the writer included, observes the result through its
// subscription. There is no request/reply pairing between a write and the
// snapshot it produces.
package replication

//go:generate mockgen -destination=mock/mock_client.go -package=replicationmock github.com/KirkDiggler/munchkin-api/internal/replication Client

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
)

// Snapshot receives the raw value stored at a path. A nil value means the
// path holds nothing.
type Snapshot func(value []byte)

// Client reads and writes room documents
type Client interface {
	// Subscribe delivers the current value at path right away and then
	// every later change until unsubscribe is called or ctx ends.
	// Deliveries for one subscription never overlap.
	Subscribe(ctx context.Context, path string, fn Snapshot) (unsubscribe func(), err error)

	// Set overwrites the document at path. A nil value clears it.
	Set(ctx context.Context, path string, value []byte) error
}

// Collections stored per room
const (
	CollectionPlayers = "players"
	CollectionBattle  = "battle"
	CollectionLogs    = "logs"
)

const roomsRoot = "rooms"

// forbiddenRoomChars cannot appear in a path segment
const forbiddenRoomChars = ".$#[]/"

// ValidateRoomID rejects identifiers that cannot address a room document
func ValidateRoomID(roomID string) error {
	if strings.TrimSpace(roomID) == "" {
		return errors.InvalidArgument("room id is required")
	}
	if strings.ContainsAny(roomID, forbiddenRoomChars) {
		return errors.InvalidArgumentf("room id %q contains a forbidden character (%s)", roomID, forbiddenRoomChars).
			WithRoom(roomID)
	}
	if strings.ContainsFunc(roomID, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return errors.InvalidArgumentf("room id %q contains a control character", roomID).WithRoom(roomID)
	}
	return nil
}

// RoomPath returns rooms/{id}/{collection}
func RoomPath(roomID, collection string) string {
	return fmt.Sprintf("%s/%s/%s", roomsRoot, roomID, collection)
}

// PlayersPath returns the path of a room's player list
func PlayersPath(roomID string) string {
	return RoomPath(roomID, CollectionPlayers)
}

// BattlePath returns the path of a room's battle state
func BattlePath(roomID string) string {
	return RoomPath(roomID, CollectionBattle)
}

// LogsPath returns the path of a room's log
func LogsPath(roomID string) string {
	return RoomPath(roomID, CollectionLogs)
}

// normalize maps an empty payload to an absent value
func normalize(value []byte) []byte {
	if len(value) == 0 {
		return nil
	}
	return value
}
