package session

import (
	"net/url"
	"strings"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/replication"
)

// RoomParam is the query parameter that addresses a room
const RoomParam = "room"

// Resolution is the outcome of resolving a room from an entry address
type Resolution struct {
	RoomID string
	// URL is the entry address with the room parameter set. The caller
	// shows it in place; nothing is reloaded.
	URL *url.URL
	// Generated is set when the entry carried no room and a new one was made
	Generated bool
}

// ResolveRoom reads the room parameter from entry or, when it is absent,
// generates a new identifier and writes it into a copy of entry.
func ResolveRoom(entry *url.URL, gen idgen.Generator) (Resolution, error) {
	rewritten := &url.URL{Path: "/"}
	if entry != nil {
		copied := *entry
		rewritten = &copied
	}

	query := rewritten.Query()
	roomID := strings.TrimSpace(query.Get(RoomParam))
	if roomID != "" {
		if err := replication.ValidateRoomID(roomID); err != nil {
			return Resolution{}, err
		}
		query.Set(RoomParam, roomID)
		rewritten.RawQuery = query.Encode()
		return Resolution{RoomID: roomID, URL: rewritten}, nil
	}

	if gen == nil {
		return Resolution{}, errors.Internal("room id generator is required")
	}

	roomID = gen.Generate()
	if err := replication.ValidateRoomID(roomID); err != nil {
		return Resolution{}, errors.Wrap(err, "generated room id is unusable")
	}

	query.Set(RoomParam, roomID)
	rewritten.RawQuery = query.Encode()
	return Resolution{RoomID: roomID, URL: rewritten, Generated: true}, nil
}

// ShareURL returns base with the room parameter set. When base is nil the
// resolved entry address is returned.
func ShareURL(base *url.URL, res Resolution) string {
	if base == nil {
		if res.URL == nil {
			return ""
		}
		return res.URL.String()
	}
	copied := *base
	query := copied.Query()
	query.Set(RoomParam, res.RoomID)
	copied.RawQuery = query.Encode()
	return copied.String()
}
