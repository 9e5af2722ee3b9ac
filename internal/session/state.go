package session

import (
	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// State is a point in the session lifecycle
type State string

// Lifecycle states. Subscribed is terminal until Close.
const (
	StateUninitialized State = "UNINITIALIZED"
	StateResolvingRoom State = "RESOLVING_ROOM"
	StateSubscribed    State = "SUBSCRIBED"
)

// RoomState is the last observed, sanitized replica of a room
type RoomState struct {
	Players []entities.Player
	Battle  entities.BattleState
	Logs    []entities.GameLog
}

// Clone returns a copy that shares nothing with the receiver
func (r RoomState) Clone() RoomState {
	logs := make([]entities.GameLog, len(r.Logs))
	copy(logs, r.Logs)
	return RoomState{
		Players: entities.ClonePlayers(r.Players),
		Battle:  r.Battle.Clone(),
		Logs:    logs,
	}
}

// DefaultRoomState is what an untouched room looks like
func DefaultRoomState() RoomState {
	return RoomState{
		Players: []entities.Player{},
		Battle:  entities.DefaultBattleState(),
		Logs:    []entities.GameLog{},
	}
}

// Update is published to observers after every inbound snapshot
type Update struct {
	RoomID string
	// Collection names the path that changed
	Collection string
	State      RoomState
}
