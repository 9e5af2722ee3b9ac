// Package cues carries the audio and confetti side effects of a game
// transition. Effects never change room state and nothing waits on them.
package cues

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_sink.go -package=cuesmock github.com/KirkDiggler/munchkin-api/internal/cues Sink

// Cue names a sound played by clients
type Cue string

const (
	CueClick     Cue = "click"
	CueLevelUp   Cue = "levelUp"
	CueLevelDown Cue = "levelDown"
	CueVictory   Cue = "victory"
)

// Cues lists every cue
var Cues = []Cue{CueClick, CueLevelUp, CueLevelDown, CueVictory}

// IsValid reports whether c is a known cue
func (c Cue) IsValid() bool {
	for _, known := range Cues {
		if c == known {
			return true
		}
	}
	return false
}

// Burst describes a confetti burst
type Burst struct {
	Name      string `json:"name"`
	Particles int    `json:"particles"`
	Spread    int    `json:"spread"`
}

// Burst presets. Effects carry copies, so a receiver may mutate its burst.
var (
	BurstSmall = Burst{Name: "small", Particles: 50, Spread: 60}
	BurstLarge = Burst{Name: "large", Particles: 200, Spread: 100}
)

func withBurst(burst Burst) *Burst {
	return &burst
}

// Effect is one side effect for the clients of a room. Burst is nil when no
// confetti is shown.
type Effect struct {
	Cue      Cue    `json:"cue"`
	Burst    *Burst `json:"burst,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
}

// Sink plays effects. Implementations swallow their own failures.
type Sink interface {
	Play(ctx context.Context, roomID string, effect Effect)
}

// Click is the plain button feedback effect
func Click() Effect {
	return Effect{Cue: CueClick}
}

// LevelUp is played when a player gains a level
func LevelUp(playerID string) Effect {
	return Effect{Cue: CueLevelUp, Burst: withBurst(BurstSmall), PlayerID: playerID}
}

// LevelDown is played when a player loses a level
func LevelDown(playerID string) Effect {
	return Effect{Cue: CueLevelDown, PlayerID: playerID}
}

// Victory is played when a player reaches the level cap
func Victory(playerID string) Effect {
	return Effect{Cue: CueVictory, Burst: withBurst(BurstLarge), PlayerID: playerID}
}

// Discard drops every effect
type Discard struct{}

// Play implements Sink
func (Discard) Play(context.Context, string, Effect) {}
