package ws

import (
	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
)

// Frame types sent to browsers
const (
	FrameRoom   = "room"
	FrameState  = "state"
	FrameEffect = "effect"
	FrameResult = "result"
	FrameError  = "error"
)

// RoomFrame is the first frame of a connection. URL is the entry address
// with the room parameter filled in; the page shows it without reloading.
type RoomFrame struct {
	Type      string `json:"type"`
	RoomID    string `json:"roomId"`
	ShareURL  string `json:"shareUrl"`
	URL       string `json:"url"`
	Generated bool   `json:"generated"`
	Lang      string `json:"lang"`
}

// StateFrame carries the room view after every snapshot
type StateFrame struct {
	Type string `json:"type"`
	*intent.View
}

// EffectFrame carries a sound and confetti cue
type EffectFrame struct {
	Type string `json:"type"`
	cues.Effect
}

// ResultFrame answers an intent
type ResultFrame struct {
	Type string `json:"type"`
	*intent.Result
}

// ErrorFrame reports a rejected frame or intent
type ErrorFrame struct {
	Type string `json:"type"`
	errors.Payload
	Intent string `json:"intent,omitempty"`
}
