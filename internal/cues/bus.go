package cues

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
)

const (
	// EventPrefix starts the type of every cue event on the bus
	EventPrefix = "cue."

	entityType = "cue"
	priority   = 100
)

// EventType returns the bus event type for a cue
func EventType(c Cue) string {
	return EventPrefix + string(c)
}

// effectEntity rides as the event target so the whole effect reaches
// subscribers
type effectEntity struct {
	effect Effect
}

func (e *effectEntity) GetID() string   { return e.effect.PlayerID }
func (e *effectEntity) GetType() string { return entityType }

var _ core.Entity = (*effectEntity)(nil)

// BusSinkConfig holds the dependencies of a BusSink
type BusSinkConfig struct {
	Bus events.EventBus
}

// Validate ensures all required dependencies are present
func (c *BusSinkConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// BusSink publishes effects as events on an rpg-toolkit event bus. The
// room is the event source.
type BusSink struct {
	bus events.EventBus
}

// NewBusSink creates a sink over cfg.Bus
func NewBusSink(cfg *BusSinkConfig) (*BusSink, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &BusSink{bus: cfg.Bus}, nil
}

// Play implements Sink
func (s *BusSink) Play(ctx context.Context, roomID string, effect Effect) {
	if !effect.Cue.IsValid() {
		slog.Warn("Dropping unknown cue", "room_id", roomID, "cue", effect.Cue)
		return
	}

	event := events.NewGameEvent(EventType(effect.Cue), &entities.Room{ID: roomID}, &effectEntity{effect: effect})
	if err := s.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish cue",
			"room_id", roomID,
			"cue", effect.Cue,
			"error", err)
	}
}

// Subscribe calls fn for every effect played in roomID until the returned
// func is called
func Subscribe(bus events.EventBus, roomID string, fn func(Effect)) func() {
	handler := func(_ context.Context, event events.Event) error {
		source := event.Source()
		if source == nil || source.GetID() != roomID {
			return nil
		}
		if target, ok := event.Target().(*effectEntity); ok {
			fn(target.effect)
			return nil
		}
		// Published by something other than a BusSink
		fn(Effect{Cue: Cue(strings.TrimPrefix(event.Type(), EventPrefix))})
		return nil
	}

	ids := make([]string, 0, len(Cues))
	for _, c := range Cues {
		ids = append(ids, bus.SubscribeFunc(EventType(c), priority, handler))
	}

	return func() {
		for _, id := range ids {
			if err := bus.Unsubscribe(id); err != nil {
				slog.Debug("Cue subscription already removed", "room_id", roomID, "error", err)
			}
		}
	}
}
