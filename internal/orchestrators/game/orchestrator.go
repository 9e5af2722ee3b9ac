// Package game implements the mutation dispatcher. Each intent reads the
// room's last observed state, computes the next full document and hands it
// to the room for writing, together with log entries and side-effect cues.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/munchkin-api/internal/orchestrators/game Service
//go:generate mockgen -destination=mock/mock_room.go -package=gamemock github.com/KirkDiggler/munchkin-api/internal/orchestrators/game Room

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/clock"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

var _ Room = (*session.Session)(nil)

// Service defines the room mutations
type Service interface {
	// Players
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error)
	AdjustLevel(ctx context.Context, input *AdjustLevelInput) (*UpdatePlayerOutput, error)
	AdjustGear(ctx context.Context, input *AdjustGearInput) (*UpdatePlayerOutput, error)
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)

	// Battle
	ToggleBattleMode(ctx context.Context, input *ToggleBattleModeInput) (*ToggleBattleModeOutput, error)
	ToggleBattlePlayer(ctx context.Context, input *ToggleBattlePlayerInput) (*ToggleBattlePlayerOutput, error)
	AdjustMonsterLevel(ctx context.Context, input *AdjustMonsterLevelInput) (*AdjustMonsterLevelOutput, error)
	AdjustMonsterBonus(ctx context.Context, input *AdjustMonsterBonusInput) (*AdjustMonsterBonusOutput, error)
	AdjustPartyBonus(ctx context.Context, input *AdjustPartyBonusInput) (*AdjustPartyBonusOutput, error)
	RollEscape(ctx context.Context, input *RollEscapeInput) (*RollEscapeOutput, error)

	// Room
	InviteLink(ctx context.Context, input *InviteLinkInput) (*InviteLinkOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Cues      cues.Sink
	Clock     clock.Clock
	PlayerIDs idgen.Generator
	LogIDs    idgen.Generator
	Roller    dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Cues == nil {
		vb.RequiredField("Cues")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.PlayerIDs == nil {
		vb.RequiredField("PlayerIDs")
	}
	if c.LogIDs == nil {
		vb.RequiredField("LogIDs")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	cues      cues.Sink
	clock     clock.Clock
	playerIDs idgen.Generator
	logIDs    idgen.Generator
	roller    dice.Roller

	history *history
	locks   *roomLocks
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cues:      cfg.Cues,
		clock:     cfg.Clock,
		playerIDs: cfg.PlayerIDs,
		logIDs:    cfg.LogIDs,
		roller:    cfg.Roller,
		history:   newHistory(),
		locks:     newRoomLocks(),
	}, nil
}

// validateScope checks the common fields and returns the room id
func validateScope(scope Scope) (string, error) {
	if scope.Room == nil {
		return "", errors.InvalidArgument("room is required")
	}
	roomID := scope.Room.RoomID()
	if roomID == "" {
		return "", errors.FailedPrecondition("room is not resolved yet")
	}
	return roomID, nil
}

func language(scope Scope) entities.Language {
	if scope.Language.IsValid() {
		return scope.Language
	}
	return entities.DefaultLanguage
}

// newLog builds a localized entry stamped with the current time
func (o *orchestrator) newLog(lang entities.Language, logType entities.LogType, key i18n.Key, args ...any) entities.GameLog {
	return entities.GameLog{
		ID:        o.logIDs.Generate(),
		Timestamp: clock.UnixMilli(o.clock),
		Message:   i18n.Sprintf(lang, key, args...),
		Type:      logType,
	}
}

// appendLogs writes entries, oldest first, ahead of the room's log
func (o *orchestrator) appendLogs(room Room, entries ...entities.GameLog) {
	if len(entries) == 0 {
		return
	}
	room.PersistLogs(entities.PrependLogs(room.State().Logs, entries...))
}

// play hands effects to the sink; the sink never reports failures
func (o *orchestrator) play(ctx context.Context, roomID string, effects ...cues.Effect) {
	for _, effect := range effects {
		o.cues.Play(ctx, roomID, effect)
	}
}

// writePlayers records the current list for undo and writes the next one
func (o *orchestrator) writePlayers(room Room, roomID string, current, next []entities.Player) {
	o.history.push(roomID, current)
	room.PersistPlayers(next)
}

// roomLocks serializes read-compute-write cycles per room so two intents
// handled on this node never read the same state
type roomLocks struct {
	mu    sync.Mutex
	rooms map[string]*roomLock
}

type roomLock struct {
	sync.Mutex
	refs int
}

func newRoomLocks() *roomLocks {
	return &roomLocks{rooms: make(map[string]*roomLock)}
}

func (l *roomLocks) lock(roomID string) func() {
	l.mu.Lock()
	rl, ok := l.rooms[roomID]
	if !ok {
		rl = &roomLock{}
		l.rooms[roomID] = rl
	}
	rl.refs++
	l.mu.Unlock()

	rl.Lock()
	return func() {
		rl.Unlock()
		l.mu.Lock()
		rl.refs--
		if rl.refs == 0 {
			delete(l.rooms, roomID)
		}
		l.mu.Unlock()
	}
}

func logMutation(intent, roomID string, attrs ...any) {
	slog.Debug("Room mutation", append([]any{"intent", intent, "room_id", roomID}, attrs...)...)
}
