package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/engine"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
)

// AddPlayer appends a player named after its seat with the first class and race options
func (o *orchestrator) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	lang := language(input.Scope)
	state := input.Room.State()

	player := i18n.DefaultPlayer(lang, o.playerIDs.Generate(), len(state.Players)+1)
	next := append(entities.ClonePlayers(state.Players), player)

	o.writePlayers(input.Room, roomID, state.Players, next)
	o.appendLogs(input.Room, o.newLog(lang, entities.LogInfo, i18n.KeyNewChallenger, player.Name))
	o.play(ctx, roomID, cues.Click())

	slog.Info("Player added",
		"room_id", roomID,
		"player_id", player.ID,
		"players", len(next))

	return &AddPlayerOutput{Player: &player}, nil
}

// UpdatePlayer merges the patch into one player. A level in the patch is
// clamped to the level cap of the caller's game mode.
func (o *orchestrator) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	patch := input.Patch
	return o.updatePlayer(ctx, input.Scope, "updatePlayer", input.PlayerID, func(p entities.Player, _ int) entities.Player {
		return p.Apply(patch)
	})
}

// AdjustLevel moves a player's level by delta, staying within [1, cap]
func (o *orchestrator) AdjustLevel(ctx context.Context, input *AdjustLevelInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	delta := input.Delta
	return o.updatePlayer(ctx, input.Scope, "adjustLevel", input.PlayerID, func(p entities.Player, levelCap int) entities.Player {
		p.Level = engine.AdjustLevel(engine.EffectiveLevel(p.Level), delta, levelCap)
		return p
	})
}

// AdjustGear moves a player's gear by delta. Gear has no bounds.
func (o *orchestrator) AdjustGear(ctx context.Context, input *AdjustGearInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	delta := input.Delta
	return o.updatePlayer(ctx, input.Scope, "adjustGear", input.PlayerID, func(p entities.Player, _ int) entities.Player {
		p.Gear += delta
		return p
	})
}

// updatePlayer applies change to one player and emits the level transition
// logs and cues. An unknown player is not an error: another client may
// have removed it a moment ago.
func (o *orchestrator) updatePlayer(
	ctx context.Context,
	scope Scope,
	intent string,
	playerID string,
	change func(p entities.Player, levelCap int) entities.Player,
) (*UpdatePlayerOutput, error) {
	roomID, err := validateScope(scope)
	if err != nil {
		return nil, err
	}
	if playerID == "" {
		return nil, errors.InvalidArgument("player id is required").WithRoom(roomID).WithIntent(intent)
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	lang := language(scope)
	levelCap := entities.LevelCap(scope.SuperMode)
	state := scope.Room.State()

	idx := entities.FindPlayer(state.Players, playerID)
	if idx < 0 {
		slog.Debug("Ignoring update for missing player",
			"intent", intent,
			"room_id", roomID,
			"player_id", playerID)
		return &UpdatePlayerOutput{}, nil
	}

	prev := state.Players[idx]
	updated := change(prev, levelCap)
	if updated.Level != prev.Level {
		updated.Level = engine.ClampLevel(updated.Level, levelCap)
	}

	output := &UpdatePlayerOutput{Applied: true, Player: &updated}
	if updated == prev {
		return output, nil
	}

	next := entities.ClonePlayers(state.Players)
	next[idx] = updated
	o.writePlayers(scope.Room, roomID, state.Players, next)

	var (
		logs    []entities.GameLog
		effects []cues.Effect
	)
	prevLevel := engine.EffectiveLevel(prev.Level)
	nextLevel := engine.EffectiveLevel(updated.Level)
	switch {
	case nextLevel > prevLevel:
		output.LeveledUp = true
		logs = append(logs, o.newLog(lang, entities.LogSuccess, i18n.KeyLeveledUp, updated.Name, updated.Level))
		effects = append(effects, cues.LevelUp(updated.ID))
		if updated.Level == levelCap {
			output.Victory = true
			logs = append(logs, o.newLog(lang, entities.LogWarning, i18n.KeyVictory, updated.Name))
			effects = append(effects, cues.Victory(updated.ID))
		}
	case nextLevel < prevLevel:
		output.LostLevel = true
		logs = append(logs, o.newLog(lang, entities.LogDanger, i18n.KeyLostLevel, updated.Name))
		effects = append(effects, cues.LevelDown(updated.ID))
	}

	o.appendLogs(scope.Room, logs...)
	o.play(ctx, roomID, effects...)

	logMutation(intent, roomID,
		"player_id", playerID,
		"level", updated.Level,
		"gear", updated.Gear)

	if output.Victory {
		slog.Info("Player won the game",
			"room_id", roomID,
			"player_id", playerID,
			"level", updated.Level)
	}

	return output, nil
}

// DeletePlayer removes a player once the caller confirms. Battle selection
// is left alone; stale ids are ignored everywhere.
func (o *orchestrator) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required").WithRoom(roomID)
	}

	lang := language(input.Scope)
	if !confirm(ctx, input.Confirmer, i18n.Sprintf(lang, i18n.KeyDeleteConfirm)) {
		return &DeletePlayerOutput{}, nil
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	state := input.Room.State()
	idx := entities.FindPlayer(state.Players, input.PlayerID)
	if idx < 0 {
		return &DeletePlayerOutput{}, nil
	}

	removed := state.Players[idx]
	next := make([]entities.Player, 0, len(state.Players)-1)
	next = append(next, state.Players[:idx]...)
	next = append(next, state.Players[idx+1:]...)

	o.writePlayers(input.Room, roomID, state.Players, next)
	o.appendLogs(input.Room, o.newLog(lang, entities.LogDanger, i18n.KeyEatenByGazebo, removed.Name))
	o.play(ctx, roomID, cues.Click())

	slog.Info("Player removed",
		"room_id", roomID,
		"player_id", removed.ID)

	return &DeletePlayerOutput{Applied: true}, nil
}

// ResetGame puts every player back to level 1 with no gear, replaces the
// log with a single reset entry and forgets the undo history
func (o *orchestrator) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	lang := language(input.Scope)
	if !confirm(ctx, input.Confirmer, i18n.Sprintf(lang, i18n.KeyResetWarning)) {
		return &ResetGameOutput{}, nil
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	state := input.Room.State()
	next := entities.ClonePlayers(state.Players)
	for i := range next {
		next[i].Level = entities.MinLevel
		next[i].Gear = 0
	}

	o.history.clear(roomID)
	input.Room.PersistPlayers(next)
	input.Room.PersistLogs(entities.PrependLogs(nil, o.newLog(lang, entities.LogWarning, i18n.KeyResetLog)))

	slog.Info("Game reset",
		"room_id", roomID,
		"players", len(next))

	return &ResetGameOutput{Applied: true}, nil
}

// Undo restores the player list as it was before the last player write
// made on this node
func (o *orchestrator) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	previous, ok := o.history.pop(roomID)
	if !ok {
		return &UndoOutput{}, nil
	}

	input.Room.PersistPlayers(previous)
	o.play(ctx, roomID, cues.Click())

	logMutation("undo", roomID, "remaining", o.history.depth(roomID))

	return &UndoOutput{Applied: true, Players: previous}, nil
}

func confirm(ctx context.Context, c Confirmer, prompt string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(ctx, prompt)
}
