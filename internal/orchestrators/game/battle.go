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

// ToggleBattleMode flips the battle overlay. Opening it selects the first
// player, closing it clears the selection. Bonuses are kept.
func (o *orchestrator) ToggleBattleMode(_ context.Context, input *ToggleBattleModeInput) (*ToggleBattleModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	state := input.Room.State()
	battle := state.Battle.Clone()
	battle.Active = !battle.Active
	battle.SelectedPlayerIDs = []string{}
	if battle.Active && len(state.Players) > 0 {
		battle.SelectedPlayerIDs = append(battle.SelectedPlayerIDs, state.Players[0].ID)
	}

	input.Room.PersistBattle(battle)

	logMutation("toggleBattleMode", roomID, "active", battle.Active)

	return &ToggleBattleModeOutput{Battle: battle}, nil
}

// ToggleBattlePlayer adds the player to the fight or removes them. The
// overlay being open is not checked.
func (o *orchestrator) ToggleBattlePlayer(_ context.Context, input *ToggleBattlePlayerInput) (*ToggleBattlePlayerOutput, error) {
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

	unlock := o.locks.lock(roomID)
	defer unlock()

	battle := input.Room.State().Battle.Clone()
	selected := !battle.IsSelected(input.PlayerID)
	if selected {
		battle.SelectedPlayerIDs = append(battle.SelectedPlayerIDs, input.PlayerID)
	} else {
		kept := make([]string, 0, len(battle.SelectedPlayerIDs))
		for _, id := range battle.SelectedPlayerIDs {
			if id != input.PlayerID {
				kept = append(kept, id)
			}
		}
		battle.SelectedPlayerIDs = kept
	}

	input.Room.PersistBattle(battle)

	logMutation("toggleBattlePlayer", roomID,
		"player_id", input.PlayerID,
		"selected", selected)

	return &ToggleBattlePlayerOutput{Battle: battle, Selected: selected}, nil
}

// AdjustMonsterLevel moves the monster level, never below 1
func (o *orchestrator) AdjustMonsterLevel(_ context.Context, input *AdjustMonsterLevelInput) (*AdjustMonsterLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	battle := input.Room.State().Battle.Clone()
	battle.MonsterLevel = engine.AdjustMonsterLevel(battle.MonsterLevel, input.Delta)
	input.Room.PersistBattle(battle)

	logMutation("adjustMonsterLevel", roomID, "monster_level", battle.MonsterLevel)

	return &AdjustMonsterLevelOutput{Battle: battle}, nil
}

// AdjustMonsterBonus moves the monster bonus; it may go negative
func (o *orchestrator) AdjustMonsterBonus(_ context.Context, input *AdjustMonsterBonusInput) (*AdjustMonsterBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	battle := input.Room.State().Battle.Clone()
	battle.MonsterBonus += input.Delta
	input.Room.PersistBattle(battle)

	logMutation("adjustMonsterBonus", roomID, "monster_bonus", battle.MonsterBonus)

	return &AdjustMonsterBonusOutput{Battle: battle}, nil
}

// AdjustPartyBonus adds delta to the shared party pool, which is stored on
// the first selected participant. Without a selection nothing happens.
func (o *orchestrator) AdjustPartyBonus(_ context.Context, input *AdjustPartyBonusInput) (*AdjustPartyBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	battle := input.Room.State().Battle.Clone()
	leaderID, ok := battle.LeaderID()
	if !ok {
		return &AdjustPartyBonusOutput{Battle: battle}, nil
	}

	battle.PlayerBonuses[leaderID] += input.Delta
	input.Room.PersistBattle(battle)

	logMutation("adjustPartyBonus", roomID,
		"leader_id", leaderID,
		"bonus", battle.PlayerBonuses[leaderID])

	return &AdjustPartyBonusOutput{Applied: true, LeaderID: leaderID, Battle: battle}, nil
}

// RollEscape rolls Run Away for a player and logs the result. The battle
// is not changed.
func (o *orchestrator) RollEscape(ctx context.Context, input *RollEscapeInput) (*RollEscapeOutput, error) {
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

	unlock := o.locks.lock(roomID)
	defer unlock()

	state := input.Room.State()
	idx := entities.FindPlayer(state.Players, input.PlayerID)
	if idx < 0 {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID).
			WithRoom(roomID).
			WithPlayer(input.PlayerID)
	}
	player := state.Players[idx]

	result, err := engine.RollEscape(o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll escape").WithRoom(roomID)
	}

	lang := language(input.Scope)
	entry := o.newLog(lang, entities.LogDanger, i18n.KeyCaught, player.Name, result.Roll)
	if result.Escaped {
		entry = o.newLog(lang, entities.LogSuccess, i18n.KeyEscaped, player.Name, result.Roll)
	}
	o.appendLogs(input.Room, entry)
	o.play(ctx, roomID, cues.Click())

	slog.Info("Run away rolled",
		"room_id", roomID,
		"player_id", player.ID,
		"roll", result.Roll,
		"escaped", result.Escaped)

	return &RollEscapeOutput{PlayerID: player.ID, Result: result}, nil
}
