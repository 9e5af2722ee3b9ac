package game

import (
	"context"

	"github.com/KirkDiggler/munchkin-api/internal/engine"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

// Room is the live replica a mutation reads from and writes to.
// *session.Session satisfies it.
type Room interface {
	RoomID() string
	ShareURL() string
	State() session.RoomState
	PersistPlayers(players []entities.Player)
	PersistBattle(battle entities.BattleState)
	PersistLogs(logs []entities.GameLog)
}

// Confirmer answers the yes/no prompt shown before a destructive change
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Confirmed is a Confirmer with a fixed answer, used when the client sent
// its decision along with the intent
type Confirmed bool

// Confirm implements Confirmer
func (c Confirmed) Confirm(context.Context, string) bool {
	return bool(c)
}

// Scope is what every mutation needs to know about its caller
type Scope struct {
	Room      Room
	Language  entities.Language
	SuperMode bool
}

// AddPlayerInput appends a player with localized defaults
type AddPlayerInput struct {
	Scope
}

// AddPlayerOutput carries the new player
type AddPlayerOutput struct {
	Player *entities.Player
}

// UpdatePlayerInput merges a patch into one player
type UpdatePlayerInput struct {
	Scope
	PlayerID string
	Patch    entities.PlayerPatch
}

// UpdatePlayerOutput describes the transition. Applied is false when the
// player does not exist.
type UpdatePlayerOutput struct {
	Applied   bool
	Player    *entities.Player
	LeveledUp bool
	LostLevel bool
	Victory   bool
}

// AdjustLevelInput moves a player's level by Delta within the level cap
type AdjustLevelInput struct {
	Scope
	PlayerID string
	Delta    int
}

// AdjustGearInput moves a player's gear by Delta
type AdjustGearInput struct {
	Scope
	PlayerID string
	Delta    int
}

// DeletePlayerInput removes a player after confirmation
type DeletePlayerInput struct {
	Scope
	PlayerID  string
	Confirmer Confirmer
}

// DeletePlayerOutput reports whether the player was removed
type DeletePlayerOutput struct {
	Applied bool
}

// ResetGameInput puts every player back to level 1 after confirmation
type ResetGameInput struct {
	Scope
	Confirmer Confirmer
}

// ResetGameOutput reports whether the reset happened
type ResetGameOutput struct {
	Applied bool
}

// ToggleBattleModeInput opens or closes the battle overlay
type ToggleBattleModeInput struct {
	Scope
}

// ToggleBattleModeOutput carries the written battle state
type ToggleBattleModeOutput struct {
	Battle entities.BattleState
}

// ToggleBattlePlayerInput adds or removes a fight participant
type ToggleBattlePlayerInput struct {
	Scope
	PlayerID string
}

// ToggleBattlePlayerOutput carries the written battle state
type ToggleBattlePlayerOutput struct {
	Battle   entities.BattleState
	Selected bool
}

// AdjustMonsterLevelInput moves the monster level, floored at 1
type AdjustMonsterLevelInput struct {
	Scope
	Delta int
}

// AdjustMonsterLevelOutput carries the written battle state
type AdjustMonsterLevelOutput struct {
	Battle entities.BattleState
}

// AdjustMonsterBonusInput moves the monster bonus without bounds
type AdjustMonsterBonusInput struct {
	Scope
	Delta int
}

// AdjustMonsterBonusOutput carries the written battle state
type AdjustMonsterBonusOutput struct {
	Battle entities.BattleState
}

// AdjustPartyBonusInput moves the shared party pool held by the leader
type AdjustPartyBonusInput struct {
	Scope
	Delta int
}

// AdjustPartyBonusOutput reports whether a leader existed to hold the bonus
type AdjustPartyBonusOutput struct {
	Applied  bool
	LeaderID string
	Battle   entities.BattleState
}

// UndoInput restores the previous player list
type UndoInput struct {
	Scope
}

// UndoOutput reports whether there was anything to restore
type UndoOutput struct {
	Applied bool
	Players []entities.Player
}

// InviteLinkInput asks for the room's share address
type InviteLinkInput struct {
	Scope
}

// InviteLinkOutput carries the share address
type InviteLinkOutput struct {
	URL string
}

// RollEscapeInput rolls Run Away for one player
type RollEscapeInput struct {
	Scope
	PlayerID string
}

// RollEscapeOutput carries the roll
type RollEscapeOutput struct {
	PlayerID string
	Result   *engine.EscapeResult
}
