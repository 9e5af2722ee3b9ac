// Package engine derives combat values from the room state.
// Everything here is pure; no function mutates its inputs.
package engine

import (
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
)

// Outcome is the result of comparing party and monster strength
type Outcome string

// Outcomes
const (
	OutcomePartyWins   Outcome = "PARTY_WINS"
	OutcomeMonsterWins Outcome = "MONSTER_WINS"
)

// EffectiveLevel treats a missing or malformed level as 1
func EffectiveLevel(level int) int {
	if level < entities.MinLevel {
		return entities.MinLevel
	}
	return level
}

// CombatStrength is level + gear + the player's accumulated battle bonus
func CombatStrength(player entities.Player, battle entities.BattleState) int {
	return EffectiveLevel(player.Level) + player.Gear + battle.Bonus(player.ID)
}

// PartyStrength sums CombatStrength over selected players.
// Selected IDs with no matching player contribute nothing.
func PartyStrength(players []entities.Player, battle entities.BattleState) int {
	total := 0
	for _, id := range battle.SelectedPlayerIDs {
		idx := entities.FindPlayer(players, id)
		if idx < 0 {
			continue
		}
		total += CombatStrength(players[idx], battle)
	}
	return total
}

// PartyBonusTotal sums bonuses of selected IDs only
func PartyBonusTotal(battle entities.BattleState) int {
	total := 0
	for _, id := range battle.SelectedPlayerIDs {
		total += battle.Bonus(id)
	}
	return total
}

// MonsterStrength is monster level + monster bonus
func MonsterStrength(battle entities.BattleState) int {
	return battle.MonsterLevel + battle.MonsterBonus
}

// HasWarriorInParty reports whether any selected player is a Warrior.
// The class is resolved through its stable identifier so the rule holds
// for labels stored in any supported language.
func HasWarriorInParty(players []entities.Player, battle entities.BattleState) bool {
	for _, id := range battle.SelectedPlayerIDs {
		idx := entities.FindPlayer(players, id)
		if idx < 0 {
			continue
		}
		if i18n.ClassIDFor(players[idx].Class) == entities.ClassWarrior {
			return true
		}
	}
	return false
}

// ResolveOutcome applies the Munchkin rule: the party must beat the
// monster, except that Warriors win ties.
func ResolveOutcome(players []entities.Player, battle entities.BattleState) Outcome {
	party := PartyStrength(players, battle)
	monster := MonsterStrength(battle)
	if party > monster {
		return OutcomePartyWins
	}
	if party == monster && HasWarriorInParty(players, battle) {
		return OutcomePartyWins
	}
	return OutcomeMonsterWins
}

// AdjustLevel moves a level by delta and clamps it into [1, levelCap]
func AdjustLevel(level, delta, levelCap int) int {
	return ClampLevel(level+delta, levelCap)
}

// ClampLevel bounds a level into [1, levelCap]
func ClampLevel(level, levelCap int) int {
	if levelCap < entities.MinLevel {
		levelCap = entities.MinLevel
	}
	if level < entities.MinLevel {
		return entities.MinLevel
	}
	if level > levelCap {
		return levelCap
	}
	return level
}

// AdjustMonsterLevel applies delta with a floor of 1 and no ceiling
func AdjustMonsterLevel(level, delta int) int {
	next := level + delta
	if next < entities.DefaultMonsterLevel {
		return entities.DefaultMonsterLevel
	}
	return next
}

// PlayerStrength is one row of a battle summary
type PlayerStrength struct {
	PlayerID string `json:"playerId"`
	Strength int    `json:"strength"`
	Selected bool   `json:"selected"`
	Leader   bool   `json:"leader,omitempty"`
}

// BattleSummary carries every derived value a client renders
type BattleSummary struct {
	Active          bool             `json:"active"`
	PartyStrength   int              `json:"partyStrength"`
	PartyBonusTotal int              `json:"partyBonusTotal"`
	MonsterStrength int              `json:"monsterStrength"`
	WarriorInParty  bool             `json:"warriorInParty"`
	Outcome         Outcome          `json:"outcome"`
	Players         []PlayerStrength `json:"players"`
}

// Summarize computes all derived values for one state
func Summarize(players []entities.Player, battle entities.BattleState) BattleSummary {
	leader, _ := battle.LeaderID()
	rows := make([]PlayerStrength, 0, len(players))
	for _, p := range players {
		selected := battle.IsSelected(p.ID)
		rows = append(rows, PlayerStrength{
			PlayerID: p.ID,
			Strength: CombatStrength(p, battle),
			Selected: selected,
			Leader:   selected && p.ID == leader,
		})
	}

	return BattleSummary{
		Active:          battle.Active,
		PartyStrength:   PartyStrength(players, battle),
		PartyBonusTotal: PartyBonusTotal(battle),
		MonsterStrength: MonsterStrength(battle),
		WarriorInParty:  HasWarriorInParty(players, battle),
		Outcome:         ResolveOutcome(players, battle),
		Players:         rows,
	}
}
