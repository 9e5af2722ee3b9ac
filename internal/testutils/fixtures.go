package testutils

import (
	"fmt"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// TestPlayerName is the default name for fixture players
const TestPlayerName = "Elf Thief"

// CreateTestPlayer creates a level 1 player with no gear
func CreateTestPlayer(id string) entities.Player {
	return entities.Player{
		ID:     id,
		Name:   TestPlayerName,
		Level:  entities.MinLevel,
		Gear:   0,
		Gender: "Female",
		Class:  "Thief",
		Race:   "Elf",
	}
}

// CreateTestPlayerWithStats creates a player at the given level and gear
func CreateTestPlayerWithStats(id string, level, gear int) entities.Player {
	player := CreateTestPlayer(id)
	player.Level = level
	player.Gear = gear
	return player
}

// CreateTestParty creates n players with ids p1..pn, each at level i and
// gear i
func CreateTestParty(n int) []entities.Player {
	players := make([]entities.Player, 0, n)
	for i := 1; i <= n; i++ {
		player := CreateTestPlayerWithStats(fmt.Sprintf("p%d", i), i, i)
		player.Name = fmt.Sprintf("Player %d", i)
		players = append(players, player)
	}
	return players
}

// CreateTestBattle creates an active battle against a monster with the
// given participants. The first id is the party leader.
func CreateTestBattle(monsterLevel, monsterBonus int, playerIDs ...string) entities.BattleState {
	battle := entities.DefaultBattleState()
	battle.Active = true
	battle.MonsterLevel = monsterLevel
	battle.MonsterBonus = monsterBonus
	battle.SelectedPlayerIDs = append(battle.SelectedPlayerIDs, playerIDs...)
	return battle
}

// CreateTestLogs creates n info entries, most recent first, with ids
// l{n}..l1 and timestamps counting down from n
func CreateTestLogs(n int) []entities.GameLog {
	logs := make([]entities.GameLog, 0, n)
	for i := n; i >= 1; i-- {
		logs = append(logs, entities.GameLog{
			ID:        fmt.Sprintf("l%d", i),
			Timestamp: int64(i),
			Message:   fmt.Sprintf("entry %d", i),
			Type:      entities.LogInfo,
		})
	}
	return logs
}
