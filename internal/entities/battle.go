package entities

// Monster defaults used for a fresh room
const (
	DefaultMonsterLevel = 1
	DefaultMonsterBonus = 0
)

// BattleState is the single battle overlay shared by a room.
//
// SelectedPlayerIDs is an ordered sequence but only membership matters, except
// that the first entry is the party leader holding the shared bonus pool.
// Stale IDs of deleted players may linger and are ignored by the calculator.
type BattleState struct {
	Active            bool           `json:"active"`
	MonsterLevel      int            `json:"monsterLevel"`
	MonsterBonus      int            `json:"monsterBonus"`
	SelectedPlayerIDs []string       `json:"selectedPlayerIds"`
	PlayerBonuses     map[string]int `json:"playerBonuses"`
}

// DefaultBattleState returns the battle used when a room has none stored
func DefaultBattleState() BattleState {
	return BattleState{
		Active:            false,
		MonsterLevel:      DefaultMonsterLevel,
		MonsterBonus:      DefaultMonsterBonus,
		SelectedPlayerIDs: []string{},
		PlayerBonuses:     map[string]int{},
	}
}

// Clone returns a deep copy so the next value never aliases observed state
func (b BattleState) Clone() BattleState {
	out := b
	out.SelectedPlayerIDs = make([]string, len(b.SelectedPlayerIDs))
	copy(out.SelectedPlayerIDs, b.SelectedPlayerIDs)
	out.PlayerBonuses = make(map[string]int, len(b.PlayerBonuses))
	for id, bonus := range b.PlayerBonuses {
		out.PlayerBonuses[id] = bonus
	}
	return out
}

// IsSelected reports whether the player takes part in the fight
func (b BattleState) IsSelected(playerID string) bool {
	for _, id := range b.SelectedPlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// LeaderID returns the first selected participant, who carries the shared party pool
func (b BattleState) LeaderID() (string, bool) {
	if len(b.SelectedPlayerIDs) == 0 {
		return "", false
	}
	return b.SelectedPlayerIDs[0], true
}

// Bonus returns the accumulated bonus stored on a player, 0 when absent
func (b BattleState) Bonus(playerID string) int {
	return b.PlayerBonuses[playerID]
}
