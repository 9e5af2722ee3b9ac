// Package entities provides the room-scoped records shared by every connected client.
package entities

// Level caps for normal and Super Munchkin games
const (
	MinLevel      = 1
	MaxLevel      = 10
	SuperMaxLevel = 20
)

// Player represents one participant at the table.
// JSON names match the documents stored under rooms/{id}/players.
type Player struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	Gear           int    `json:"gear"`
	Gender         string `json:"gender"`
	Class          string `json:"class"`
	SecondaryClass string `json:"secondaryClass,omitempty"`
	Race           string `json:"race"`
	SecondaryRace  string `json:"secondaryRace,omitempty"`
	IsHalfBreed    bool   `json:"isHalfBreed,omitempty"`
	IsSuper        bool   `json:"isSuper,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

// GetID returns the player's ID
func (p *Player) GetID() string {
	return p.ID
}

// GetType returns the entity type used on the event bus
func (p *Player) GetType() string {
	return "player"
}

// PlayerPatch carries the fields of a partial player update.
// Nil fields are left untouched.
type PlayerPatch struct {
	Name           *string `json:"name,omitempty"`
	Level          *int    `json:"level,omitempty"`
	Gear           *int    `json:"gear,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Class          *string `json:"class,omitempty"`
	SecondaryClass *string `json:"secondaryClass,omitempty"`
	Race           *string `json:"race,omitempty"`
	SecondaryRace  *string `json:"secondaryRace,omitempty"`
	IsHalfBreed    *bool   `json:"isHalfBreed,omitempty"`
	IsSuper        *bool   `json:"isSuper,omitempty"`
	Avatar         *string `json:"avatar,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p PlayerPatch) IsEmpty() bool {
	return p.Name == nil && p.Level == nil && p.Gear == nil && p.Gender == nil &&
		p.Class == nil && p.SecondaryClass == nil && p.Race == nil && p.SecondaryRace == nil &&
		p.IsHalfBreed == nil && p.IsSuper == nil && p.Avatar == nil
}

// Apply returns a copy of the player with the patch merged in.
// Secondary class and race survive when their flags are cleared.
func (p Player) Apply(patch PlayerPatch) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Level != nil {
		p.Level = *patch.Level
	}
	if patch.Gear != nil {
		p.Gear = *patch.Gear
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Class != nil {
		p.Class = *patch.Class
	}
	if patch.SecondaryClass != nil {
		p.SecondaryClass = *patch.SecondaryClass
	}
	if patch.Race != nil {
		p.Race = *patch.Race
	}
	if patch.SecondaryRace != nil {
		p.SecondaryRace = *patch.SecondaryRace
	}
	if patch.IsHalfBreed != nil {
		p.IsHalfBreed = *patch.IsHalfBreed
	}
	if patch.IsSuper != nil {
		p.IsSuper = *patch.IsSuper
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	return p
}

// LevelCap returns the highest reachable level for the game mode
func LevelCap(superMode bool) int {
	if superMode {
		return SuperMaxLevel
	}
	return MaxLevel
}

// FindPlayer returns the index of the player with the given ID, or -1
func FindPlayer(players []Player, id string) int {
	for i := range players {
		if players[i].ID == id {
			return i
		}
	}
	return -1
}

// ClonePlayers copies a player list so callers can build the next value safely
func ClonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}
