package intent

import (
	"github.com/KirkDiggler/munchkin-api/internal/engine"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

// View is the room as clients render it: the replicated documents plus
// every derived combat value
type View struct {
	RoomID  string               `json:"roomId"`
	Players []entities.Player    `json:"players"`
	Battle  entities.BattleState `json:"battle"`
	Logs    []entities.GameLog   `json:"logs"`
	Summary engine.BattleSummary `json:"summary"`
}

// NewView derives the view of one state
func NewView(roomID string, state session.RoomState) *View {
	return &View{
		RoomID:  roomID,
		Players: state.Players,
		Battle:  state.Battle,
		Logs:    state.Logs,
		Summary: engine.Summarize(state.Players, state.Battle),
	}
}
