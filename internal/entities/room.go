package entities

// Room identifies a shared scoreboard. Rooms exist implicitly: any valid
// identifier addresses one, and defaults materialize on first read.
type Room struct {
	ID       string `json:"roomId"`
	ShareURL string `json:"shareUrl,omitempty"`
}

// GetID returns the room ID
func (r *Room) GetID() string {
	return r.ID
}

// GetType returns the entity type used on the event bus
func (r *Room) GetType() string {
	return "room"
}
