package game

import (
	"sync"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// MaxHistory bounds the undo stack of each room
const MaxHistory = 5

// history keeps the previous player lists of each room in memory only
type history struct {
	mu    sync.Mutex
	rooms map[string][][]entities.Player
}

func newHistory() *history {
	return &history{rooms: make(map[string][][]entities.Player)}
}

func (h *history) push(roomID string, players []entities.Player) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stack := append(h.rooms[roomID], entities.ClonePlayers(players))
	if len(stack) > MaxHistory {
		stack = stack[len(stack)-MaxHistory:]
	}
	h.rooms[roomID] = stack
}

func (h *history) pop(roomID string) ([]entities.Player, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stack := h.rooms[roomID]
	if len(stack) == 0 {
		return nil, false
	}
	last := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(h.rooms, roomID)
	} else {
		h.rooms[roomID] = stack[:len(stack)-1]
	}
	return last, true
}

func (h *history) clear(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, roomID)
}

func (h *history) depth(roomID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}
