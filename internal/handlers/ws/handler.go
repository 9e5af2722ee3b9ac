// Package ws serves browsers: a WebSocket per client bound to one room,
// plus the small HTTP API used before a socket is opened.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 2 << 20 // fits an inline avatar data URL
	sendBuffer     = 32
)

// Rooms hands out the live session of a room. *session.Registry satisfies it.
type Rooms interface {
	Acquire(ctx context.Context, entry *url.URL) (*session.Session, func(), error)
	Active() int
}

// Config holds the dependencies for the handler
type Config struct {
	Rooms   Rooms
	Router  *intent.Router
	Bus     events.EventBus
	RoomIDs idgen.Generator
	ConnIDs idgen.Generator
	// PublicURL is the base of share links. Optional.
	PublicURL *url.URL
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Rooms == nil {
		vb.RequiredField("Rooms")
	}
	if c.Router == nil {
		vb.RequiredField("Router")
	}
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	if c.RoomIDs == nil {
		vb.RequiredField("RoomIDs")
	}
	if c.ConnIDs == nil {
		vb.RequiredField("ConnIDs")
	}
	return vb.Build()
}

// Handler serves the browser surface
type Handler struct {
	rooms     Rooms
	router    *intent.Router
	bus       events.EventBus
	roomIDs   idgen.Generator
	connIDs   idgen.Generator
	publicURL *url.URL
	upgrader  websocket.Upgrader
}

// NewHandler creates a handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		rooms:     cfg.Rooms,
		router:    cfg.Router,
		bus:       cfg.Bus,
		roomIDs:   cfg.RoomIDs,
		connIDs:   cfg.ConnIDs,
		publicURL: cfg.PublicURL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Rooms are open to anyone holding the link
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// Routes registers every endpoint on a new router
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws", h.ServeWS).Methods(http.MethodGet)
	r.HandleFunc("/api/rooms/resolve", h.ResolveRoom).Methods(http.MethodGet)
	r.HandleFunc("/api/i18n/{lang}", h.Strings).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	return r
}

// ResolveRoomResponse is returned by ResolveRoom
type ResolveRoomResponse struct {
	RoomID    string `json:"roomId"`
	URL       string `json:"url"`
	Generated bool   `json:"generated"`
}

// ResolveRoom reads ?room= or makes up a new room without subscribing to it
func (h *Handler) ResolveRoom(w http.ResponseWriter, r *http.Request) {
	res, err := session.ResolveRoom(&url.URL{Path: "/", RawQuery: r.URL.RawQuery}, h.roomIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &ResolveRoomResponse{
		RoomID:    res.RoomID,
		URL:       session.ShareURL(h.publicURL, res),
		Generated: res.Generated,
	})
}

// Strings serves the string table of one language
func (h *Handler) Strings(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["lang"]
	lang, ok := i18n.ParseLanguage(raw)
	if !ok {
		writeError(w, errors.NotFoundf("language %q is not supported", raw))
		return
	}
	writeJSON(w, http.StatusOK, i18n.TableFor(lang))
}

// HealthResponse is returned by Health
type HealthResponse struct {
	Status string `json:"status"`
	Rooms  int    `json:"rooms"`
}

// Health reports liveness and the number of rooms held open
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &HealthResponse{Status: "ok", Rooms: h.rooms.Active()})
}

// ServeWS binds the connection to the room named by ?room=, creating one
// when absent, and streams state and effects until the client leaves
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	lang := i18n.ResolveRequest(r)

	sess, release, err := h.rooms.Acquire(r.Context(), entryURL(r))
	if err != nil {
		slog.Warn("Room unavailable", "error", err)
		writeError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request
		release()
		slog.Debug("WebSocket upgrade failed", "error", err)
		return
	}

	c := newConnection(h.connIDs.Generate(), conn, sess, lang)
	slog.Info("Client connected",
		"conn_id", c.id,
		"room_id", sess.RoomID(),
		"lang", lang)

	c.run(h.router, h.bus)
	release()

	slog.Info("Client disconnected",
		"conn_id", c.id,
		"room_id", sess.RoomID())
}

// entryURL is the address the page was opened with, as far as the server
// can tell
func entryURL(r *http.Request) *url.URL {
	entry := &url.URL{Path: "/", RawQuery: r.URL.RawQuery}
	query := entry.Query()
	query.Del(i18n.LangParam)
	entry.RawQuery = query.Encode()
	return entry
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Debug("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	payload := errors.ToPayload(err)
	writeJSON(w, payload.Code.HTTPStatus(), &ErrorFrame{Type: FrameError, Payload: payload})
}
