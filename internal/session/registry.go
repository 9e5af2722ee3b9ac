package session

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/replication"
)

// RegistryConfig holds the dependencies shared by every session
type RegistryConfig struct {
	Client    replication.Client
	RoomIDs   idgen.Generator
	PublicURL *url.URL
	// LoadTimeout bounds the initial load of a room; defaults to 15s
	LoadTimeout time.Duration
}

const defaultLoadTimeout = 15 * time.Second

// Validate ensures all required dependencies are present
func (c *RegistryConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.RoomIDs == nil {
		vb.RequiredField("RoomIDs")
	}
	if c.LoadTimeout < 0 {
		vb.InvalidField("LoadTimeout", "must not be negative")
	}
	return vb.Build()
}

type registryEntry struct {
	session *Session
	refs    int
	ready   chan struct{}
	err     error
}

// Registry hands out one shared session per room, so a room has exactly
// one subscription set no matter how many clients are connected.
type Registry struct {
	client      replication.Client
	roomIDs     idgen.Generator
	publicURL   *url.URL
	loadTimeout time.Duration

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loadTimeout := cfg.LoadTimeout
	if loadTimeout == 0 {
		loadTimeout = defaultLoadTimeout
	}

	return &Registry{
		client:      cfg.Client,
		roomIDs:     cfg.RoomIDs,
		publicURL:   cfg.PublicURL,
		loadTimeout: loadTimeout,
		entries:     make(map[string]*registryEntry),
	}, nil
}

// Acquire returns the session for the room addressed by entry, starting it
// on first use. Call release when done; the last release closes the session.
// The load outlives ctx: a caller that gives up does not fail the others
// waiting on the same room.
func (r *Registry) Acquire(ctx context.Context, entry *url.URL) (*Session, func(), error) {
	res, err := ResolveRoom(entry, r.roomIDs)
	if err != nil {
		return nil, nil, err
	}
	roomID := res.RoomID

	r.mu.Lock()
	e, ok := r.entries[roomID]
	if ok {
		e.refs++
	} else {
		e = &registryEntry{refs: 1, ready: make(chan struct{})}
		r.entries[roomID] = e
		go r.load(ctx, roomID, e, res)
	}
	r.mu.Unlock()

	select {
	case <-e.ready:
	case <-ctx.Done():
		r.release(roomID, e)
		return nil, nil, errors.WrapWithCode(ctx.Err(), errors.GetCode(ctx.Err()), "room did not load").
			WithRoom(roomID)
	}
	if e.err != nil {
		r.release(roomID, e)
		return nil, nil, e.err
	}
	return e.session, r.releaseFunc(roomID, e), nil
}

// load starts the session for e. A session nobody waits for any more is
// closed straight away.
func (r *Registry) load(ctx context.Context, roomID string, e *registryEntry, res Resolution) {
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.loadTimeout)
	defer cancel()

	s, err := r.start(loadCtx, res)

	r.mu.Lock()
	e.session, e.err = s, err
	abandoned := e.refs <= 0
	if (err != nil || abandoned) && r.entries[roomID] == e {
		delete(r.entries, roomID)
	}
	r.mu.Unlock()
	close(e.ready)

	if err != nil {
		slog.Warn("Room failed to load",
			"room_id", roomID,
			"error", err)
		return
	}
	if abandoned {
		s.Close()
		slog.Info("Room session released", "room_id", roomID)
	}
}

func (r *Registry) start(ctx context.Context, res Resolution) (*Session, error) {
	s, err := New(&Config{
		Client:    r.client,
		RoomIDs:   r.roomIDs,
		PublicURL: r.publicURL,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Start(ctx, res.URL); err != nil {
		s.Close()
		return nil, err
	}
	// keep the generated flag of the first resolution
	s.mu.Lock()
	s.resolution.Generated = res.Generated
	s.mu.Unlock()

	return s, nil
}

func (r *Registry) releaseFunc(roomID string, e *registryEntry) func() {
	var once sync.Once
	return func() {
		once.Do(func() { r.release(roomID, e) })
	}
}

func (r *Registry) release(roomID string, e *registryEntry) {
	r.mu.Lock()
	e.refs--
	last := e.refs <= 0
	if last && r.entries[roomID] == e {
		delete(r.entries, roomID)
	}
	sess := e.session
	r.mu.Unlock()

	if last && sess != nil {
		sess.Close()
		slog.Info("Room session released", "room_id", roomID)
	}
}

// Active returns the number of rooms with a live session
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close closes every session regardless of outstanding references
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, e := range entries {
		<-e.ready
		if e.session != nil {
			e.session.Close()
		}
	}
}
