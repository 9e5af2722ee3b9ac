// Package session keeps one live replica of a room and writes changes back.
//
// A Session resolves its room from an entry address, subscribes to the
// room's players, battle and logs documents and republishes every
// sanitized snapshot to observers. Writes are full-document overwrites
// issued in order by a background writer; callers never wait for them. A
// persisted value is applied to the local replica at once. While a
// document has writes of its own outstanding, inbound snapshots that are
// echoes of those writes or older than them are not applied.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/fanout"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/replication"
	"github.com/KirkDiggler/munchkin-api/internal/sanitize"
)

const (
	defaultWriteQueue   = 64
	defaultWriteTimeout = 5 * time.Second
	observerBuffer      = 4
)

// Config holds the dependencies of a session
type Config struct {
	Client  replication.Client
	RoomIDs idgen.Generator
	// PublicURL is the base address used for share links. Optional.
	PublicURL *url.URL
	// WriteQueue bounds pending writes; defaults to 64
	WriteQueue int
	// WriteTimeout bounds a single write; defaults to 5s
	WriteTimeout time.Duration
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.RoomIDs == nil {
		vb.RequiredField("RoomIDs")
	}
	if c.WriteQueue < 0 {
		vb.Field("WriteQueue", "must not be negative")
	}
	return vb.Build()
}

type write struct {
	collection string
	seq        uint64
	path       string
	value      []byte
}

// pendingWrite is a local write the store has not echoed back yet
type pendingWrite struct {
	seq    uint64
	value  []byte
	landed bool
}

// Session is the live replica of one room
type Session struct {
	client       replication.Client
	roomIDs      idgen.Generator
	publicURL    *url.URL
	writeTimeout time.Duration

	mu          sync.RWMutex
	state       State
	resolution  Resolution
	room        RoomState
	unsubscribe []func()
	closed      bool

	// pendingMu guards pending and writeSeq. It is taken after mu, never
	// before, and the writer takes it alone.
	pendingMu sync.Mutex
	writeSeq  uint64
	pending   map[string][]*pendingWrite

	ctx    context.Context
	cancel context.CancelFunc

	observers *fanout.Broadcaster[Update]
	writes    chan write
	writerWG  sync.WaitGroup
}

// New creates an unstarted session
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	queue := cfg.WriteQueue
	if queue == 0 {
		queue = defaultWriteQueue
	}
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	return &Session{
		client:       cfg.Client,
		roomIDs:      cfg.RoomIDs,
		publicURL:    cfg.PublicURL,
		writeTimeout: timeout,
		state:        StateUninitialized,
		room:         DefaultRoomState(),
		pending:      make(map[string][]*pendingWrite),
		observers:    fanout.New[Update](observerBuffer),
		writes:       make(chan write, queue),
	}, nil
}

// Start resolves the room and subscribes to its three documents. It returns
// once the first snapshot of each document has been applied. The session
// outlives ctx; only Close ends it.
func (s *Session) Start(ctx context.Context, entry *url.URL) error {
	s.mu.Lock()
	if s.state != StateUninitialized || s.closed {
		s.mu.Unlock()
		return errors.FailedPreconditionf("session cannot start from state %s", s.state)
	}
	s.state = StateResolvingRoom
	s.mu.Unlock()

	res, err := ResolveRoom(entry, s.roomIDs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.resolution = res
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.mu.Unlock()

	s.writerWG.Add(1)
	go s.runWriter()

	loaded := make(chan string, 3)
	paths := []struct {
		collection string
		path       string
	}{
		{replication.CollectionPlayers, replication.PlayersPath(res.RoomID)},
		{replication.CollectionBattle, replication.BattlePath(res.RoomID)},
		{replication.CollectionLogs, replication.LogsPath(res.RoomID)},
	}

	unsubscribes := make([]func(), 0, len(paths))
	for _, p := range paths {
		var once sync.Once
		collection := p.collection
		unsubscribe, err := s.client.Subscribe(s.ctx, p.path, func(value []byte) {
			s.apply(collection, value)
			once.Do(func() { loaded <- collection })
		})
		if err != nil {
			for _, u := range unsubscribes {
				u()
			}
			return errors.Wrapf(err, "failed to subscribe to %s", p.path)
		}
		unsubscribes = append(unsubscribes, unsubscribe)
	}

	s.mu.Lock()
	s.unsubscribe = unsubscribes
	s.mu.Unlock()

	for range paths {
		select {
		case <-loaded:
		case <-ctx.Done():
			return errors.WrapWithCode(ctx.Err(), errors.GetCode(ctx.Err()), "room did not load").
				WithRoom(res.RoomID)
		}
	}

	s.mu.Lock()
	s.state = StateSubscribed
	s.mu.Unlock()

	slog.Info("Room session subscribed",
		"room_id", res.RoomID,
		"generated", res.Generated)

	return nil
}

// apply handles an inbound snapshot: echoes of outstanding local writes
// are skipped, anything else is stored and published
func (s *Session) apply(collection string, value []byte) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if !s.reconcileLocked(collection, value) {
		s.mu.Unlock()
		return
	}
	update, issues := s.storeLocked(collection, value)
	s.mu.Unlock()

	s.publish(update, issues)
}

// reconcileLocked reports whether an inbound snapshot should replace the
// local document. A snapshot equal to an outstanding write is its echo; it
// and every older outstanding write are settled. Any other snapshot is
// dropped until every outstanding write has reached the store, since those
// writes overwrite it.
func (s *Session) reconcileLocked(collection string, value []byte) bool {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	queue := s.pending[collection]
	if len(queue) == 0 {
		return true
	}
	for i, pw := range queue {
		if bytes.Equal(pw.value, value) {
			s.pending[collection] = queue[i+1:]
			return false
		}
	}
	for _, pw := range queue {
		if !pw.landed {
			return false
		}
	}
	delete(s.pending, collection)
	return true
}

// settle records the outcome of a write. A failed write never echoes, so
// it stops holding back inbound snapshots.
func (s *Session) settle(collection string, seq uint64, ok bool) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	queue := s.pending[collection]
	for i, pw := range queue {
		if pw.seq != seq {
			continue
		}
		if ok {
			pw.landed = true
		} else {
			s.pending[collection] = append(queue[:i:i], queue[i+1:]...)
		}
		return
	}
}

// storeLocked sanitizes value into the local replica
func (s *Session) storeLocked(collection string, value []byte) (Update, []string) {
	var issues []string
	switch collection {
	case replication.CollectionPlayers:
		result := sanitize.Players(value)
		s.room.Players, issues = result.Value, result.Issues
	case replication.CollectionBattle:
		result := sanitize.Battle(value)
		s.room.Battle, issues = result.Value, result.Issues
	case replication.CollectionLogs:
		result := sanitize.Logs(value)
		s.room.Logs, issues = result.Value, result.Issues
	}
	update := Update{
		RoomID:     s.resolution.RoomID,
		Collection: collection,
		State:      s.room.Clone(),
	}
	return update, issues
}

func (s *Session) publish(update Update, issues []string) {
	if len(issues) > 0 {
		slog.Debug("Sanitized room snapshot",
			"room_id", update.RoomID,
			"collection", update.Collection,
			"issues", issues)
	}

	s.observers.Publish(update)
}

// RoomID returns the resolved room, empty before Start
func (s *Session) RoomID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution.RoomID
}

// Resolution returns how the room was resolved
func (s *Session) Resolution() Resolution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution
}

// ShareURL returns the address other players open to join the room
func (s *Session) ShareURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.resolution.RoomID == "" {
		return ""
	}
	return ShareURL(s.publicURL, s.resolution)
}

// Lifecycle returns the current lifecycle state
func (s *Session) Lifecycle() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// State returns a copy of the last observed room state
func (s *Session) State() RoomState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.room.Clone()
}

// Observe streams an Update after every inbound snapshot. A slow observer
// skips to the newest state. Call the returned func to stop.
func (s *Session) Observe() (<-chan Update, func()) {
	return s.observers.Subscribe()
}

// PersistPlayers overwrites the room's player list
func (s *Session) PersistPlayers(players []entities.Player) {
	if players == nil {
		players = []entities.Player{}
	}
	s.persist(replication.CollectionPlayers, players)
}

// PersistBattle overwrites the room's battle state
func (s *Session) PersistBattle(battle entities.BattleState) {
	s.persist(replication.CollectionBattle, battle)
}

// PersistLogs overwrites the room's log
func (s *Session) PersistLogs(logs []entities.GameLog) {
	if logs == nil {
		logs = []entities.GameLog{}
	}
	s.persist(replication.CollectionLogs, logs)
}

func (s *Session) persist(collection string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("Failed to encode room document",
			"collection", collection,
			"error", err)
		return
	}

	s.mu.Lock()
	roomID := s.resolution.RoomID
	if s.closed || s.state == StateUninitialized || roomID == "" {
		s.mu.Unlock()
		slog.Debug("Dropping write for inactive session",
			"room_id", roomID,
			"collection", collection)
		return
	}

	// Readers see the value before the store confirms it
	s.pendingMu.Lock()
	s.writeSeq++
	seq := s.writeSeq
	s.pending[collection] = append(s.pending[collection], &pendingWrite{seq: seq, value: raw})
	s.pendingMu.Unlock()
	update, issues := s.storeLocked(collection, raw)
	s.mu.Unlock()

	s.publish(update, issues)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	w := write{
		collection: collection,
		seq:        seq,
		path:       replication.RoomPath(roomID, collection),
		value:      raw,
	}
	select {
	case s.writes <- w:
	case <-s.ctx.Done():
	}
}

// runWriter issues queued writes one at a time so they reach the store in
// the order they were made
func (s *Session) runWriter() {
	defer s.writerWG.Done()

	for w := range s.writes {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(s.ctx), s.writeTimeout)
		err := s.client.Set(ctx, w.path, w.value)
		cancel()
		s.settle(w.collection, w.seq, err == nil)
		if err != nil {
			slog.Warn("Room write failed",
				"path", w.path,
				"error", err)
		}
	}
}

// Close unsubscribes from every document, flushes queued writes and stops
// observers. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribes := s.unsubscribe
	s.unsubscribe = nil
	started := s.ctx != nil
	s.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}

	// persist holds the read lock while sending, so once closed is set
	// under the write lock no new writes can be queued
	close(s.writes)
	s.writerWG.Wait()

	if started {
		s.cancel()
	}
	s.observers.Close()

	slog.Debug("Room session closed", "room_id", s.RoomID())
}
