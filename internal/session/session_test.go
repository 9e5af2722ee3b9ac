package session_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/replication"
	replicationmock "github.com/KirkDiggler/munchkin-api/internal/replication/mock"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type SessionTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *replication.MemoryClient
	entry  *url.URL
	roomID string
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = replication.NewMemoryClient()
	s.roomID = "room42"
	s.entry = &url.URL{Path: "/", RawQuery: "room=" + s.roomID}
}

func (s *SessionTestSuite) newSession(client replication.Client) *session.Session {
	sess, err := session.New(&session.Config{
		Client:    client,
		RoomIDs:   idgen.NewRoomIDs(),
		PublicURL: &url.URL{Scheme: "https", Host: "munchkin.example", Path: "/"},
	})
	s.Require().NoError(err)
	return sess
}

func (s *SessionTestSuite) TestNewValidation() {
	_, err := session.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = session.New(&session.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestStartLoadsDefaults() {
	sess := s.newSession(s.store)
	defer sess.Close()

	s.Equal(session.StateUninitialized, sess.Lifecycle())
	s.Require().NoError(sess.Start(s.ctx, s.entry))
	s.Equal(session.StateSubscribed, sess.Lifecycle())

	s.Equal(s.roomID, sess.RoomID())
	s.Equal("https://munchkin.example/?room=room42", sess.ShareURL())
	s.Equal(session.DefaultRoomState(), sess.State())
}

func (s *SessionTestSuite) TestStartLoadsExistingRoom() {
	s.Require().NoError(s.store.Set(s.ctx, replication.PlayersPath(s.roomID), []byte(`[{"id":"a","name":"Alice","level":4}]`)))
	s.Require().NoError(s.store.Set(s.ctx, replication.BattlePath(s.roomID), []byte(`{"active":true,"monsterLevel":"6"}`)))

	sess := s.newSession(s.store)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	state := sess.State()
	s.Require().Len(state.Players, 1)
	s.Equal(4, state.Players[0].Level)
	s.True(state.Battle.Active)
	s.Equal(6, state.Battle.MonsterLevel)
	s.Empty(state.Logs)
}

func (s *SessionTestSuite) TestStartTwice() {
	sess := s.newSession(s.store)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	err := sess.Start(s.ctx, s.entry)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(session.StateSubscribed, sess.Lifecycle())
}

func (s *SessionTestSuite) TestStartRejectsInvalidRoom() {
	sess := s.newSession(s.store)
	defer sess.Close()

	err := sess.Start(s.ctx, &url.URL{Path: "/", RawQuery: "room=a%23b"})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(session.StateResolvingRoom, sess.Lifecycle())
}

func (s *SessionTestSuite) TestPersistRoundTripsThroughSubscription() {
	sess := s.newSession(s.store)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	updates, stop := sess.Observe()
	defer stop()

	sess.PersistPlayers([]entities.Player{{ID: "a", Name: "Alice", Level: 1}})

	s.Eventually(func() bool {
		return len(sess.State().Players) == 1
	}, waitFor, tick)

	select {
	case update := <-updates:
		s.Equal(replication.CollectionPlayers, update.Collection)
		s.Equal(s.roomID, update.RoomID)
	case <-time.After(waitFor):
		s.Fail("no update observed")
	}
}

func (s *SessionTestSuite) TestPersistAppliesLocallyAtOnce() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)
	client.EXPECT().
		Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn replication.Snapshot) (func(), error) {
			go fn(nil)
			return func() {}, nil
		}).
		Times(3)
	client.EXPECT().Set(gomock.Any(), replication.PlayersPath(s.roomID), gomock.Any()).Return(nil).Times(2)

	sess := s.newSession(client)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	sess.PersistPlayers([]entities.Player{{ID: "a", Name: "Alice", Level: 2}})
	sess.PersistPlayers([]entities.Player{{ID: "a", Name: "Alice", Level: 3}})

	players := sess.State().Players
	s.Require().Len(players, 1)
	s.Equal(3, players[0].Level)
}

func (s *SessionTestSuite) TestWritesKeepOrder() {
	sess := s.newSession(s.store)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	for i := 1; i <= 20; i++ {
		battle := entities.DefaultBattleState()
		battle.MonsterLevel = i
		sess.PersistBattle(battle)
	}

	s.Eventually(func() bool {
		return sess.State().Battle.MonsterLevel == 20
	}, waitFor, tick)
}

func (s *SessionTestSuite) TestOtherClientsWritesAreObserved() {
	sess := s.newSession(s.store)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	logs, _ := json.Marshal([]entities.GameLog{{ID: "l1", Message: "hi", Type: entities.LogInfo}})
	s.Require().NoError(s.store.Set(s.ctx, replication.LogsPath(s.roomID), logs))

	s.Eventually(func() bool {
		return len(sess.State().Logs) == 1
	}, waitFor, tick)
}

func (s *SessionTestSuite) TestCloseFlushesWritesAndStopsObservers() {
	sess := s.newSession(s.store)
	s.Require().NoError(sess.Start(s.ctx, s.entry))
	updates, _ := sess.Observe()

	sess.PersistLogs([]entities.GameLog{{ID: "l1"}})
	sess.Close()
	sess.Close()

	s.NotNil(s.store.Get(replication.LogsPath(s.roomID)))

	s.Eventually(func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, waitFor, tick)

	sess.PersistLogs(nil)
}

func (s *SessionTestSuite) TestWriteFailuresAreAbsorbed() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)

	client.EXPECT().
		Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn replication.Snapshot) (func(), error) {
			go fn(nil)
			return func() {}, nil
		}).
		Times(3)
	client.EXPECT().
		Set(gomock.Any(), replication.PlayersPath(s.roomID), []byte(`[]`)).
		Return(errors.Unavailable("store offline"))

	sess := s.newSession(client)
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	sess.PersistPlayers(nil)
	sess.Close()
	s.Equal(session.DefaultRoomState(), sess.State())
}

func (s *SessionTestSuite) TestSubscribeFailureUnwinds() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)

	unsubscribed := 0
	gomock.InOrder(
		client.EXPECT().
			Subscribe(gomock.Any(), replication.PlayersPath(s.roomID), gomock.Any()).
			Return(func() { unsubscribed++ }, nil),
		client.EXPECT().
			Subscribe(gomock.Any(), replication.BattlePath(s.roomID), gomock.Any()).
			Return(nil, fmt.Errorf("connection reset")),
	)

	sess := s.newSession(client)
	defer sess.Close()

	err := sess.Start(s.ctx, s.entry)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to subscribe to rooms/room42/battle")
	s.Equal(1, unsubscribed)
}

func (s *SessionTestSuite) TestStartHonoursContext() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)
	client.EXPECT().
		Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(func() {}, nil).
		Times(3)

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	sess := s.newSession(client)
	defer sess.Close()

	err := sess.Start(ctx, s.entry)
	s.Require().Error(err)
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(err))
}

// capturedSnapshots records the snapshot callback of every subscribed path
// so tests can deliver snapshots in a chosen order
type capturedSnapshots struct {
	mu  sync.Mutex
	fns map[string]replication.Snapshot
}

func (c *capturedSnapshots) subscribe(_ context.Context, path string, fn replication.Snapshot) (func(), error) {
	c.mu.Lock()
	if c.fns == nil {
		c.fns = map[string]replication.Snapshot{}
	}
	c.fns[path] = fn
	c.mu.Unlock()
	go fn(nil)
	return func() {}, nil
}

func (c *capturedSnapshots) deliver(path string, value []byte) {
	c.mu.Lock()
	fn := c.fns[path]
	c.mu.Unlock()
	fn(value)
}

func battleJSON(monsterLevel int) []byte {
	battle := entities.DefaultBattleState()
	battle.MonsterLevel = monsterLevel
	raw, _ := json.Marshal(battle)
	return raw
}

func (s *SessionTestSuite) TestEchoOfEarlierWriteDoesNotRollBack() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)
	snapshots := &capturedSnapshots{}
	client.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(snapshots.subscribe).Times(3)
	client.EXPECT().Set(gomock.Any(), replication.BattlePath(s.roomID), gomock.Any()).Return(nil).Times(2)

	sess := s.newSession(client)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	second := entities.DefaultBattleState()
	second.MonsterLevel = 2
	third := entities.DefaultBattleState()
	third.MonsterLevel = 3
	sess.PersistBattle(second)
	sess.PersistBattle(third)

	path := replication.BattlePath(s.roomID)
	snapshots.deliver(path, battleJSON(2))
	s.Equal(3, sess.State().Battle.MonsterLevel, "echo of the earlier write must not roll back")

	snapshots.deliver(path, battleJSON(3))
	s.Equal(3, sess.State().Battle.MonsterLevel)

	snapshots.deliver(path, battleJSON(9))
	s.Equal(9, sess.State().Battle.MonsterLevel, "writes from elsewhere apply once ours are echoed")
}

func (s *SessionTestSuite) TestOtherWritesWaitForOutstandingWrites() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)
	snapshots := &capturedSnapshots{}
	release := make(chan struct{})
	client.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(snapshots.subscribe).Times(3)
	client.EXPECT().
		Set(gomock.Any(), replication.BattlePath(s.roomID), gomock.Any()).
		DoAndReturn(func(context.Context, string, []byte) error {
			<-release
			return nil
		})

	sess := s.newSession(client)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	battle := entities.DefaultBattleState()
	battle.MonsterLevel = 4
	sess.PersistBattle(battle)

	path := replication.BattlePath(s.roomID)
	snapshots.deliver(path, battleJSON(7))
	s.Equal(4, sess.State().Battle.MonsterLevel, "our queued write will overwrite it in the store")

	close(release)
	s.Eventually(func() bool {
		snapshots.deliver(path, battleJSON(7))
		return sess.State().Battle.MonsterLevel == 7
	}, waitFor, tick)
}

func (s *SessionTestSuite) TestFailedWriteStopsHoldingBackSnapshots() {
	ctrl := gomock.NewController(s.T())
	client := replicationmock.NewMockClient(ctrl)
	snapshots := &capturedSnapshots{}
	client.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(snapshots.subscribe).Times(3)
	client.EXPECT().
		Set(gomock.Any(), replication.BattlePath(s.roomID), gomock.Any()).
		Return(errors.Unavailable("store offline"))

	sess := s.newSession(client)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	battle := entities.DefaultBattleState()
	battle.MonsterLevel = 4
	sess.PersistBattle(battle)

	path := replication.BattlePath(s.roomID)
	s.Eventually(func() bool {
		snapshots.deliver(path, battleJSON(6))
		return sess.State().Battle.MonsterLevel == 6
	}, waitFor, tick)
}

func (s *SessionTestSuite) TestReadModifyWriteBurstKeepsEveryChange() {
	sess := s.newSession(s.store)
	defer sess.Close()
	s.Require().NoError(sess.Start(s.ctx, s.entry))

	const adds = 200
	for i := 1; i <= adds; i++ {
		players := sess.State().Players
		players = append(players, entities.Player{ID: fmt.Sprintf("p%d", i), Level: 1})
		sess.PersistPlayers(players)
		time.Sleep(time.Duration(rand.Intn(50)) * time.Microsecond)
	}

	s.Len(sess.State().Players, adds)
	s.Eventually(func() bool {
		return len(sess.State().Players) == adds
	}, waitFor, tick)
	s.Eventually(func() bool {
		var stored []entities.Player
		return json.Unmarshal(s.store.Get(replication.PlayersPath(s.roomID)), &stored) == nil && len(stored) == adds
	}, waitFor, tick)
}
