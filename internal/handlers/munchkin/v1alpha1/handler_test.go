package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/munchkin/v1alpha1"
	"github.com/KirkDiggler/munchkin-api/internal/orchestrators/game"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/clock"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	"github.com/KirkDiggler/munchkin-api/internal/replication"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

const bufSize = 1 << 20

type HandlerTestSuite struct {
	suite.Suite
	ctx      context.Context
	cancel   context.CancelFunc
	registry *session.Registry
	server   *grpc.Server
	conn     *grpc.ClientConn
	client   v1alpha1.RoomServiceClient
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)

	var err error
	s.registry, err = session.NewRegistry(&session.RegistryConfig{
		Client:  replication.NewMemoryClient(),
		RoomIDs: idgen.NewRoomIDs(),
	})
	s.Require().NoError(err)

	bus := events.NewBus()
	sink, err := cues.NewBusSink(&cues.BusSinkConfig{Bus: bus})
	s.Require().NoError(err)

	svc, err := game.NewOrchestrator(&game.Config{
		Cues:      sink,
		Clock:     clock.New(),
		PlayerIDs: idgen.NewSequential("p"),
		LogIDs:    idgen.NewSequential("l"),
		Roller:    dice.DefaultRoller,
	})
	s.Require().NoError(err)

	router, err := intent.NewRouter(&intent.Config{Game: svc})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Rooms:  s.registry,
		Router: router,
		Bus:    bus,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterRoomServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(lis) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewRoomServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.registry.Close()
	s.cancel()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestDispatchAddsPlayer() {
	resp, err := s.client.Dispatch(s.ctx, s.request(map[string]any{
		"room": "dungeon",
		"type": "addPlayer",
		"lang": "pl",
	}))
	s.Require().NoError(err)

	fields := resp.AsMap()
	s.Equal("addPlayer", fields["intent"])
	s.Equal(true, fields["applied"])
	s.Equal("Gracz 1", fields["player"].(map[string]any)["name"])
}

func (s *HandlerTestSuite) TestDispatchPersistsAcrossCalls() {
	for i := 0; i < 2; i++ {
		_, err := s.client.Dispatch(s.ctx, s.request(map[string]any{"room": "dungeon", "type": "addPlayer"}))
		s.Require().NoError(err)
	}

	resp, err := s.client.Dispatch(s.ctx, s.request(map[string]any{
		"room":     "dungeon",
		"type":     "adjustLevel",
		"playerId": "p2",
		"delta":    3,
	}))
	s.Require().NoError(err)

	player := resp.AsMap()["player"].(map[string]any)
	s.Equal("Player 2", player["name"])
	s.Equal(float64(4), player["level"])
}

func (s *HandlerTestSuite) TestDispatchErrors() {
	_, err := s.client.Dispatch(s.ctx, s.request(map[string]any{"type": "addPlayer"}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.Dispatch(s.ctx, s.request(map[string]any{"room": "dungeon", "type": "summonDragon"}))
	s.Equal(codes.Unimplemented, status.Code(err))

	_, err = s.client.Dispatch(s.ctx, s.request(map[string]any{"room": "bad/room", "type": "undo"}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.Dispatch(s.ctx, s.request(map[string]any{"room": "dungeon", "type": "rollEscape", "playerId": "ghost"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestWatchStreamsStateAndEffects() {
	stream, err := s.client.Watch(s.ctx, s.request(map[string]any{"room": "arena"}))
	s.Require().NoError(err)

	first, err := stream.Recv()
	s.Require().NoError(err)
	s.Equal("state", first.AsMap()["type"])
	s.Equal("arena", first.AsMap()["roomId"])
	s.Empty(first.AsMap()["players"])

	_, err = s.client.Dispatch(s.ctx, s.request(map[string]any{"room": "arena", "type": "addPlayer"}))
	s.Require().NoError(err)

	var sawPlayer, sawEffect bool
	for !(sawPlayer && sawEffect) {
		msg, err := stream.Recv()
		s.Require().NoError(err)
		fields := msg.AsMap()
		switch fields["type"] {
		case "state":
			if players, ok := fields["players"].([]any); ok && len(players) == 1 {
				sawPlayer = true
			}
		case "effect":
			s.Equal(string(cues.CueClick), fields["cue"])
			sawEffect = true
		}
	}
}

func (s *HandlerTestSuite) TestWatchNeedsRoom() {
	stream, err := s.client.Watch(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)

	_, err = stream.Recv()
	s.Equal(codes.InvalidArgument, status.Code(err))
}
