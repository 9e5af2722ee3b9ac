package intent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/munchkin-api/internal/engine"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
	"github.com/KirkDiggler/munchkin-api/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/munchkin-api/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGame *gamemock.MockService
	mockRoom *gamemock.MockRoom
	router   *intent.Router
	ctx      context.Context
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGame = gamemock.NewMockService(s.ctrl)
	s.mockRoom = gamemock.NewMockRoom(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.router, err = intent.NewRouter(&intent.Config{Game: s.mockGame})
	s.Require().NoError(err)

	s.mockRoom.EXPECT().RoomID().Return("room42").AnyTimes()
}

func (s *RouterTestSuite) decode(raw string) *intent.Request {
	req, err := intent.Decode([]byte(raw))
	s.Require().NoError(err)
	return req
}

func (s *RouterTestSuite) TestNewRouterValidation() {
	_, err := intent.NewRouter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = intent.NewRouter(&intent.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RouterTestSuite) TestDecodeRejectsGarbage() {
	_, err := intent.Decode([]byte(`{"type":`))
	s.True(errors.IsInvalidArgument(err))

	_, err = intent.Decode([]byte(`{"delta":1}`))
	s.True(errors.IsInvalidArgument(err))
}

func (s *RouterTestSuite) TestAddPlayerUsesRequestLanguage() {
	s.mockGame.EXPECT().
		AddPlayer(s.ctx, &game.AddPlayerInput{Scope: game.Scope{
			Room:      s.mockRoom,
			Language:  entities.LanguagePolish,
			SuperMode: true,
		}}).
		Return(&game.AddPlayerOutput{Player: &entities.Player{ID: "p1", Name: "Gracz 1"}}, nil)

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish,
		s.decode(`{"type":"addPlayer","lang":"pl-PL","superMode":true}`))
	s.Require().NoError(err)

	s.Equal(intent.AddPlayer, result.Intent)
	s.True(result.Applied)
	s.Equal("Gracz 1", result.Player.Name)
}

func (s *RouterTestSuite) TestUnknownLanguageKeepsCallerLanguage() {
	s.mockGame.EXPECT().
		Undo(s.ctx, &game.UndoInput{Scope: game.Scope{Room: s.mockRoom, Language: entities.LanguagePolish}}).
		Return(&game.UndoOutput{}, nil)

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguagePolish, s.decode(`{"type":"undo","lang":"xx"}`))
	s.Require().NoError(err)
	s.False(result.Applied)
}

func (s *RouterTestSuite) TestUpdatePlayerCarriesPatch() {
	level := 4
	s.mockGame.EXPECT().
		UpdatePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.UpdatePlayerInput) (*game.UpdatePlayerOutput, error) {
			s.Equal("a", input.PlayerID)
			s.Equal(&level, input.Patch.Level)
			s.Nil(input.Patch.Name)
			return &game.UpdatePlayerOutput{Applied: true, Player: &entities.Player{ID: "a", Level: 4}}, nil
		})

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish,
		s.decode(`{"type":"updatePlayer","playerId":"a","patch":{"level":4}}`))
	s.Require().NoError(err)
	s.Equal(4, result.Player.Level)
}

func (s *RouterTestSuite) TestUpdatePlayerNeedsPatch() {
	_, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish,
		s.decode(`{"type":"updatePlayer","playerId":"a","patch":{}}`))
	s.True(errors.IsInvalidArgument(err))
	s.Equal(intent.UpdatePlayer, errors.GetMeta(err)[errors.MetaIntent])
}

func (s *RouterTestSuite) TestDestructiveIntentsPassConfirmation() {
	s.mockGame.EXPECT().
		DeletePlayer(s.ctx, &game.DeletePlayerInput{
			Scope:     game.Scope{Room: s.mockRoom, Language: entities.LanguageEnglish},
			PlayerID:  "a",
			Confirmer: game.Confirmed(true),
		}).
		Return(&game.DeletePlayerOutput{Applied: true}, nil)
	s.mockGame.EXPECT().
		ResetGame(s.ctx, &game.ResetGameInput{
			Scope:     game.Scope{Room: s.mockRoom, Language: entities.LanguageEnglish},
			Confirmer: game.Confirmed(false),
		}).
		Return(&game.ResetGameOutput{}, nil)

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish,
		s.decode(`{"type":"deletePlayer","playerId":"a","confirmed":true}`))
	s.Require().NoError(err)
	s.True(result.Applied)

	result, err = s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"resetGame"}`))
	s.Require().NoError(err)
	s.False(result.Applied)
}

func (s *RouterTestSuite) TestBattleIntents() {
	scope := game.Scope{Room: s.mockRoom, Language: entities.LanguageEnglish}
	s.mockGame.EXPECT().ToggleBattleMode(s.ctx, &game.ToggleBattleModeInput{Scope: scope}).Return(&game.ToggleBattleModeOutput{}, nil)
	s.mockGame.EXPECT().ToggleBattlePlayer(s.ctx, &game.ToggleBattlePlayerInput{Scope: scope, PlayerID: "b"}).Return(&game.ToggleBattlePlayerOutput{}, nil)
	s.mockGame.EXPECT().AdjustMonsterLevel(s.ctx, &game.AdjustMonsterLevelInput{Scope: scope, Delta: 2}).Return(&game.AdjustMonsterLevelOutput{}, nil)
	s.mockGame.EXPECT().AdjustMonsterBonus(s.ctx, &game.AdjustMonsterBonusInput{Scope: scope, Delta: -3}).Return(&game.AdjustMonsterBonusOutput{}, nil)
	s.mockGame.EXPECT().AdjustPartyBonus(s.ctx, &game.AdjustPartyBonusInput{Scope: scope, Delta: 5}).Return(&game.AdjustPartyBonusOutput{}, nil)

	for _, raw := range []string{
		`{"type":"toggleBattleMode"}`,
		`{"type":"toggleBattlePlayer","playerId":"b"}`,
		`{"type":"adjustMonsterLevel","delta":2}`,
		`{"type":"adjustMonsterBonus","delta":-3}`,
	} {
		result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(raw))
		s.Require().NoError(err, raw)
		s.True(result.Applied, raw)
	}

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"adjustPartyBonus","delta":5}`))
	s.Require().NoError(err)
	s.False(result.Applied)
}

func (s *RouterTestSuite) TestRollEscapeAndInviteLink() {
	s.mockGame.EXPECT().RollEscape(s.ctx, gomock.Any()).
		Return(&game.RollEscapeOutput{PlayerID: "a", Result: &engine.EscapeResult{Roll: 6, Escaped: true}}, nil)
	s.mockGame.EXPECT().InviteLink(s.ctx, gomock.Any()).
		Return(&game.InviteLinkOutput{URL: "/?room=room42"}, nil)

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"rollEscape","playerId":"a"}`))
	s.Require().NoError(err)
	s.Equal(6, result.Escape.Roll)

	result, err = s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"inviteLink"}`))
	s.Require().NoError(err)
	s.Equal("/?room=room42", result.ShareURL)
}

func (s *RouterTestSuite) TestAdjustIntents() {
	s.mockGame.EXPECT().AdjustLevel(s.ctx, gomock.Any()).Return(&game.UpdatePlayerOutput{}, nil)
	s.mockGame.EXPECT().AdjustGear(s.ctx, gomock.Any()).Return(&game.UpdatePlayerOutput{Applied: true}, nil)

	result, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"adjustLevel","playerId":"gone","delta":1}`))
	s.Require().NoError(err)
	s.False(result.Applied)

	result, err = s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"adjustGear","playerId":"a","delta":1}`))
	s.Require().NoError(err)
	s.True(result.Applied)
}

func (s *RouterTestSuite) TestUnknownIntent() {
	_, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"summonDragon"}`))
	s.True(errors.IsUnimplemented(err))
}

func (s *RouterTestSuite) TestOrchestratorErrorsKeepTheirCode() {
	s.mockGame.EXPECT().RollEscape(s.ctx, gomock.Any()).Return(nil, errors.NotFound("player gone"))

	_, err := s.router.Dispatch(s.ctx, s.mockRoom, entities.LanguageEnglish, s.decode(`{"type":"rollEscape","playerId":"x"}`))
	s.True(errors.IsNotFound(err))
	s.Equal("player gone", errors.GetMessage(err))
}

func (s *RouterTestSuite) TestNewView() {
	state := session.DefaultRoomState()
	state.Players = []entities.Player{{ID: "a", Level: 3, Gear: 2}}
	state.Battle.Active = true
	state.Battle.SelectedPlayerIDs = []string{"a"}
	state.Battle.MonsterLevel = 6

	view := intent.NewView("room42", state)
	s.Equal("room42", view.RoomID)
	s.Equal(5, view.Summary.PartyStrength)
	s.Equal(6, view.Summary.MonsterStrength)
	s.Equal(engine.OutcomeMonsterWins, view.Summary.Outcome)
}
