// Package intent decodes client intents and routes them to the game
// orchestrator. Browser and gRPC transports share it.
package intent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/munchkin-api/internal/engine"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
	"github.com/KirkDiggler/munchkin-api/internal/orchestrators/game"
)

// Intent names as sent by clients
const (
	AddPlayer          = "addPlayer"
	UpdatePlayer       = "updatePlayer"
	AdjustLevel        = "adjustLevel"
	AdjustGear         = "adjustGear"
	DeletePlayer       = "deletePlayer"
	ResetGame          = "resetGame"
	Undo               = "undo"
	ToggleBattleMode   = "toggleBattleMode"
	ToggleBattlePlayer = "toggleBattlePlayer"
	AdjustMonsterLevel = "adjustMonsterLevel"
	AdjustMonsterBonus = "adjustMonsterBonus"
	AdjustPartyBonus   = "adjustPartyBonus"
	RollEscape         = "rollEscape"
	InviteLink         = "inviteLink"
)

// Request is one intent frame. Fields not used by an intent are ignored.
type Request struct {
	Type      string                `json:"type"`
	Lang      string                `json:"lang,omitempty"`
	SuperMode bool                  `json:"superMode,omitempty"`
	Confirmed bool                  `json:"confirmed,omitempty"`
	PlayerID  string                `json:"playerId,omitempty"`
	Delta     int                   `json:"delta,omitempty"`
	Patch     *entities.PlayerPatch `json:"patch,omitempty"`
}

// Result answers one intent
type Result struct {
	Intent   string               `json:"intent"`
	Applied  bool                 `json:"applied"`
	Player   *entities.Player     `json:"player,omitempty"`
	ShareURL string               `json:"shareUrl,omitempty"`
	Escape   *engine.EscapeResult `json:"escape,omitempty"`
}

// Decode parses an intent frame
func Decode(raw []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, errors.InvalidArgumentf("malformed intent: %v", err)
	}
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		return nil, errors.InvalidArgument("intent type is required")
	}
	return &req, nil
}

// Config holds the dependencies for the router
type Config struct {
	Game game.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Game == nil {
		vb.RequiredField("Game")
	}
	return vb.Build()
}

// Router turns decoded intents into orchestrator calls
type Router struct {
	game game.Service
}

// NewRouter creates a router
func NewRouter(cfg *Config) (*Router, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Router{game: cfg.Game}, nil
}

// Dispatch runs req against room. lang is the caller's language, used when
// the request does not name a supported one.
func (r *Router) Dispatch(ctx context.Context, room game.Room, lang entities.Language, req *Request) (*Result, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}
	if parsed, ok := i18n.ParseLanguage(req.Lang); ok {
		lang = parsed
	}

	scope := game.Scope{Room: room, Language: lang, SuperMode: req.SuperMode}
	result, err := r.route(ctx, scope, req)
	if err != nil {
		var roomID string
		if room != nil {
			roomID = room.RoomID()
		}
		slog.Debug("Intent rejected",
			"intent", req.Type,
			"room_id", roomID,
			"error", err)
		var tagged *errors.Error
		if errors.As(err, &tagged) {
			return nil, tagged.WithIntent(req.Type)
		}
		return nil, errors.Wrap(err, "intent failed").WithIntent(req.Type)
	}

	result.Intent = req.Type
	return result, nil
}

func (r *Router) route(ctx context.Context, scope game.Scope, req *Request) (*Result, error) {
	switch req.Type {
	case AddPlayer:
		out, err := r.game.AddPlayer(ctx, &game.AddPlayerInput{Scope: scope})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: true, Player: out.Player}, nil

	case UpdatePlayer:
		if req.Patch == nil || req.Patch.IsEmpty() {
			return nil, errors.InvalidArgument("patch is required")
		}
		return playerResult(r.game.UpdatePlayer(ctx, &game.UpdatePlayerInput{
			Scope:    scope,
			PlayerID: req.PlayerID,
			Patch:    *req.Patch,
		}))

	case AdjustLevel:
		return playerResult(r.game.AdjustLevel(ctx, &game.AdjustLevelInput{
			Scope:    scope,
			PlayerID: req.PlayerID,
			Delta:    req.Delta,
		}))

	case AdjustGear:
		return playerResult(r.game.AdjustGear(ctx, &game.AdjustGearInput{
			Scope:    scope,
			PlayerID: req.PlayerID,
			Delta:    req.Delta,
		}))

	case DeletePlayer:
		out, err := r.game.DeletePlayer(ctx, &game.DeletePlayerInput{
			Scope:     scope,
			PlayerID:  req.PlayerID,
			Confirmer: game.Confirmed(req.Confirmed),
		})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: out.Applied}, nil

	case ResetGame:
		out, err := r.game.ResetGame(ctx, &game.ResetGameInput{
			Scope:     scope,
			Confirmer: game.Confirmed(req.Confirmed),
		})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: out.Applied}, nil

	case Undo:
		out, err := r.game.Undo(ctx, &game.UndoInput{Scope: scope})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: out.Applied}, nil

	case ToggleBattleMode:
		if _, err := r.game.ToggleBattleMode(ctx, &game.ToggleBattleModeInput{Scope: scope}); err != nil {
			return nil, err
		}
		return &Result{Applied: true}, nil

	case ToggleBattlePlayer:
		if _, err := r.game.ToggleBattlePlayer(ctx, &game.ToggleBattlePlayerInput{Scope: scope, PlayerID: req.PlayerID}); err != nil {
			return nil, err
		}
		return &Result{Applied: true}, nil

	case AdjustMonsterLevel:
		if _, err := r.game.AdjustMonsterLevel(ctx, &game.AdjustMonsterLevelInput{Scope: scope, Delta: req.Delta}); err != nil {
			return nil, err
		}
		return &Result{Applied: true}, nil

	case AdjustMonsterBonus:
		if _, err := r.game.AdjustMonsterBonus(ctx, &game.AdjustMonsterBonusInput{Scope: scope, Delta: req.Delta}); err != nil {
			return nil, err
		}
		return &Result{Applied: true}, nil

	case AdjustPartyBonus:
		out, err := r.game.AdjustPartyBonus(ctx, &game.AdjustPartyBonusInput{Scope: scope, Delta: req.Delta})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: out.Applied}, nil

	case RollEscape:
		out, err := r.game.RollEscape(ctx, &game.RollEscapeInput{Scope: scope, PlayerID: req.PlayerID})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: true, Escape: out.Result}, nil

	case InviteLink:
		out, err := r.game.InviteLink(ctx, &game.InviteLinkInput{Scope: scope})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: true, ShareURL: out.URL}, nil

	default:
		return nil, errors.Unimplementedf("unknown intent %q", req.Type)
	}
}

func playerResult(out *game.UpdatePlayerOutput, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	return &Result{Applied: out.Applied, Player: out.Player}, nil
}
