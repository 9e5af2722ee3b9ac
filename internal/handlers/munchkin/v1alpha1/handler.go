package v1alpha1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

// Request fields read by this transport in addition to the intent
const (
	FieldRoom = "room"
	FieldLang = "lang"
)

// Rooms hands out the live session of a room. *session.Registry satisfies it.
type Rooms interface {
	Acquire(ctx context.Context, entry *url.URL) (*session.Session, func(), error)
}

// HandlerConfig holds dependencies for the room handler
type HandlerConfig struct {
	Rooms  Rooms
	Router *intent.Router
	Bus    events.EventBus
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
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
	return vb.Build()
}

// Handler implements RoomServiceServer
type Handler struct {
	rooms  Rooms
	router *intent.Router
	bus    events.EventBus
}

// NewHandler creates a new room handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		rooms:  cfg.Rooms,
		router: cfg.Router,
		bus:    cfg.Bus,
	}, nil
}

// Dispatch runs one intent. The request is the intent JSON plus "room".
func (h *Handler) Dispatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	roomID := stringField(req, FieldRoom)
	if roomID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("room is required"))
	}

	raw, err := protojson.Marshal(req)
	if err != nil {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unreadable request: %v", err))
	}
	in, err := intent.Decode(raw)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	sess, release, err := h.rooms.Acquire(ctx, roomURL(roomID))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	defer release()

	result, err := h.router.Dispatch(ctx, sess, i18n.Normalize(stringField(req, FieldLang)), in)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := toStruct(result)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// Watch streams a state view on every snapshot and every effect played in
// the room, each tagged with "type"
func (h *Handler) Watch(req *structpb.Struct, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	roomID := stringField(req, FieldRoom)
	if roomID == "" {
		return errors.ToGRPCError(errors.InvalidArgument("room is required"))
	}

	ctx := stream.Context()
	sess, release, err := h.rooms.Acquire(ctx, roomURL(roomID))
	if err != nil {
		return errors.ToGRPCError(err)
	}
	defer release()

	updates, stopUpdates := sess.Observe()
	defer stopUpdates()

	effects := make(chan cues.Effect, 16)
	stopEffects := cues.Subscribe(h.bus, sess.RoomID(), func(effect cues.Effect) {
		select {
		case effects <- effect:
		default:
			slog.Debug("Dropping effect for slow watcher", "room_id", roomID, "cue", effect.Cue)
		}
	})
	defer stopEffects()

	slog.Info("Watch started", "room_id", roomID)
	defer slog.Info("Watch ended", "room_id", roomID)

	if err := sendFrame(stream, "state", intent.NewView(sess.RoomID(), sess.State())); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return errors.ToGRPCError(errors.Unavailable("room closed"))
			}
			if err := sendFrame(stream, "state", intent.NewView(update.RoomID, update.State)); err != nil {
				return err
			}
		case effect := <-effects:
			if err := sendFrame(stream, "effect", effect); err != nil {
				return err
			}
		}
	}
}

func sendFrame(stream grpc.ServerStreamingServer[structpb.Struct], frameType string, body any) error {
	msg, err := toStruct(body)
	if err != nil {
		return errors.ToGRPCError(err)
	}
	msg.Fields["type"] = structpb.NewStringValue(frameType)
	return stream.Send(msg)
}

func roomURL(roomID string) *url.URL {
	return &url.URL{Path: "/", RawQuery: url.Values{session.RoomParam: {roomID}}.Encode()}
}

func stringField(req *structpb.Struct, name string) string {
	if req == nil {
		return ""
	}
	return req.GetFields()[name].GetStringValue()
}

// toStruct converts any JSON-encodable value into a Struct
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	if out.Fields == nil {
		out.Fields = map[string]*structpb.Value{}
	}
	return out, nil
}
