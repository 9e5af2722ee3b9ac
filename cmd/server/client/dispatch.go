package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/munchkin/v1alpha1"
)

var (
	playerID  string
	delta     int
	superMode bool
	confirmed bool
	patch     string
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [intent]",
	Short: "Send any intent to a room",
	Long: `Send one intent and print the result. Examples:

  dispatch addPlayer --room table1
  dispatch adjustGear --room table1 --player p1 --delta 2
  dispatch updatePlayer --room table1 --player p1 --patch '{"class":"Wizard"}'
  dispatch resetGame --room table1 --confirm`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		fields := map[string]any{"type": args[0]}
		if playerID != "" {
			fields["playerId"] = playerID
		}
		if delta != 0 {
			fields["delta"] = delta
		}
		if superMode {
			fields["superMode"] = true
		}
		if confirmed {
			fields["confirmed"] = true
		}
		if patch != "" {
			var p map[string]any
			if err := json.Unmarshal([]byte(patch), &p); err != nil {
				return fmt.Errorf("invalid --patch: %w", err)
			}
			fields["patch"] = p
		}
		return dispatch(fields)
	},
}

func init() {
	dispatchCmd.Flags().StringVar(&playerID, "player", "", "Target player id")
	dispatchCmd.Flags().IntVar(&delta, "delta", 0, "Signed adjustment")
	dispatchCmd.Flags().BoolVar(&superMode, "super", false, "Play to level 20")
	dispatchCmd.Flags().BoolVar(&confirmed, "confirm", false, "Confirm destructive intents")
	dispatchCmd.Flags().StringVar(&patch, "patch", "", "Player patch as JSON")
}

// buildRequest adds the room and language to an intent
func buildRequest(room, language string, fields map[string]any) (*structpb.Struct, error) {
	all := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		all[k] = v
	}
	all[v1alpha1.FieldRoom] = room
	if language != "" {
		all[v1alpha1.FieldLang] = language
	}
	return structpb.NewStruct(all)
}

func dispatch(fields map[string]any) error {
	client, cleanup, err := createRoomClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := buildRequest(roomID, lang, fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Dispatch(ctx, req)
	if err != nil {
		return describeError(fmt.Sprint(fields["type"]), err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// describeError turns a status error back into a message with its details
func describeError(intentType string, err error) error {
	converted := errors.FromGRPCError(err)
	if meta := errors.GetMeta(converted); len(meta) > 0 {
		return fmt.Errorf("%s rejected (%s): %s %v", intentType, errors.GetCode(converted), errors.GetMessage(converted), meta)
	}
	return fmt.Errorf("%s rejected (%s): %s", intentType, errors.GetCode(converted), errors.GetMessage(converted))
}
