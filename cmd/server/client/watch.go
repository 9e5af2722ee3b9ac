package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"google.golang.org/protobuf/encoding/protojson"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow a room's scoreboard and effects",
	Long:  `Print a line for every state snapshot and effect until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  watch,
}

func watch(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createRoomClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	req, err := buildRequest(roomID, "", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	stream, err := client.Watch(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to watch room: %w", err)
	}

	fmt.Printf("Watching room %s (Ctrl+C to stop)\n", roomID)
	for {
		msg, err := stream.Recv()
		if err == io.EOF || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("watch ended: %w", err)
		}

		raw, err := protojson.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to read frame: %w", err)
		}
		fmt.Println(describeFrame(raw))
	}
}

// describeFrame renders one watch frame as a single line
func describeFrame(raw []byte) string {
	frame := gjson.ParseBytes(raw)
	switch frame.Get("type").String() {
	case "effect":
		line := fmt.Sprintf("♪ %s", frame.Get("cue").String())
		if id := frame.Get("playerId").String(); id != "" {
			line += " for " + id
		}
		return line
	case "state":
		line := fmt.Sprintf("%d players", len(frame.Get("players").Array()))
		for _, p := range frame.Get("players").Array() {
			line += fmt.Sprintf(" | %s L%d G%d", p.Get("name").String(), p.Get("level").Int(), p.Get("gear").Int())
		}
		if frame.Get("battle.active").Bool() {
			line += fmt.Sprintf(" || party %d vs monster %d (%s)",
				frame.Get("summary.partyStrength").Int(),
				frame.Get("summary.monsterStrength").Int(),
				frame.Get("summary.outcome").String())
		}
		if latest := frame.Get("logs.0.message"); latest.Exists() {
			line += " || " + latest.String()
		}
		return line
	}
	return string(raw)
}
