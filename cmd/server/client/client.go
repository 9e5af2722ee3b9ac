// Package client provides test commands for the Munchkin room service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/munchkin-api/internal/handlers/munchkin/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Room flags
	roomID string
	lang   string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Munchkin API",
	Long:  `Client commands let you drive a room by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&roomID, "room", "", "Room id")
	ClientCmd.PersistentFlags().StringVar(&lang, "lang", "", "Language for log messages (en or pl)")
	_ = ClientCmd.MarkPersistentFlagRequired("room")

	ClientCmd.AddCommand(dispatchCmd)
	ClientCmd.AddCommand(addPlayerCmd)
	ClientCmd.AddCommand(levelCmd)
	ClientCmd.AddCommand(rollEscapeCmd)
	ClientCmd.AddCommand(watchCmd)
}

// createRoomClient creates a room service client
func createRoomClient() (v1alpha1.RoomServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewRoomServiceClient(conn), cleanup, nil
}
