// Package main is the entry point for the Munchkin room server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/munchkin-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "munchkin-api",
	Short: "Munchkin scorekeeping server",
	Long: `Munchkin API keeps shared scoreboards for Munchkin tables. Browsers join a
room over WebSocket and tools talk to the same rooms over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
