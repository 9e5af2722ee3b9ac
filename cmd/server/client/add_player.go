package client

import (
	"github.com/spf13/cobra"
)

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Add a default player to the room",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return dispatch(map[string]any{"type": "addPlayer"})
	},
}
