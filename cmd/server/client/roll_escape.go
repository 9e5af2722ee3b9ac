package client

import (
	"github.com/spf13/cobra"
)

var rollEscapeCmd = &cobra.Command{
	Use:   "roll-escape [player-id]",
	Short: "Roll a d6 for a player running away",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return dispatch(map[string]any{
			"type":     "rollEscape",
			"playerId": args[0],
		})
	},
}
