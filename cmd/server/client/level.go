package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level [player-id] [delta]",
	Short: "Change a player's level",
	Long: `Change a player's level by a signed amount. Examples:

  level p1 1
  level p1 -1`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be a whole number: %w", err)
		}
		return dispatch(map[string]any{
			"type":     "adjustLevel",
			"playerId": args[0],
			"delta":    d,
		})
	},
}
