package client

import (
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
)

var passTimeCmd = &cobra.Command{
	Use:   "pass-time [ticks]",
	Short: "Advance idle time",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ticks, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return call(v1alpha1.MethodPassTime, map[string]any{"ticks": ticks})
	},
}

var endTurnCmd = &cobra.Command{
	Use:   "end-turn",
	Short: "End the turn and place queued followers",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.MethodEndTurn, nil)
	},
}
