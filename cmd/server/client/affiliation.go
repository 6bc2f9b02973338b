package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
)

var joinCmd = &cobra.Command{
	Use:   "join [patron]",
	Short: "Join a patron",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.MethodJoin, map[string]any{"patron": args[0]})
	},
}

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Abandon the current patron",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.MethodLeave, nil)
	},
}
