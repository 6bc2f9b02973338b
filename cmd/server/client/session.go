package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
)

var (
	species string
	class   string
	gold    int
	xpLevel int
	undead  bool
	orc     bool
)

var startSessionCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Start a new favor session",
	Long: `Start a new favor session. The server generates an ID unless --session is given.

  start-session --species orc --class fighter --gold 200`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.MethodStartSession, map[string]any{
			"species":  species,
			"class":    class,
			"gold":     gold,
			"xp_level": xpLevel,
			"undead":   undead,
			"orc":      orc,
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session's standing",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.MethodGetStatus, nil)
	},
}

func init() {
	startSessionCmd.Flags().StringVar(&species, "species", "human", "Player species")
	startSessionCmd.Flags().StringVar(&class, "class", "", "Player class")
	startSessionCmd.Flags().IntVar(&gold, "gold", 0, "Gold carried")
	startSessionCmd.Flags().IntVar(&xpLevel, "xp-level", 1, "Experience level")
	startSessionCmd.Flags().BoolVar(&undead, "undead", false, "Player is undead")
	startSessionCmd.Flags().BoolVar(&orc, "orc", false, "Player is an orc")
}
