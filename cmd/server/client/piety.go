package client

import (
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
)

var (
	denominator int
	scaled      bool
	penance     int
	forced      bool
)

var gainPietyCmd = &cobra.Command{
	Use:   "gain-piety [amount]",
	Short: "Credit piety to the active patron",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return call(v1alpha1.MethodGainPiety, map[string]any{
			"amount":      amount,
			"denominator": denominator,
			"scale":       scaled,
		})
	},
}

var losePietyCmd = &cobra.Command{
	Use:   "lose-piety [amount]",
	Short: "Remove piety from the active patron",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return call(v1alpha1.MethodLosePiety, map[string]any{"amount": amount})
	},
}

var dockPietyCmd = &cobra.Command{
	Use:   "dock-piety [loss]",
	Short: "Punish a transgression against the active patron",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		loss, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return call(v1alpha1.MethodDockPiety, map[string]any{"piety_loss": loss, "penance": penance})
	},
}

var penanceCmd = &cobra.Command{
	Use:   "penance [patron] [amount]",
	Short: "Add penance toward a patron",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		return call(v1alpha1.MethodIncurPenance, map[string]any{"patron": args[0], "amount": amount})
	},
}

var giftCmd = &cobra.Command{
	Use:   "gift",
	Short: "Ask the active patron for a gift",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.MethodGrantGift, map[string]any{"forced": forced})
	},
}

func init() {
	gainPietyCmd.Flags().IntVar(&denominator, "denominator", 1, "Divide the gain by this, rounding randomly")
	gainPietyCmd.Flags().BoolVar(&scaled, "scale", false, "Apply faith scaling")
	dockPietyCmd.Flags().IntVar(&penance, "penance", 0, "Penance to add alongside the piety loss")
	giftCmd.Flags().BoolVar(&forced, "forced", false, "Skip the timeout and chance checks")
}
