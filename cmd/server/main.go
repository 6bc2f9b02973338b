// Package main is the entry point for the pantheon server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-pantheon/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pantheon",
	Short: "Pantheon favor service",
	Long:  `Pantheon tracks a player's standing with the gods: piety, penance, gifts, and conversion.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
