// Package main is the entry point for the pokedex gRPC server and its client commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokedex-api",
	Short: "Pokedex gRPC server",
	Long: `Pokedex serves region browsing, creature detail and evolution chains
backed by live PokeAPI lookups, plus server-side navigation sessions.`,
	SilenceUsage: true,
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
