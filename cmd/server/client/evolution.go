package client

import (
	"context"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution [id|name]",
	Short: "Show a pokemon's evolution chain and every branch",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvolution,
}

func runEvolution(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	id, name := parseTarget(args[0])
	resp, err := client.GetEvolutionChain(ctx, &pokedexv1alpha1.GetEvolutionChainRequest{Id: id, Name: name})
	if err != nil {
		return describeError("failed to get evolution chain", err)
	}

	renderPaths(cmd.OutOrStdout(), resp)
	return nil
}
