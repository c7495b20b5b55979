package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
)

var pokemonJSONOutput bool

var pokemonCmd = &cobra.Command{
	Use:   "pokemon [id|name]",
	Short: "Show the detail view for a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runPokemon,
}

func init() {
	pokemonCmd.Flags().BoolVar(&pokemonJSONOutput, "json", false, "Output as JSON")
}

// parseTarget reads a national dex number or falls back to a name
func parseTarget(arg string) (int32, string) {
	if id, err := strconv.ParseInt(arg, 10, 32); err == nil {
		return int32(id), ""
	}
	return 0, arg
}

func runPokemon(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	id, name := parseTarget(args[0])
	resp, err := client.GetPokemon(ctx, &pokedexv1alpha1.GetPokemonRequest{Id: id, Name: name})
	if err != nil {
		return describeError("failed to get pokemon", err)
	}

	if pokemonJSONOutput {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	renderDetail(cmd.OutOrStdout(), resp.Pokemon, resp.EvolutionChain)
	return nil
}
