package client

import (
	"context"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions",
	Args:  cobra.NoArgs,
	RunE:  runRegions,
}

func runRegions(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.ListRegions(ctx, &pokedexv1alpha1.ListRegionsRequest{})
	if err != nil {
		return describeError("failed to list regions", err)
	}

	renderRegions(cmd.OutOrStdout(), resp.Regions)
	return nil
}
