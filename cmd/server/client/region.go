package client

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
)

var (
	regionSettled    bool
	regionJSONOutput bool
)

var regionCmd = &cobra.Command{
	Use:   "region [name]",
	Short: "List every pokemon of a region",
	Long: `Fetch every pokemon of a region. By default any failed lookup fails the
whole region; --settled lists failures in place instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegion,
}

func init() {
	regionCmd.Flags().BoolVar(&regionSettled, "settled", false, "Show per-pokemon failures instead of failing")
	regionCmd.Flags().BoolVar(&regionJSONOutput, "json", false, "Output as JSON")
}

func runRegion(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	slog.Debug("Requesting region", "region", args[0], "server", serverAddr, "settled", regionSettled)

	req := &pokedexv1alpha1.GetRegionRequest{Name: args[0]}
	out := cmd.OutOrStdout()

	if regionSettled {
		resp, err := client.GetRegionSettled(ctx, req)
		if err != nil {
			return describeError("failed to get region", err)
		}
		if regionJSONOutput {
			return writeJSON(out, resp)
		}
		renderSettled(out, resp)
		return nil
	}

	resp, err := client.GetRegion(ctx, req)
	if err != nil {
		return describeError("failed to get region", err)
	}
	if regionJSONOutput {
		return writeJSON(out, resp)
	}
	renderRegion(out, resp.Region, resp.Pokemon)
	return nil
}
