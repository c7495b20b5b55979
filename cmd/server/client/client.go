// Package client provides the command-line client for the Pokedex gRPC service
package client

import (
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Pokedex API",
	Long:  `Client commands render the Pokedex screens as text by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Request timeout")

	ClientCmd.AddCommand(regionsCmd)
	ClientCmd.AddCommand(regionCmd)
	ClientCmd.AddCommand(pokemonCmd)
	ClientCmd.AddCommand(evolutionCmd)
	ClientCmd.AddCommand(browseCmd)
	ClientCmd.AddCommand(healthCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to connect to %s", serverAddr)
	}

	return conn, nil
}

// createPokedexClient creates a pokedex service client
func createPokedexClient() (pokedexv1alpha1.PokedexServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return pokedexv1alpha1.NewPokedexServiceClient(conn), cleanup, nil
}

// describeError restores the service error carried in a gRPC status
func describeError(action string, err error) error {
	return errors.Wrap(errors.FromGRPCError(err), action)
}
