package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	evolutionmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution/mock"
	navigationmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/navigation/mock"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
	regionmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/region/mock"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

// GRPCTestSuite drives the handler through a real server and client over bufconn
type GRPCTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRegion    *regionmock.MockService
	mockEvolution *evolutionmock.MockService
	server        *grpc.Server
	conn          *grpc.ClientConn
	client        pokedexv1alpha1.PokedexServiceClient
}

func TestGRPCTestSuite(t *testing.T) {
	suite.Run(t, new(GRPCTestSuite))
}

func (s *GRPCTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRegion = regionmock.NewMockService(s.ctrl)
	s.mockEvolution = evolutionmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RegionService:     s.mockRegion,
		EvolutionService:  s.mockEvolution,
		NavigationService: navigationmock.NewMockService(s.ctrl),
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	pokedexv1alpha1.RegisterPokedexServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = pokedexv1alpha1.NewPokedexServiceClient(s.conn)
}

func (s *GRPCTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *GRPCTestSuite) TestListRegionsRoundTrip() {
	s.mockRegion.EXPECT().ListRegions(gomock.Any()).Return(&region.ListRegionsOutput{
		Regions: regions.Default().List(),
	}, nil)

	resp, err := s.client.ListRegions(context.Background(), &pokedexv1alpha1.ListRegionsRequest{})

	s.Require().NoError(err)
	s.Require().Len(resp.Regions, 9)
	s.Equal(&pokedexv1alpha1.Region{Name: "Kanto", MinId: 1, MaxId: 151}, resp.Regions[0])
	s.Equal("Paldea", resp.Regions[8].Name)
}

func (s *GRPCTestSuite) TestGetPokemonRoundTrip() {
	s.mockEvolution.EXPECT().
		OpenDetail(gomock.Any(), &evolution.OpenDetailInput{ID: 1}).
		Return(&evolution.OpenDetailOutput{
			Pokemon:  testutils.Bulbasaur(),
			Sequence: pokemon.EvolutionSequence{"bulbasaur", "ivysaur", "venusaur"},
		}, nil)

	resp, err := s.client.GetPokemon(context.Background(), &pokedexv1alpha1.GetPokemonRequest{Id: 1})

	s.Require().NoError(err)
	s.Equal([]string{"grass", "poison"}, resp.Pokemon.Types)
	s.Equal([]string{"bulbasaur", "ivysaur", "venusaur"}, resp.EvolutionChain)
}

func (s *GRPCTestSuite) TestErrorDetailsSurviveTransport() {
	s.mockRegion.EXPECT().
		FetchRegion(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("unknown region \"Kantoo\"").
			WithFailure(errors.FailureConfig).
			WithMeta("suggestion", "Kanto"))

	_, err := s.client.GetRegion(context.Background(), &pokedexv1alpha1.GetRegionRequest{Name: "Kantoo"})

	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	restored := errors.FromGRPCError(err)
	s.True(errors.IsConfigFailure(restored))
	s.Equal("Kanto", errors.GetMeta(restored)["suggestion"])
}
