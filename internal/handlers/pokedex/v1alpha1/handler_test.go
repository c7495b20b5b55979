package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	evolutionmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution/mock"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/navigation"
	navigationmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/navigation/mock"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
	regionmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/region/mock"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
	navrepo "github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

var kanto = regions.Region{Name: "Kanto", MinID: 1, MaxID: 151}

type HandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRegion     *regionmock.MockService
	mockEvolution  *evolutionmock.MockService
	mockNavigation *navigationmock.MockService
	handler        *v1alpha1.Handler
	ctx            context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRegion = regionmock.NewMockService(s.ctrl)
	s.mockEvolution = evolutionmock.NewMockService(s.ctrl)
	s.mockNavigation = navigationmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RegionService:     s.mockRegion,
		EvolutionService:  s.mockEvolution,
		NavigationService: s.mockNavigation,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) *status.Status {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
	return st
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RegionService: s.mockRegion})
	s.ErrorContains(err, "EvolutionService: is required")
	s.ErrorContains(err, "NavigationService: is required")
}

func (s *HandlerTestSuite) TestListRegions() {
	s.mockRegion.EXPECT().ListRegions(s.ctx).Return(&region.ListRegionsOutput{
		Regions: []regions.Region{kanto},
	}, nil)

	resp, err := s.handler.ListRegions(s.ctx, &pokedexv1alpha1.ListRegionsRequest{})

	s.Require().NoError(err)
	s.Equal([]*pokedexv1alpha1.Region{{Name: "Kanto", MinId: 1, MaxId: 151}}, resp.Regions)
}

func (s *HandlerTestSuite) TestGetRegion() {
	s.mockRegion.EXPECT().
		FetchRegion(s.ctx, &region.FetchRegionInput{Region: "Kanto"}).
		Return(&region.FetchRegionOutput{
			Region:  kanto,
			Pokemon: []*pokemon.Pokemon{testutils.Bulbasaur()},
		}, nil)

	resp, err := s.handler.GetRegion(s.ctx, &pokedexv1alpha1.GetRegionRequest{Name: "Kanto"})

	s.Require().NoError(err)
	s.Equal("Kanto", resp.Region.Name)
	s.Require().Len(resp.Pokemon, 1)
	s.Equal(&pokedexv1alpha1.Pokemon{
		Id:        1,
		Name:      "bulbasaur",
		Height:    7,
		Weight:    69,
		SpriteUrl: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/1.png",
		Types:     []string{"grass", "poison"},
	}, resp.Pokemon[0])
}

func (s *HandlerTestSuite) TestGetRegionErrors() {
	testCases := []struct {
		name      string
		req       *pokedexv1alpha1.GetRegionRequest
		setupMock func()
		code      codes.Code
	}{
		{
			name: "missing name",
			req:  &pokedexv1alpha1.GetRegionRequest{},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown region",
			req:  &pokedexv1alpha1.GetRegionRequest{Name: "Orre"},
			setupMock: func() {
				s.mockRegion.EXPECT().FetchRegion(s.ctx, gomock.Any()).
					Return(nil, errors.InvalidArgument("unknown region Orre").WithFailure(errors.FailureConfig))
			},
			code: codes.InvalidArgument,
		},
		{
			name: "batch failure",
			req:  &pokedexv1alpha1.GetRegionRequest{Name: "Kanto"},
			setupMock: func() {
				s.mockRegion.EXPECT().FetchRegion(s.ctx, gomock.Any()).
					Return(nil, errors.Unavailable("PokeAPI returned 503").WithFailure(errors.FailureBatch))
			},
			code: codes.Unavailable,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			_, err := s.handler.GetRegion(s.ctx, tc.req)
			s.requireCode(err, tc.code)
		})
	}
}

func (s *HandlerTestSuite) TestGetRegionSettled() {
	s.mockRegion.EXPECT().
		FetchRegionSettled(s.ctx, &region.FetchRegionInput{Region: "Kanto"}).
		Return(&region.FetchRegionSettledOutput{
			Region: kanto,
			Results: []region.Outcome{
				{ID: 1, Pokemon: testutils.Bulbasaur()},
				{ID: 2, Err: errors.NotFound("PokeAPI returned 404")},
			},
			Failed: 1,
		}, nil)

	resp, err := s.handler.GetRegionSettled(s.ctx, &pokedexv1alpha1.GetRegionRequest{Name: "Kanto"})

	s.Require().NoError(err)
	s.Equal(int32(1), resp.Failed)
	s.Require().Len(resp.Results, 2)
	s.Equal("bulbasaur", resp.Results[0].Pokemon.Name)
	s.Nil(resp.Results[0].Error)
	s.Nil(resp.Results[1].Pokemon)
	s.Equal(&pokedexv1alpha1.LookupError{Code: string(errors.CodeNotFound), Message: "PokeAPI returned 404"}, resp.Results[1].Error)
}

func (s *HandlerTestSuite) TestGetPokemon() {
	s.mockEvolution.EXPECT().
		OpenDetail(s.ctx, &evolution.OpenDetailInput{Name: "bulbasaur"}).
		Return(&evolution.OpenDetailOutput{
			Pokemon:  testutils.Bulbasaur(),
			Sequence: pokemon.EvolutionSequence{"bulbasaur", "ivysaur", "venusaur"},
		}, nil)

	resp, err := s.handler.GetPokemon(s.ctx, &pokedexv1alpha1.GetPokemonRequest{Name: "bulbasaur"})

	s.Require().NoError(err)
	s.Equal(int32(1), resp.Pokemon.Id)
	s.Equal([]string{"bulbasaur", "ivysaur", "venusaur"}, resp.EvolutionChain)
}

func (s *HandlerTestSuite) TestGetPokemonValidation() {
	_, err := s.handler.GetPokemon(s.ctx, &pokedexv1alpha1.GetPokemonRequest{})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.GetPokemon(s.ctx, &pokedexv1alpha1.GetPokemonRequest{Id: -1})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetPokemonChainFailureCarriesDetails() {
	s.mockEvolution.EXPECT().
		OpenDetail(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("species has no evolution chain").
			WithFailure(errors.FailureChain).
			WithMeta("pokemon", "gimmighoul"))

	_, err := s.handler.GetPokemon(s.ctx, &pokedexv1alpha1.GetPokemonRequest{Id: 999})

	s.requireCode(err, codes.FailedPrecondition)
	restored := errors.FromGRPCError(err)
	s.True(errors.IsChainFailure(restored))
	s.Equal("gimmighoul", errors.GetMeta(restored)["pokemon"])
}

func (s *HandlerTestSuite) TestGetEvolutionChain() {
	s.mockEvolution.EXPECT().
		OpenDetail(s.ctx, &evolution.OpenDetailInput{ID: 133, AllPaths: true}).
		Return(&evolution.OpenDetailOutput{
			Pokemon:  testutils.Pokemon(133, "eevee"),
			Sequence: pokemon.EvolutionSequence{"eevee", "vaporeon"},
			Paths:    []pokemon.EvolutionSequence{{"eevee", "vaporeon"}, {"eevee", "jolteon"}},
		}, nil)

	resp, err := s.handler.GetEvolutionChain(s.ctx, &pokedexv1alpha1.GetEvolutionChainRequest{Id: 133})

	s.Require().NoError(err)
	s.Equal([]string{"eevee", "vaporeon"}, resp.Sequence)
	s.Equal([]*pokedexv1alpha1.EvolutionPath{
		{Species: []string{"eevee", "vaporeon"}},
		{Species: []string{"eevee", "jolteon"}},
	}, resp.Paths)
}

func (s *HandlerTestSuite) session(frames ...navrepo.Frame) *navrepo.Session {
	return &navrepo.Session{
		ID:        "nav_1",
		Frames:    append([]navrepo.Frame{{Kind: navrepo.FrameRegions}}, frames...),
		ExpiresAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (s *HandlerTestSuite) TestStartSession() {
	s.mockNavigation.EXPECT().StartSession(s.ctx).Return(&navigation.StartSessionOutput{
		Session: s.session(),
		Regions: []regions.Region{kanto},
	}, nil)

	resp, err := s.handler.StartSession(s.ctx, &pokedexv1alpha1.StartSessionRequest{})

	s.Require().NoError(err)
	s.Equal(&pokedexv1alpha1.Session{
		Id:        "nav_1",
		Frames:    []*pokedexv1alpha1.Frame{{Kind: "regions"}},
		ExpiresAt: "2024-03-01T09:30:00Z",
	}, resp.Session)
	s.Len(resp.Regions, 1)
}

func (s *HandlerTestSuite) TestNavigate() {
	testCases := []struct {
		name      string
		req       *pokedexv1alpha1.NavigateRequest
		setupMock func()
		verify    func(*pokedexv1alpha1.NavigateResponse)
	}{
		{
			name: "open region",
			req: &pokedexv1alpha1.NavigateRequest{
				SessionId: "nav_1",
				Action:    pokedexv1alpha1.NavigateActionOpenRegion,
				Region:    "Kanto",
			},
			setupMock: func() {
				s.mockNavigation.EXPECT().
					OpenRegion(s.ctx, &navigation.OpenRegionInput{SessionID: "nav_1", Region: "Kanto"}).
					Return(&navigation.OpenRegionOutput{
						Session: s.session(navrepo.Frame{Kind: navrepo.FrameRegion, Region: "Kanto"}),
						Region:  kanto,
						Pokemon: []*pokemon.Pokemon{testutils.Bulbasaur()},
					}, nil)
			},
			verify: func(resp *pokedexv1alpha1.NavigateResponse) {
				s.Equal("Kanto", resp.Region.Name)
				s.Len(resp.Pokemon, 1)
				s.Nil(resp.Results)
				s.Len(resp.Session.Frames, 2)
			},
		},
		{
			name: "open pokemon by name",
			req: &pokedexv1alpha1.NavigateRequest{
				SessionId:   "nav_1",
				Action:      pokedexv1alpha1.NavigateActionOpenPokemon,
				PokemonName: "ivysaur",
			},
			setupMock: func() {
				s.mockNavigation.EXPECT().
					OpenPokemon(s.ctx, &navigation.OpenPokemonInput{SessionID: "nav_1", Name: "ivysaur"}).
					Return(&navigation.OpenPokemonOutput{
						Session:  s.session(navrepo.Frame{Kind: navrepo.FramePokemon, PokemonID: 2, PokemonName: "ivysaur"}),
						Pokemon:  testutils.Pokemon(2, "ivysaur"),
						Sequence: pokemon.EvolutionSequence{"bulbasaur", "ivysaur", "venusaur"},
					}, nil)
			},
			verify: func(resp *pokedexv1alpha1.NavigateResponse) {
				s.Equal("ivysaur", resp.Detail.Name)
				s.Equal([]string{"bulbasaur", "ivysaur", "venusaur"}, resp.EvolutionChain)
				s.Equal(int32(2), resp.Session.Frames[1].PokemonId)
			},
		},
		{
			name: "back",
			req: &pokedexv1alpha1.NavigateRequest{
				SessionId: "nav_1",
				Action:    pokedexv1alpha1.NavigateActionBack,
			},
			setupMock: func() {
				s.mockNavigation.EXPECT().
					Back(s.ctx, &navigation.BackInput{SessionID: "nav_1"}).
					Return(&navigation.BackOutput{Session: s.session(), Popped: true}, nil)
			},
			verify: func(resp *pokedexv1alpha1.NavigateResponse) {
				s.True(resp.Popped)
				s.Len(resp.Session.Frames, 1)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()
			resp, err := s.handler.Navigate(s.ctx, tc.req)
			s.Require().NoError(err)
			tc.verify(resp)
		})
	}
}

func (s *HandlerTestSuite) TestNavigateErrors() {
	_, err := s.handler.Navigate(s.ctx, &pokedexv1alpha1.NavigateRequest{Action: pokedexv1alpha1.NavigateActionBack})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.Navigate(s.ctx, &pokedexv1alpha1.NavigateRequest{SessionId: "nav_1", Action: "jump"})
	s.requireCode(err, codes.InvalidArgument)

	s.mockNavigation.EXPECT().
		Back(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("navigation session not found"))
	_, err = s.handler.Navigate(s.ctx, &pokedexv1alpha1.NavigateRequest{SessionId: "nav_9", Action: pokedexv1alpha1.NavigateActionBack})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestGetAndEndSession() {
	s.mockNavigation.EXPECT().
		GetSession(s.ctx, &navigation.GetSessionInput{SessionID: "nav_1"}).
		Return(&navigation.GetSessionOutput{Session: s.session()}, nil)
	s.mockNavigation.EXPECT().
		EndSession(s.ctx, &navigation.EndSessionInput{SessionID: "nav_1"}).
		Return(&navigation.EndSessionOutput{Ended: true}, nil)

	got, err := s.handler.GetSession(s.ctx, &pokedexv1alpha1.GetSessionRequest{SessionId: "nav_1"})
	s.Require().NoError(err)
	s.Equal("nav_1", got.Session.Id)

	ended, err := s.handler.EndSession(s.ctx, &pokedexv1alpha1.EndSessionRequest{SessionId: "nav_1"})
	s.Require().NoError(err)
	s.True(ended.Ended)

	_, err = s.handler.GetSession(s.ctx, &pokedexv1alpha1.GetSessionRequest{})
	s.requireCode(err, codes.InvalidArgument)
}
