package evolution_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
)

const (
	speciesRef = "https://pokeapi.co/api/v2/pokemon-species/133/"
	chainRef   = "https://pokeapi.co/api/v2/evolution-chain/67/"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *pokeapimock.MockClient
	orchestrator evolution.Service
	ctx          context.Context
	eevee        *pokemon.Pokemon
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()
	s.eevee = &pokemon.Pokemon{ID: 133, Name: "eevee", SpeciesRef: speciesRef}

	orch, err := evolution.NewOrchestrator(&evolution.Config{Client: s.mockClient})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func node(name string, children ...*pokemon.EvolutionNode) *pokemon.EvolutionNode {
	return &pokemon.EvolutionNode{SpeciesName: name, EvolvesTo: children}
}

func (s *OrchestratorTestSuite) expectChain(root *pokemon.EvolutionNode) {
	s.mockClient.EXPECT().
		GetSpecies(s.ctx, speciesRef).
		Return(&pokemon.Species{Name: "eevee", EvolutionChainRef: chainRef}, nil)
	s.mockClient.EXPECT().
		GetEvolutionChain(s.ctx, chainRef).
		Return(root, nil)
}

func (s *OrchestratorTestSuite) TestResolveChain() {
	testCases := []struct {
		name     string
		root     *pokemon.EvolutionNode
		expected pokemon.EvolutionSequence
	}{
		{
			name:     "root with no evolutions",
			root:     node("eevee"),
			expected: pokemon.EvolutionSequence{"eevee"},
		},
		{
			name:     "branches ignored past the first child",
			root:     node("eevee", node("vaporeon"), node("jolteon"), node("flareon")),
			expected: pokemon.EvolutionSequence{"eevee", "vaporeon"},
		},
		{
			name:     "first child followed at every level",
			root:     node("eevee", node("a", node("b"), node("x")), node("y", node("z", node("deep")))),
			expected: pokemon.EvolutionSequence{"eevee", "a", "b"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectChain(tc.root)

			out, err := s.orchestrator.ResolveChain(s.ctx, &evolution.ResolveChainInput{Pokemon: s.eevee})

			s.Require().NoError(err)
			s.Equal(tc.expected, out.Sequence)
			s.Equal(s.eevee.Name, out.Sequence[0])
		})
	}
}

func (s *OrchestratorTestSuite) TestResolvePaths() {
	s.expectChain(node("eevee", node("vaporeon"), node("jolteon")))

	out, err := s.orchestrator.ResolvePaths(s.ctx, &evolution.ResolveChainInput{Pokemon: s.eevee})

	s.Require().NoError(err)
	s.Equal(pokemon.EvolutionSequence{"eevee", "vaporeon"}, out.Sequence)
	s.Equal([]pokemon.EvolutionSequence{
		{"eevee", "vaporeon"},
		{"eevee", "jolteon"},
	}, out.Paths)
	s.Equal(out.Sequence, out.Paths[0])
}

func (s *OrchestratorTestSuite) TestResolveChainFailures() {
	testCases := []struct {
		name      string
		pokemon   *pokemon.Pokemon
		setupMock func()
		code      errors.Code
	}{
		{
			name:      "missing pokemon",
			pokemon:   nil,
			setupMock: func() {},
			code:      errors.CodeInvalidArgument,
		},
		{
			name:      "missing species reference",
			pokemon:   &pokemon.Pokemon{Name: "missingno"},
			setupMock: func() {},
			code:      errors.CodeFailedPrecondition,
		},
		{
			name:    "species lookup fails",
			pokemon: s.eevee,
			setupMock: func() {
				s.mockClient.EXPECT().
					GetSpecies(s.ctx, speciesRef).
					Return(nil, errors.Unavailable("down").WithFailure(errors.FailureLookup))
			},
			code: errors.CodeUnavailable,
		},
		{
			name:    "species without chain",
			pokemon: s.eevee,
			setupMock: func() {
				s.mockClient.EXPECT().
					GetSpecies(s.ctx, speciesRef).
					Return(&pokemon.Species{Name: "eevee"}, nil)
			},
			code: errors.CodeFailedPrecondition,
		},
		{
			name:    "chain lookup fails",
			pokemon: s.eevee,
			setupMock: func() {
				s.mockClient.EXPECT().
					GetSpecies(s.ctx, speciesRef).
					Return(&pokemon.Species{Name: "eevee", EvolutionChainRef: chainRef}, nil)
				s.mockClient.EXPECT().
					GetEvolutionChain(s.ctx, chainRef).
					Return(nil, errors.NotFound("gone").WithFailure(errors.FailureLookup))
			},
			code: errors.CodeNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			out, err := s.orchestrator.ResolveChain(s.ctx, &evolution.ResolveChainInput{Pokemon: tc.pokemon})

			s.Require().Error(err)
			s.Nil(out)
			s.Equal(tc.code, errors.GetCode(err))
			if tc.code != errors.CodeInvalidArgument {
				s.True(errors.IsChainFailure(err))
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestResolveChainTooDeep() {
	orch, err := evolution.NewOrchestrator(&evolution.Config{Client: s.mockClient, MaxChainDepth: 2})
	s.Require().NoError(err)
	s.expectChain(node("eevee", node("b", node("c"))))

	out, err := orch.ResolveChain(s.ctx, &evolution.ResolveChainInput{Pokemon: s.eevee})

	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsChainFailure(err))
}

func (s *OrchestratorTestSuite) TestOpenDetailByName() {
	s.mockClient.EXPECT().GetPokemonByName(s.ctx, "eevee").Return(s.eevee, nil)
	s.expectChain(node("eevee", node("vaporeon")))

	out, err := s.orchestrator.OpenDetail(s.ctx, &evolution.OpenDetailInput{Name: "eevee"})

	s.Require().NoError(err)
	s.Equal(s.eevee, out.Pokemon)
	s.Equal(pokemon.EvolutionSequence{"eevee", "vaporeon"}, out.Sequence)
}

func (s *OrchestratorTestSuite) TestOpenDetailByIDPrefersID() {
	s.mockClient.EXPECT().GetPokemonByID(s.ctx, 133).Return(s.eevee, nil)
	s.expectChain(node("eevee"))

	out, err := s.orchestrator.OpenDetail(s.ctx, &evolution.OpenDetailInput{ID: 133, Name: "ignored"})

	s.Require().NoError(err)
	s.Equal(pokemon.EvolutionSequence{"eevee"}, out.Sequence)
}

func (s *OrchestratorTestSuite) TestOpenDetailAllPaths() {
	s.mockClient.EXPECT().GetPokemonByID(s.ctx, 133).Return(s.eevee, nil)
	s.expectChain(node("eevee", node("vaporeon"), node("jolteon")))

	out, err := s.orchestrator.OpenDetail(s.ctx, &evolution.OpenDetailInput{ID: 133, AllPaths: true})

	s.Require().NoError(err)
	s.Equal(pokemon.EvolutionSequence{"eevee", "vaporeon"}, out.Sequence)
	s.Equal([]pokemon.EvolutionSequence{{"eevee", "vaporeon"}, {"eevee", "jolteon"}}, out.Paths)
}

func (s *OrchestratorTestSuite) TestOpenDetailErrors() {
	_, err := s.orchestrator.OpenDetail(s.ctx, &evolution.OpenDetailInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockClient.EXPECT().
		GetPokemonByName(s.ctx, "agumon").
		Return(nil, errors.NotFound("not found").WithFailure(errors.FailureLookup))

	_, err = s.orchestrator.OpenDetail(s.ctx, &evolution.OpenDetailInput{Name: "agumon"})
	s.True(errors.IsNotFound(err))
	s.True(errors.IsLookupFailure(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := evolution.NewOrchestrator(nil)
	s.Error(err)

	_, err = evolution.NewOrchestrator(&evolution.Config{})
	s.ErrorContains(err, "client is required")

	cfg := &evolution.Config{Client: s.mockClient}
	s.Require().NoError(cfg.Validate())
	s.Equal(evolution.DefaultMaxChainDepth, cfg.MaxChainDepth)
}
