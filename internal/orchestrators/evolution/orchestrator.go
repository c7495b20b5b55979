// Package evolution resolves evolution chains for the detail view
package evolution

//go:generate mockgen -destination=mock/mock_service.go -package=evolutionmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// DefaultMaxChainDepth is well above the deepest real chain (three stages)
const DefaultMaxChainDepth = 16

// Service defines the evolution operations
type Service interface {
	// ResolveChain fetches species then chain and walks the first child at each level
	ResolveChain(ctx context.Context, input *ResolveChainInput) (*ResolveChainOutput, error)

	// ResolvePaths is ResolveChain plus every alternate branch
	ResolvePaths(ctx context.Context, input *ResolveChainInput) (*ResolvePathsOutput, error)

	// OpenDetail looks a pokemon up by ID or name and resolves its chain
	OpenDetail(ctx context.Context, input *OpenDetailInput) (*OpenDetailOutput, error)
}

// Config holds the dependencies for the evolution orchestrator
type Config struct {
	Client pokeapi.Client

	// MaxChainDepth guards the walk; defaults to DefaultMaxChainDepth
	MaxChainDepth int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client is required")
	}
	if c.MaxChainDepth < 0 {
		return errors.InvalidArgument("max chain depth must not be negative")
	}
	if c.MaxChainDepth == 0 {
		c.MaxChainDepth = DefaultMaxChainDepth
	}
	return nil
}

type orchestrator struct {
	client   pokeapi.Client
	maxDepth int
}

// NewOrchestrator creates a new evolution orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:   cfg.Client,
		maxDepth: cfg.MaxChainDepth,
	}, nil
}

func (o *orchestrator) ResolveChain(ctx context.Context, input *ResolveChainInput) (*ResolveChainOutput, error) {
	root, err := o.fetchRoot(ctx, input)
	if err != nil {
		return nil, err
	}

	seq, err := o.walk(root, input.Pokemon)
	if err != nil {
		return nil, err
	}

	return &ResolveChainOutput{
		Sequence: seq,
	}, nil
}

func (o *orchestrator) ResolvePaths(ctx context.Context, input *ResolveChainInput) (*ResolvePathsOutput, error) {
	root, err := o.fetchRoot(ctx, input)
	if err != nil {
		return nil, err
	}

	seq, err := o.walk(root, input.Pokemon)
	if err != nil {
		return nil, err
	}

	paths, complete := root.Paths(o.maxDepth)
	if !complete {
		return nil, o.tooDeep(input.Pokemon)
	}

	return &ResolvePathsOutput{
		Sequence: seq,
		Paths:    paths,
	}, nil
}

func (o *orchestrator) OpenDetail(ctx context.Context, input *OpenDetailInput) (*OpenDetailOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		p   *pokemon.Pokemon
		err error
	)
	switch {
	case input.ID > 0:
		p, err = o.client.GetPokemonByID(ctx, input.ID)
	case input.Name != "":
		p, err = o.client.GetPokemonByName(ctx, input.Name)
	default:
		return nil, errors.InvalidArgument("pokemon ID or name is required")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pokemon")
	}

	if input.AllPaths {
		paths, err := o.ResolvePaths(ctx, &ResolveChainInput{Pokemon: p})
		if err != nil {
			return nil, err
		}
		return &OpenDetailOutput{
			Pokemon:  p,
			Sequence: paths.Sequence,
			Paths:    paths.Paths,
		}, nil
	}

	chain, err := o.ResolveChain(ctx, &ResolveChainInput{Pokemon: p})
	if err != nil {
		return nil, err
	}

	return &OpenDetailOutput{
		Pokemon:  p,
		Sequence: chain.Sequence,
	}, nil
}

// fetchRoot dereferences species then evolution chain. Either failure
// aborts the resolution; no partial chain is produced.
func (o *orchestrator) fetchRoot(ctx context.Context, input *ResolveChainInput) (*pokemon.EvolutionNode, error) {
	if input == nil || input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}
	p := input.Pokemon

	if p.SpeciesRef == "" {
		return nil, errors.FailedPreconditionf("pokemon %s has no species reference", p.Name).
			WithFailure(errors.FailureChain).
			WithMeta("pokemon", p.Name)
	}

	species, err := o.client.GetSpecies(ctx, p.SpeciesRef)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species for %s", p.Name).
			WithFailure(errors.FailureChain).
			WithMeta("pokemon", p.Name)
	}

	if species.EvolutionChainRef == "" {
		return nil, errors.FailedPreconditionf("species %s has no evolution chain", species.Name).
			WithFailure(errors.FailureChain).
			WithMeta("pokemon", p.Name)
	}

	root, err := o.client.GetEvolutionChain(ctx, species.EvolutionChainRef)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get evolution chain for %s", p.Name).
			WithFailure(errors.FailureChain).
			WithMeta("pokemon", p.Name)
	}
	if root == nil {
		return nil, errors.Internalf("evolution chain for %s has no root", p.Name).
			WithFailure(errors.FailureChain).
			WithMeta("pokemon", p.Name)
	}

	return root, nil
}

func (o *orchestrator) walk(root *pokemon.EvolutionNode, p *pokemon.Pokemon) (pokemon.EvolutionSequence, error) {
	seq, complete := root.FirstChildPath(o.maxDepth)
	if !complete {
		return nil, o.tooDeep(p)
	}

	slog.Debug("Resolved evolution chain",
		"pokemon", p.Name,
		"chain", seq,
		"branches", len(root.EvolvesTo),
	)
	return seq, nil
}

func (o *orchestrator) tooDeep(p *pokemon.Pokemon) error {
	return errors.Internalf("evolution chain for %s is deeper than %d", p.Name, o.maxDepth).
		WithFailure(errors.FailureChain).
		WithMeta("pokemon", p.Name)
}
