package evolution

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// ResolveChainInput defines the request for resolving a pokemon's evolution chain
type ResolveChainInput struct {
	Pokemon *pokemon.Pokemon
}

// ResolveChainOutput holds the first-child path from the chain root
type ResolveChainOutput struct {
	Sequence pokemon.EvolutionSequence
}

// ResolvePathsOutput holds every root-to-leaf path; Paths[0] equals Sequence
type ResolvePathsOutput struct {
	Sequence pokemon.EvolutionSequence
	Paths    []pokemon.EvolutionSequence
}

// OpenDetailInput identifies a pokemon by ID or, when ID is zero, by name
type OpenDetailInput struct {
	ID   int
	Name string

	// AllPaths also resolves every branch of the chain
	AllPaths bool
}

// OpenDetailOutput is everything the detail view shows
type OpenDetailOutput struct {
	Pokemon  *pokemon.Pokemon
	Sequence pokemon.EvolutionSequence

	// Paths is only set when AllPaths was requested
	Paths []pokemon.EvolutionSequence
}
