package navigation

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
	navrepo "github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
)

// StartSessionOutput holds a new session sitting on the region list
type StartSessionOutput struct {
	Session *navrepo.Session
	Regions []regions.Region
}

// OpenRegionInput pushes the list of pokemon for a region
type OpenRegionInput struct {
	SessionID string
	Region    string

	// Settled reports per-ID failures instead of failing the whole region
	Settled bool
}

// OpenRegionOutput holds the updated session and the region contents.
// Pokemon is set for all-or-nothing fetches, Results for settled ones.
type OpenRegionOutput struct {
	Session *navrepo.Session
	Region  regions.Region
	Pokemon []*pokemon.Pokemon
	Results []region.Outcome
}

// OpenPokemonInput pushes a detail view, by ID or (when ID is zero) by name
type OpenPokemonInput struct {
	SessionID string
	ID        int
	Name      string
}

// OpenPokemonOutput holds the updated session and the detail view
type OpenPokemonOutput struct {
	Session  *navrepo.Session
	Pokemon  *pokemon.Pokemon
	Sequence pokemon.EvolutionSequence
}

// BackInput pops the current frame
type BackInput struct {
	SessionID string
}

// BackOutput holds the session after the pop.
// Popped is false when the session was already at its root.
type BackOutput struct {
	Session *navrepo.Session
	Current navrepo.Frame
	Popped  bool
}

// GetSessionInput identifies a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput holds the session stack
type GetSessionOutput struct {
	Session *navrepo.Session
}

// EndSessionInput identifies a session to discard
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput reports whether the session existed
type EndSessionOutput struct {
	Ended bool
}
