package region

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
)

// ListRegionsOutput defines the response for listing regions
type ListRegionsOutput struct {
	Regions []regions.Region
}

// FetchRegionInput defines the request for fetching every pokemon in a region
type FetchRegionInput struct {
	Region string
}

// FetchRangeInput defines the request for fetching an explicit ID range
type FetchRangeInput struct {
	MinID int
	MaxID int
}

// FetchRegionOutput holds one pokemon per ID; Pokemon[i] has ID Region.MinID+i
type FetchRegionOutput struct {
	Region  regions.Region
	Pokemon []*pokemon.Pokemon
}

// Outcome is the settled result of a single lookup.
// Exactly one of Pokemon and Err is set.
type Outcome struct {
	ID      int
	Pokemon *pokemon.Pokemon
	Err     error
}

// FetchRegionSettledOutput holds one outcome per ID in range order
type FetchRegionSettledOutput struct {
	Region  regions.Region
	Results []Outcome
	Failed  int
}
