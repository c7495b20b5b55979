// Package v1alpha1 defines the pokedex.api.v1alpha1 wire messages and service.
// Messages travel as JSON through the codec registered in codec.go.
package v1alpha1

// Region is an entry of the region catalog
type Region struct {
	Name  string `json:"name"`
	MinId int32  `json:"min_id"`
	MaxId int32  `json:"max_id"`
}

// GetName returns the region name
func (x *Region) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// Pokemon is the summary shown in lists and the detail header
type Pokemon struct {
	Id        int32    `json:"id"`
	Name      string   `json:"name"`
	Height    int32    `json:"height"`
	Weight    int32    `json:"weight"`
	SpriteUrl string   `json:"sprite_url,omitempty"`
	Types     []string `json:"types,omitempty"`
}

// GetId returns the national dex number
func (x *Pokemon) GetId() int32 {
	if x == nil {
		return 0
	}
	return x.Id
}

// GetName returns the pokemon name
func (x *Pokemon) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// LookupResult is one settled lookup; Error is set instead of Pokemon on failure
type LookupResult struct {
	Id      int32        `json:"id"`
	Pokemon *Pokemon     `json:"pokemon,omitempty"`
	Error   *LookupError `json:"error,omitempty"`
}

// LookupError describes why a single lookup failed
type LookupError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EvolutionPath is one root-to-leaf path of species names
type EvolutionPath struct {
	Species []string `json:"species"`
}

// Frame is one screen of a navigation session
type Frame struct {
	Kind        string `json:"kind"`
	Region      string `json:"region,omitempty"`
	PokemonId   int32  `json:"pokemon_id,omitempty"`
	PokemonName string `json:"pokemon_name,omitempty"`
}

// Session is a navigation stack; the last frame is the current screen
type Session struct {
	Id        string   `json:"id"`
	Frames    []*Frame `json:"frames"`
	ExpiresAt string   `json:"expires_at,omitempty"`
}

// GetId returns the session ID
func (x *Session) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

// GetFrames returns the session frames
func (x *Session) GetFrames() []*Frame {
	if x == nil {
		return nil
	}
	return x.Frames
}

// ListRegionsRequest has no fields
type ListRegionsRequest struct{}

// ListRegionsResponse lists the catalog in declaration order
type ListRegionsResponse struct {
	Regions []*Region `json:"regions"`
}

// GetRegionRequest names a catalog region
type GetRegionRequest struct {
	Name string `json:"name"`
}

// GetName returns the requested region name
func (x *GetRegionRequest) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// GetRegionResponse holds every pokemon of the region in ID order
type GetRegionResponse struct {
	Region  *Region    `json:"region"`
	Pokemon []*Pokemon `json:"pokemon"`
}

// GetRegionSettledResponse holds one result per ID in ID order
type GetRegionSettledResponse struct {
	Region  *Region         `json:"region"`
	Results []*LookupResult `json:"results"`
	Failed  int32           `json:"failed"`
}

// GetPokemonRequest identifies a pokemon by ID or, when ID is zero, by name
type GetPokemonRequest struct {
	Id   int32  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// GetId returns the requested ID
func (x *GetPokemonRequest) GetId() int32 {
	if x == nil {
		return 0
	}
	return x.Id
}

// GetName returns the requested name
func (x *GetPokemonRequest) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// GetPokemonResponse is the detail view
type GetPokemonResponse struct {
	Pokemon        *Pokemon `json:"pokemon"`
	EvolutionChain []string `json:"evolution_chain"`
}

// GetEvolutionChainRequest identifies a pokemon by ID or, when ID is zero, by name
type GetEvolutionChainRequest struct {
	Id   int32  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// GetEvolutionChainResponse holds the first-child sequence and every branch
type GetEvolutionChainResponse struct {
	Pokemon  *Pokemon         `json:"pokemon"`
	Sequence []string         `json:"sequence"`
	Paths    []*EvolutionPath `json:"paths"`
}

// StartSessionRequest has no fields
type StartSessionRequest struct{}

// StartSessionResponse holds the new session and the region list it shows
type StartSessionResponse struct {
	Session *Session  `json:"session"`
	Regions []*Region `json:"regions"`
}

// NavigateAction selects what Navigate does
type NavigateAction string

// Navigation actions
const (
	NavigateActionOpenRegion  NavigateAction = "open_region"
	NavigateActionOpenPokemon NavigateAction = "open_pokemon"
	NavigateActionBack        NavigateAction = "back"
)

// NavigateRequest applies one action to a session
type NavigateRequest struct {
	SessionId string         `json:"session_id"`
	Action    NavigateAction `json:"action"`

	// open_region
	Region  string `json:"region,omitempty"`
	Settled bool   `json:"settled,omitempty"`

	// open_pokemon
	PokemonId   int32  `json:"pokemon_id,omitempty"`
	PokemonName string `json:"pokemon_name,omitempty"`
}

// GetSessionId returns the session ID
func (x *NavigateRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

// NavigateResponse holds the session after the action and the screen it shows
type NavigateResponse struct {
	Session *Session `json:"session"`

	// region screen
	Region  *Region         `json:"region,omitempty"`
	Pokemon []*Pokemon      `json:"pokemon,omitempty"`
	Results []*LookupResult `json:"results,omitempty"`

	// pokemon screen
	Detail         *Pokemon `json:"detail,omitempty"`
	EvolutionChain []string `json:"evolution_chain,omitempty"`

	// back
	Popped bool `json:"popped,omitempty"`
}

// GetSessionRequest identifies a session
type GetSessionRequest struct {
	SessionId string `json:"session_id"`
}

// GetSessionResponse holds the session stack
type GetSessionResponse struct {
	Session *Session `json:"session"`
}

// EndSessionRequest identifies a session to discard
type EndSessionRequest struct {
	SessionId string `json:"session_id"`
}

// EndSessionResponse reports whether the session existed
type EndSessionResponse struct {
	Ended bool `json:"ended"`
}
