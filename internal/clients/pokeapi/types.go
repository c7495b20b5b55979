package pokeapi

import (
	"sort"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// namedResource is PokeAPI's {name, url} reference shape
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pokemonResponse is the subset of GET /pokemon/{id or name} we decode
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Species namedResource `json:"species"`
}

// speciesResponse is the subset of GET /pokemon-species/{id} we decode
type speciesResponse struct {
	Name           string `json:"name"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// evolutionChainResponse is GET /evolution-chain/{id}
type evolutionChainResponse struct {
	ID    int        `json:"id"`
	Chain *chainLink `json:"chain"`
}

type chainLink struct {
	Species   namedResource `json:"species"`
	EvolvesTo []chainLink   `json:"evolves_to"`
}

func (r *pokemonResponse) toPokemon() *pokemon.Pokemon {
	slots := append(r.Types[:0:0], r.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	p := &pokemon.Pokemon{
		ID:         r.ID,
		Name:       r.Name,
		Height:     r.Height,
		Weight:     r.Weight,
		Types:      make([]string, len(slots)),
		SpeciesRef: r.Species.URL,
	}
	for i, t := range slots {
		p.Types[i] = t.Type.Name
	}
	if r.Sprites.FrontDefault != nil {
		p.SpriteURL = *r.Sprites.FrontDefault
	}
	return p
}

func (r *speciesResponse) toSpecies() *pokemon.Species {
	s := &pokemon.Species{Name: r.Name}
	if r.EvolutionChain != nil {
		s.EvolutionChainRef = r.EvolutionChain.URL
	}
	return s
}

func (l *chainLink) toNode() *pokemon.EvolutionNode {
	node := &pokemon.EvolutionNode{
		SpeciesName: l.Species.Name,
	}
	if len(l.EvolvesTo) > 0 {
		node.EvolvesTo = make([]*pokemon.EvolutionNode, len(l.EvolvesTo))
		for i := range l.EvolvesTo {
			node.EvolvesTo[i] = l.EvolvesTo[i].toNode()
		}
	}
	return node
}
