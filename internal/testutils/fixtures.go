package testutils

import (
	"fmt"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// Commonly used fixture names
const (
	SpeciesRefBulbasaur = "https://pokeapi.co/api/v2/pokemon-species/1/"
	ChainRefBulbasaur   = "https://pokeapi.co/api/v2/evolution-chain/1/"
	ChainRefEevee       = "https://pokeapi.co/api/v2/evolution-chain/67/"
)

// Pokemon builds a minimal record for id with a species reference
func Pokemon(id int, name string) *pokemon.Pokemon {
	return &pokemon.Pokemon{
		ID:         id,
		Name:       name,
		Height:     7,
		Weight:     69,
		SpriteURL:  fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png", id),
		Types:      []string{"normal"},
		SpeciesRef: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id),
	}
}

// Bulbasaur returns the Kanto #1 record
func Bulbasaur() *pokemon.Pokemon {
	p := Pokemon(1, "bulbasaur")
	p.Types = []string{"grass", "poison"}
	p.SpeciesRef = SpeciesRefBulbasaur
	return p
}

// BulbasaurChain is the linear three-stage chain
func BulbasaurChain() *pokemon.EvolutionNode {
	return Chain("bulbasaur", "ivysaur", "venusaur")
}

// Chain builds a linear chain from names
func Chain(names ...string) *pokemon.EvolutionNode {
	var root, tail *pokemon.EvolutionNode
	for _, name := range names {
		node := &pokemon.EvolutionNode{SpeciesName: name}
		if root == nil {
			root = node
		} else {
			tail.EvolvesTo = []*pokemon.EvolutionNode{node}
		}
		tail = node
	}
	return root
}

// EeveeChain branches into three evolutions
func EeveeChain() *pokemon.EvolutionNode {
	return &pokemon.EvolutionNode{SpeciesName: "eevee", EvolvesTo: []*pokemon.EvolutionNode{
		{SpeciesName: "vaporeon"},
		{SpeciesName: "jolteon"},
		{SpeciesName: "flareon"},
	}}
}
