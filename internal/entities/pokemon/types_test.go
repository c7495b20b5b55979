package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// vaporeon is the only eeveelution on the first-child path
func eeveeChain() *pokemon.EvolutionNode {
	root := &pokemon.EvolutionNode{SpeciesName: "eevee"}
	for _, name := range []string{"vaporeon", "jolteon", "flareon"} {
		root.EvolvesTo = append(root.EvolvesTo, &pokemon.EvolutionNode{SpeciesName: name})
	}
	return root
}

func TestFirstChildPath(t *testing.T) {
	testCases := []struct {
		name     string
		root     *pokemon.EvolutionNode
		expected pokemon.EvolutionSequence
	}{
		{
			name:     "no evolutions",
			root:     &pokemon.EvolutionNode{SpeciesName: "tauros"},
			expected: pokemon.EvolutionSequence{"tauros"},
		},
		{
			name: "linear chain",
			root: &pokemon.EvolutionNode{SpeciesName: "bulbasaur", EvolvesTo: []*pokemon.EvolutionNode{
				{SpeciesName: "ivysaur", EvolvesTo: []*pokemon.EvolutionNode{
					{SpeciesName: "venusaur"},
				}},
			}},
			expected: pokemon.EvolutionSequence{"bulbasaur", "ivysaur", "venusaur"},
		},
		{
			name:     "branching takes first child only",
			root:     eeveeChain(),
			expected: pokemon.EvolutionSequence{"eevee", "vaporeon"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq, complete := tc.root.FirstChildPath(16)
			assert.True(t, complete)
			assert.Equal(t, tc.expected, seq)
		})
	}
}

func TestFirstChildPathDepthLimit(t *testing.T) {
	root := &pokemon.EvolutionNode{SpeciesName: "a", EvolvesTo: []*pokemon.EvolutionNode{
		{SpeciesName: "b", EvolvesTo: []*pokemon.EvolutionNode{{SpeciesName: "c"}}},
	}}

	seq, complete := root.FirstChildPath(2)
	assert.False(t, complete)
	assert.Equal(t, pokemon.EvolutionSequence{"a", "b"}, seq)
}

func TestPaths(t *testing.T) {
	paths, complete := eeveeChain().Paths(16)

	assert.True(t, complete)
	assert.Equal(t, []pokemon.EvolutionSequence{
		{"eevee", "vaporeon"},
		{"eevee", "jolteon"},
		{"eevee", "flareon"},
	}, paths)
}

func TestPathsNilRoot(t *testing.T) {
	var root *pokemon.EvolutionNode
	paths, complete := root.Paths(16)
	assert.Nil(t, paths)
	assert.True(t, complete)
}

func TestPathsNilChildrenEndThePath(t *testing.T) {
	root := &pokemon.EvolutionNode{SpeciesName: "eevee", EvolvesTo: []*pokemon.EvolutionNode{
		{SpeciesName: "vaporeon", EvolvesTo: []*pokemon.EvolutionNode{nil}},
		nil,
		{SpeciesName: "jolteon"},
	}}

	paths, complete := root.Paths(16)

	assert.True(t, complete)
	assert.Equal(t, []pokemon.EvolutionSequence{
		{"eevee", "vaporeon"},
		{"eevee", "jolteon"},
	}, paths)
}
