package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
)

func TestDisplayName(t *testing.T) {
	testCases := map[string]string{
		"bulbasaur": "Bulbasaur",
		"mr-mime":   "Mr Mime",
		"ho-oh":     "Ho Oh",
	}
	for in, expected := range testCases {
		assert.Equal(t, expected, displayName(in), in)
	}
}

func TestParseTarget(t *testing.T) {
	id, name := parseTarget("25")
	assert.Equal(t, int32(25), id)
	assert.Empty(t, name)

	id, name = parseTarget("pikachu")
	assert.Zero(t, id)
	assert.Equal(t, "pikachu", name)
}

func TestRenderSettled(t *testing.T) {
	var buf bytes.Buffer
	renderSettled(&buf, &pokedexv1alpha1.GetRegionSettledResponse{
		Region: kanto,
		Results: []*pokedexv1alpha1.LookupResult{
			{Id: 1, Pokemon: bulbasaur},
			{Id: 2, Error: &pokedexv1alpha1.LookupError{Code: "not_found", Message: "PokeAPI returned 404"}},
		},
		Failed: 1,
	})

	assert.Contains(t, buf.String(), "Kanto (2, 1 failed)")
	assert.Contains(t, buf.String(), "#0001 Bulbasaur")
	assert.Contains(t, buf.String(), "not_found: PokeAPI returned 404")
}

func TestRenderPathsShowsBranches(t *testing.T) {
	var buf bytes.Buffer
	renderPaths(&buf, &pokedexv1alpha1.GetEvolutionChainResponse{
		Pokemon:  &pokedexv1alpha1.Pokemon{Id: 133, Name: "eevee"},
		Sequence: []string{"eevee", "vaporeon"},
		Paths: []*pokedexv1alpha1.EvolutionPath{
			{Species: []string{"eevee", "vaporeon"}},
			{Species: []string{"eevee", "jolteon"}},
		},
	})

	assert.Contains(t, buf.String(), "Eevee -> Vaporeon")
	assert.Contains(t, buf.String(), "Eevee -> Jolteon")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, writeJSON(&buf, &pokedexv1alpha1.GetPokemonResponse{
		Pokemon:        bulbasaur,
		EvolutionChain: []string{"bulbasaur"},
	}))
	assert.Contains(t, buf.String(), `"evolution_chain": [`)
	assert.Contains(t, buf.String(), `"name": "bulbasaur"`)
}
