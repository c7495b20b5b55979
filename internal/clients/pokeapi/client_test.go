package pokeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const bulbasaurJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "height": 7,
  "weight": 69,
  "sprites": {"front_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/1.png"},
  "types": [
    {"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}},
    {"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}}
  ],
  "species": {"name": "bulbasaur", "url": "/api/v2/pokemon-species/1/"}
}`

const bulbasaurSpeciesJSON = `{
  "name": "bulbasaur",
  "evolution_chain": {"url": "/api/v2/evolution-chain/1/"}
}`

const bulbasaurChainJSON = `{
  "id": 1,
  "chain": {
    "species": {"name": "bulbasaur", "url": ""},
    "evolves_to": [{
      "species": {"name": "ivysaur", "url": ""},
      "evolves_to": [{
        "species": {"name": "venusaur", "url": ""},
        "evolves_to": []
      }]
    }]
  }
}`

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mux      *http.ServeMux
	client   pokeapi.Client
	ctx      context.Context
	requests []string
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r.URL.Path)
		s.mux.ServeHTTP(w, r)
	}))
	s.ctx = context.Background()

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     s.server.URL + "/api/v2",
		HTTPTimeout: 5 * time.Second,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) serveJSON(path, body string) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func (s *ClientTestSuite) TestGetPokemonByID() {
	s.serveJSON("/api/v2/pokemon/1/", bulbasaurJSON)

	p, err := s.client.GetPokemonByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(&pokemon.Pokemon{
		ID:         1,
		Name:       "bulbasaur",
		Height:     7,
		Weight:     69,
		SpriteURL:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/1.png",
		Types:      []string{"grass", "poison"},
		SpeciesRef: "/api/v2/pokemon-species/1/",
	}, p)
}

func (s *ClientTestSuite) TestGetPokemonByNameLowercases() {
	s.serveJSON("/api/v2/pokemon/bulbasaur/", bulbasaurJSON)

	p, err := s.client.GetPokemonByName(s.ctx, " Bulbasaur ")

	s.Require().NoError(err)
	s.Equal(1, p.ID)
	s.Equal([]string{"/api/v2/pokemon/bulbasaur/"}, s.requests)
}

func (s *ClientTestSuite) TestGetPokemonByNameEmpty() {
	_, err := s.client.GetPokemonByName(s.ctx, "  ")

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.requests)
}

func (s *ClientTestSuite) TestMissingSprite() {
	s.serveJSON("/api/v2/pokemon/10/", `{"id": 10, "name": "caterpie", "sprites": {"front_default": null}, "types": []}`)

	p, err := s.client.GetPokemonByID(s.ctx, 10)

	s.Require().NoError(err)
	s.Empty(p.SpriteURL)
	s.Empty(p.Types)
}

func (s *ClientTestSuite) TestGetSpeciesAndChain() {
	s.serveJSON("/api/v2/pokemon-species/1/", bulbasaurSpeciesJSON)
	s.serveJSON("/api/v2/evolution-chain/1/", bulbasaurChainJSON)

	species, err := s.client.GetSpecies(s.ctx, "/api/v2/pokemon-species/1/")
	s.Require().NoError(err)
	s.Equal("/api/v2/evolution-chain/1/", species.EvolutionChainRef)

	root, err := s.client.GetEvolutionChain(s.ctx, s.server.URL+species.EvolutionChainRef)
	s.Require().NoError(err)

	seq, complete := root.FirstChildPath(16)
	s.True(complete)
	s.Equal(pokemon.EvolutionSequence{"bulbasaur", "ivysaur", "venusaur"}, seq)
}

func (s *ClientTestSuite) TestSpeciesWithoutChain() {
	s.serveJSON("/api/v2/pokemon-species/999/", `{"name": "gimmighoul-roaming"}`)

	species, err := s.client.GetSpecies(s.ctx, "/api/v2/pokemon-species/999/")

	s.Require().NoError(err)
	s.Empty(species.EvolutionChainRef)
}

func (s *ClientTestSuite) TestChainWithoutRoot() {
	s.serveJSON("/api/v2/evolution-chain/7/", `{"id": 7}`)

	_, err := s.client.GetEvolutionChain(s.ctx, "/api/v2/evolution-chain/7/")

	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
	s.True(errors.IsLookupFailure(err))
}

func (s *ClientTestSuite) TestEmptyReference() {
	_, err := s.client.GetSpecies(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GetEvolutionChain(s.ctx, " ")
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.requests)
}

func (s *ClientTestSuite) TestStatusMapping() {
	s.mux.HandleFunc("/api/v2/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/pokemon/9999/":
			http.NotFound(w, r)
		case "/api/v2/pokemon/429/":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/api/v2/pokemon/500/":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{not json`))
		}
	})

	testCases := []struct {
		name string
		id   int
		code errors.Code
	}{
		{name: "not found", id: 9999, code: errors.CodeNotFound},
		{name: "rate limited", id: 429, code: errors.CodeResourceExhausted},
		{name: "server error", id: 500, code: errors.CodeUnavailable},
		{name: "malformed body", id: 1, code: errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, err := s.client.GetPokemonByID(s.ctx, tc.id)

			s.Require().Error(err)
			s.Nil(p)
			s.Equal(tc.code, errors.GetCode(err))
			s.True(errors.IsLookupFailure(err))
			s.Equal(tc.id, errors.GetMeta(err)["pokemon_id"])
			s.Contains(errors.GetMeta(err)["url"], "/api/v2/pokemon/")
		})
	}
}

func (s *ClientTestSuite) TestCanceledContext() {
	s.serveJSON("/api/v2/pokemon/1/", bulbasaurJSON)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.GetPokemonByID(ctx, 1)

	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.True(errors.IsLookupFailure(err))
}

func (s *ClientTestSuite) TestUnreachable() {
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: "http://127.0.0.1:1/api/v2/", HTTPTimeout: time.Second})
	s.Require().NoError(err)

	_, err = client.GetPokemonByID(s.ctx, 1)

	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *ClientTestSuite) TestConfigValidate() {
	cfg := &pokeapi.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(pokeapi.DefaultBaseURL, cfg.BaseURL)
	s.Equal(30*time.Second, cfg.HTTPTimeout)

	_, err := pokeapi.New(&pokeapi.Config{BaseURL: "ftp://example.com/"})
	s.Error(err)
}
