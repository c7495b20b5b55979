package v1alpha1

import (
	"time"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
	navrepo "github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
)

func convertRegionToProto(r regions.Region) *pokedexv1alpha1.Region {
	return &pokedexv1alpha1.Region{
		Name:  r.Name,
		MinId: int32(r.MinID),
		MaxId: int32(r.MaxID),
	}
}

func convertRegionsToProto(list []regions.Region) []*pokedexv1alpha1.Region {
	out := make([]*pokedexv1alpha1.Region, 0, len(list))
	for _, r := range list {
		out = append(out, convertRegionToProto(r))
	}
	return out
}

func convertPokemonToProto(p *pokemon.Pokemon) *pokedexv1alpha1.Pokemon {
	if p == nil {
		return nil
	}
	return &pokedexv1alpha1.Pokemon{
		Id:        int32(p.ID),
		Name:      p.Name,
		Height:    int32(p.Height),
		Weight:    int32(p.Weight),
		SpriteUrl: p.SpriteURL,
		Types:     p.Types,
	}
}

func convertPokemonListToProto(list []*pokemon.Pokemon) []*pokedexv1alpha1.Pokemon {
	if list == nil {
		return nil
	}
	out := make([]*pokedexv1alpha1.Pokemon, 0, len(list))
	for _, p := range list {
		out = append(out, convertPokemonToProto(p))
	}
	return out
}

func convertOutcomesToProto(outcomes []region.Outcome) []*pokedexv1alpha1.LookupResult {
	if outcomes == nil {
		return nil
	}
	out := make([]*pokedexv1alpha1.LookupResult, 0, len(outcomes))
	for _, o := range outcomes {
		result := &pokedexv1alpha1.LookupResult{Id: int32(o.ID)}
		if o.Err != nil {
			result.Error = &pokedexv1alpha1.LookupError{
				Code:    string(errors.GetCode(o.Err)),
				Message: errors.GetMessage(o.Err),
			}
		} else {
			result.Pokemon = convertPokemonToProto(o.Pokemon)
		}
		out = append(out, result)
	}
	return out
}

func convertSessionToProto(s *navrepo.Session) *pokedexv1alpha1.Session {
	if s == nil {
		return nil
	}

	frames := make([]*pokedexv1alpha1.Frame, 0, len(s.Frames))
	for _, f := range s.Frames {
		frames = append(frames, &pokedexv1alpha1.Frame{
			Kind:        string(f.Kind),
			Region:      f.Region,
			PokemonId:   int32(f.PokemonID),
			PokemonName: f.PokemonName,
		})
	}

	out := &pokedexv1alpha1.Session{
		Id:     s.ID,
		Frames: frames,
	}
	if !s.ExpiresAt.IsZero() {
		out.ExpiresAt = s.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return out
}
