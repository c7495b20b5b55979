// Package v1alpha1 handles the pokedex grpc service interface
package v1alpha1

import (
	"context"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/navigation"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	RegionService     region.Service
	EvolutionService  evolution.Service
	NavigationService navigation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.RegionService == nil {
		vb.RequiredField("RegionService")
	}
	if c.EvolutionService == nil {
		vb.RequiredField("EvolutionService")
	}
	if c.NavigationService == nil {
		vb.RequiredField("NavigationService")
	}
	return vb.Build()
}

// Handler implements the pokedex gRPC service
type Handler struct {
	pokedexv1alpha1.UnimplementedPokedexServiceServer
	regionService     region.Service
	evolutionService  evolution.Service
	navigationService navigation.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		regionService:     cfg.RegionService,
		evolutionService:  cfg.EvolutionService,
		navigationService: cfg.NavigationService,
	}, nil
}

// ListRegions returns the region catalog
func (h *Handler) ListRegions(
	ctx context.Context,
	_ *pokedexv1alpha1.ListRegionsRequest,
) (*pokedexv1alpha1.ListRegionsResponse, error) {
	output, err := h.regionService.ListRegions(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.ListRegionsResponse{
		Regions: convertRegionsToProto(output.Regions),
	}, nil
}

// GetRegion returns every pokemon of a region, failing if any lookup fails
func (h *Handler) GetRegion(
	ctx context.Context,
	req *pokedexv1alpha1.GetRegionRequest,
) (*pokedexv1alpha1.GetRegionResponse, error) {
	if req.GetName() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.regionService.FetchRegion(ctx, &region.FetchRegionInput{Region: req.GetName()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.GetRegionResponse{
		Region:  convertRegionToProto(output.Region),
		Pokemon: convertPokemonListToProto(output.Pokemon),
	}, nil
}

// GetRegionSettled returns one result per ID of a region with failures in place
func (h *Handler) GetRegionSettled(
	ctx context.Context,
	req *pokedexv1alpha1.GetRegionRequest,
) (*pokedexv1alpha1.GetRegionSettledResponse, error) {
	if req.GetName() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.regionService.FetchRegionSettled(ctx, &region.FetchRegionInput{Region: req.GetName()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.GetRegionSettledResponse{
		Region:  convertRegionToProto(output.Region),
		Results: convertOutcomesToProto(output.Results),
		Failed:  int32(output.Failed),
	}, nil
}

// GetPokemon returns the detail view for a pokemon
func (h *Handler) GetPokemon(
	ctx context.Context,
	req *pokedexv1alpha1.GetPokemonRequest,
) (*pokedexv1alpha1.GetPokemonResponse, error) {
	if err := validateLookup(req.GetId(), req.GetName()); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.evolutionService.OpenDetail(ctx, &evolution.OpenDetailInput{
		ID:   int(req.GetId()),
		Name: req.GetName(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.GetPokemonResponse{
		Pokemon:        convertPokemonToProto(output.Pokemon),
		EvolutionChain: output.Sequence,
	}, nil
}

// GetEvolutionChain returns the first-child sequence and every branch
func (h *Handler) GetEvolutionChain(
	ctx context.Context,
	req *pokedexv1alpha1.GetEvolutionChainRequest,
) (*pokedexv1alpha1.GetEvolutionChainResponse, error) {
	if err := validateLookup(req.Id, req.Name); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.evolutionService.OpenDetail(ctx, &evolution.OpenDetailInput{
		ID:       int(req.Id),
		Name:     req.Name,
		AllPaths: true,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	paths := make([]*pokedexv1alpha1.EvolutionPath, 0, len(output.Paths))
	for _, path := range output.Paths {
		paths = append(paths, &pokedexv1alpha1.EvolutionPath{Species: path})
	}

	return &pokedexv1alpha1.GetEvolutionChainResponse{
		Pokemon:  convertPokemonToProto(output.Pokemon),
		Sequence: output.Sequence,
		Paths:    paths,
	}, nil
}

// StartSession opens a navigation session on the region list
func (h *Handler) StartSession(
	ctx context.Context,
	_ *pokedexv1alpha1.StartSessionRequest,
) (*pokedexv1alpha1.StartSessionResponse, error) {
	output, err := h.navigationService.StartSession(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.StartSessionResponse{
		Session: convertSessionToProto(output.Session),
		Regions: convertRegionsToProto(output.Regions),
	}, nil
}

// Navigate applies one action to a session
func (h *Handler) Navigate(
	ctx context.Context,
	req *pokedexv1alpha1.NavigateRequest,
) (*pokedexv1alpha1.NavigateResponse, error) {
	if req.GetSessionId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	switch req.Action {
	case pokedexv1alpha1.NavigateActionOpenRegion:
		output, err := h.navigationService.OpenRegion(ctx, &navigation.OpenRegionInput{
			SessionID: req.SessionId,
			Region:    req.Region,
			Settled:   req.Settled,
		})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return &pokedexv1alpha1.NavigateResponse{
			Session: convertSessionToProto(output.Session),
			Region:  convertRegionToProto(output.Region),
			Pokemon: convertPokemonListToProto(output.Pokemon),
			Results: convertOutcomesToProto(output.Results),
		}, nil

	case pokedexv1alpha1.NavigateActionOpenPokemon:
		output, err := h.navigationService.OpenPokemon(ctx, &navigation.OpenPokemonInput{
			SessionID: req.SessionId,
			ID:        int(req.PokemonId),
			Name:      req.PokemonName,
		})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return &pokedexv1alpha1.NavigateResponse{
			Session:        convertSessionToProto(output.Session),
			Detail:         convertPokemonToProto(output.Pokemon),
			EvolutionChain: output.Sequence,
		}, nil

	case pokedexv1alpha1.NavigateActionBack:
		output, err := h.navigationService.Back(ctx, &navigation.BackInput{SessionID: req.SessionId})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return &pokedexv1alpha1.NavigateResponse{
			Session: convertSessionToProto(output.Session),
			Popped:  output.Popped,
		}, nil

	default:
		return nil, errors.ToGRPCError(
			errors.InvalidArgumentf("unknown action %q", req.Action).WithMeta("action", string(req.Action)))
	}
}

// GetSession returns a session stack
func (h *Handler) GetSession(
	ctx context.Context,
	req *pokedexv1alpha1.GetSessionRequest,
) (*pokedexv1alpha1.GetSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.navigationService.GetSession(ctx, &navigation.GetSessionInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.GetSessionResponse{
		Session: convertSessionToProto(output.Session),
	}, nil
}

// EndSession discards a session
func (h *Handler) EndSession(
	ctx context.Context,
	req *pokedexv1alpha1.EndSessionRequest,
) (*pokedexv1alpha1.EndSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.navigationService.EndSession(ctx, &navigation.EndSessionInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.EndSessionResponse{Ended: output.Ended}, nil
}

func validateLookup(id int32, name string) error {
	if id < 0 {
		return errors.InvalidArgument("id must not be negative")
	}
	if id == 0 && name == "" {
		return errors.InvalidArgument("id or name is required")
	}
	return nil
}
