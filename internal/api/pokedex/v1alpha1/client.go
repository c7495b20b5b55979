package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

//go:generate mockgen -destination=mock/mock_client.go -package=pokedexmock github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1 PokedexServiceClient

// PokedexServiceClient is the client API for PokedexService
type PokedexServiceClient interface {
	ListRegions(ctx context.Context, in *ListRegionsRequest, opts ...grpc.CallOption) (*ListRegionsResponse, error)
	GetRegion(ctx context.Context, in *GetRegionRequest, opts ...grpc.CallOption) (*GetRegionResponse, error)
	GetRegionSettled(ctx context.Context, in *GetRegionRequest, opts ...grpc.CallOption) (*GetRegionSettledResponse, error)
	GetPokemon(ctx context.Context, in *GetPokemonRequest, opts ...grpc.CallOption) (*GetPokemonResponse, error)
	GetEvolutionChain(ctx context.Context, in *GetEvolutionChainRequest, opts ...grpc.CallOption) (*GetEvolutionChainResponse, error)
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	Navigate(ctx context.Context, in *NavigateRequest, opts ...grpc.CallOption) (*NavigateResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error)
}

type pokedexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPokedexServiceClient returns a client that sends every call with the JSON codec
func NewPokedexServiceClient(cc grpc.ClientConnInterface) PokedexServiceClient {
	return &pokedexServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) ListRegions(ctx context.Context, in *ListRegionsRequest, opts ...grpc.CallOption) (*ListRegionsResponse, error) {
	return invoke[ListRegionsResponse](ctx, c.cc, PokedexService_ListRegions_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) GetRegion(ctx context.Context, in *GetRegionRequest, opts ...grpc.CallOption) (*GetRegionResponse, error) {
	return invoke[GetRegionResponse](ctx, c.cc, PokedexService_GetRegion_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) GetRegionSettled(ctx context.Context, in *GetRegionRequest, opts ...grpc.CallOption) (*GetRegionSettledResponse, error) {
	return invoke[GetRegionSettledResponse](ctx, c.cc, PokedexService_GetRegionSettled_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) GetPokemon(ctx context.Context, in *GetPokemonRequest, opts ...grpc.CallOption) (*GetPokemonResponse, error) {
	return invoke[GetPokemonResponse](ctx, c.cc, PokedexService_GetPokemon_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) GetEvolutionChain(ctx context.Context, in *GetEvolutionChainRequest, opts ...grpc.CallOption) (*GetEvolutionChainResponse, error) {
	return invoke[GetEvolutionChainResponse](ctx, c.cc, PokedexService_GetEvolutionChain_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	return invoke[StartSessionResponse](ctx, c.cc, PokedexService_StartSession_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) Navigate(ctx context.Context, in *NavigateRequest, opts ...grpc.CallOption) (*NavigateResponse, error) {
	return invoke[NavigateResponse](ctx, c.cc, PokedexService_Navigate_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	return invoke[GetSessionResponse](ctx, c.cc, PokedexService_GetSession_FullMethodName, in, opts)
}

func (c *pokedexServiceClient) EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error) {
	return invoke[EndSessionResponse](ctx, c.cc, PokedexService_EndSession_FullMethodName, in, opts)
}
