package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified service name
const ServiceName = "pokedex.api.v1alpha1.PokedexService"

// Full method names
const (
	PokedexService_ListRegions_FullMethodName       = "/" + ServiceName + "/ListRegions"
	PokedexService_GetRegion_FullMethodName         = "/" + ServiceName + "/GetRegion"
	PokedexService_GetRegionSettled_FullMethodName  = "/" + ServiceName + "/GetRegionSettled"
	PokedexService_GetPokemon_FullMethodName        = "/" + ServiceName + "/GetPokemon"
	PokedexService_GetEvolutionChain_FullMethodName = "/" + ServiceName + "/GetEvolutionChain"
	PokedexService_StartSession_FullMethodName      = "/" + ServiceName + "/StartSession"
	PokedexService_Navigate_FullMethodName          = "/" + ServiceName + "/Navigate"
	PokedexService_GetSession_FullMethodName        = "/" + ServiceName + "/GetSession"
	PokedexService_EndSession_FullMethodName        = "/" + ServiceName + "/EndSession"
)

// PokedexServiceServer is the server API for PokedexService
type PokedexServiceServer interface {
	ListRegions(context.Context, *ListRegionsRequest) (*ListRegionsResponse, error)
	GetRegion(context.Context, *GetRegionRequest) (*GetRegionResponse, error)
	GetRegionSettled(context.Context, *GetRegionRequest) (*GetRegionSettledResponse, error)
	GetPokemon(context.Context, *GetPokemonRequest) (*GetPokemonResponse, error)
	GetEvolutionChain(context.Context, *GetEvolutionChainRequest) (*GetEvolutionChainResponse, error)
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	Navigate(context.Context, *NavigateRequest) (*NavigateResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error)
}

// UnimplementedPokedexServiceServer can be embedded to have forward compatible implementations
type UnimplementedPokedexServiceServer struct{}

func (UnimplementedPokedexServiceServer) ListRegions(context.Context, *ListRegionsRequest) (*ListRegionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRegions not implemented")
}

func (UnimplementedPokedexServiceServer) GetRegion(context.Context, *GetRegionRequest) (*GetRegionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRegion not implemented")
}

func (UnimplementedPokedexServiceServer) GetRegionSettled(context.Context, *GetRegionRequest) (*GetRegionSettledResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRegionSettled not implemented")
}

func (UnimplementedPokedexServiceServer) GetPokemon(context.Context, *GetPokemonRequest) (*GetPokemonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPokemon not implemented")
}

func (UnimplementedPokedexServiceServer) GetEvolutionChain(context.Context, *GetEvolutionChainRequest) (*GetEvolutionChainResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEvolutionChain not implemented")
}

func (UnimplementedPokedexServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartSession not implemented")
}

func (UnimplementedPokedexServiceServer) Navigate(context.Context, *NavigateRequest) (*NavigateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Navigate not implemented")
}

func (UnimplementedPokedexServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}

func (UnimplementedPokedexServiceServer) EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EndSession not implemented")
}

// RegisterPokedexServiceServer registers srv on s
func RegisterPokedexServiceServer(s grpc.ServiceRegistrar, srv PokedexServiceServer) {
	s.RegisterService(&PokedexService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req, Resp any](
	fullMethod string,
	call func(PokedexServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PokedexServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PokedexServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PokedexService_ServiceDesc is the grpc.ServiceDesc for PokedexService
var PokedexService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PokedexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRegions", Handler: unary(PokedexService_ListRegions_FullMethodName, PokedexServiceServer.ListRegions)},
		{MethodName: "GetRegion", Handler: unary(PokedexService_GetRegion_FullMethodName, PokedexServiceServer.GetRegion)},
		{MethodName: "GetRegionSettled", Handler: unary(PokedexService_GetRegionSettled_FullMethodName, PokedexServiceServer.GetRegionSettled)},
		{MethodName: "GetPokemon", Handler: unary(PokedexService_GetPokemon_FullMethodName, PokedexServiceServer.GetPokemon)},
		{MethodName: "GetEvolutionChain", Handler: unary(PokedexService_GetEvolutionChain_FullMethodName, PokedexServiceServer.GetEvolutionChain)},
		{MethodName: "StartSession", Handler: unary(PokedexService_StartSession_FullMethodName, PokedexServiceServer.StartSession)},
		{MethodName: "Navigate", Handler: unary(PokedexService_Navigate_FullMethodName, PokedexServiceServer.Navigate)},
		{MethodName: "GetSession", Handler: unary(PokedexService_GetSession_FullMethodName, PokedexServiceServer.GetSession)},
		{MethodName: "EndSession", Handler: unary(PokedexService_EndSession_FullMethodName, PokedexServiceServer.EndSession)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokedex/api/v1alpha1/pokedex.proto",
}
