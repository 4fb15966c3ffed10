package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const matchService = packageName + ".MatchService"

// MatchServiceServer is the server API for MatchService: the match request lifecycle.
type MatchServiceServer interface {
	CreateMatch(context.Context, *CreateMatchRequest) (*Match, error)
	GetMatch(context.Context, *MatchKey) (*Match, error)
	UpdateMatchStatus(context.Context, *UpdateMatchStatusRequest) (*Match, error)
	AcceptMatch(context.Context, *MatchKey) (*Match, error)
}

var MatchService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: matchService,
	HandlerType: (*MatchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(matchService, "CreateMatch", MatchServiceServer.CreateMatch),
		unary(matchService, "GetMatch", MatchServiceServer.GetMatch),
		unary(matchService, "UpdateMatchStatus", MatchServiceServer.UpdateMatchStatus),
		unary(matchService, "AcceptMatch", MatchServiceServer.AcceptMatch),
	},
	Metadata: "jobmatch/v1/match",
}

func RegisterMatchServiceServer(s grpc.ServiceRegistrar, srv MatchServiceServer) {
	s.RegisterService(&MatchService_ServiceDesc, srv)
}

type MatchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMatchServiceClient(cc grpc.ClientConnInterface) *MatchServiceClient {
	return &MatchServiceClient{cc: cc}
}

func (c *MatchServiceClient) CreateMatch(ctx context.Context, in *CreateMatchRequest, opts ...grpc.CallOption) (*Match, error) {
	return invoke[Match](ctx, c.cc, matchService, "CreateMatch", in, opts)
}

func (c *MatchServiceClient) GetMatch(ctx context.Context, in *MatchKey, opts ...grpc.CallOption) (*Match, error) {
	return invoke[Match](ctx, c.cc, matchService, "GetMatch", in, opts)
}

func (c *MatchServiceClient) UpdateMatchStatus(ctx context.Context, in *UpdateMatchStatusRequest, opts ...grpc.CallOption) (*Match, error) {
	return invoke[Match](ctx, c.cc, matchService, "UpdateMatchStatus", in, opts)
}

func (c *MatchServiceClient) AcceptMatch(ctx context.Context, in *MatchKey, opts ...grpc.CallOption) (*Match, error) {
	return invoke[Match](ctx, c.cc, matchService, "AcceptMatch", in, opts)
}
