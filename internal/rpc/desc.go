package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "lifeos.governance.v1.GovernanceService"

const (
	governMethod   = "/" + ServiceName + "/Govern"
	classifyMethod = "/" + ServiceName + "/Classify"
)

// GovernanceServer is the server side of the service. Requests and
// responses are JSON-shaped structpb.Struct messages.
type GovernanceServer interface {
	Govern(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Classify(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// GovernanceClient is the client side of the service.
type GovernanceClient interface {
	Govern(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Classify(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

// ServiceDesc describes the service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GovernanceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Govern", Handler: governHandler},
		{MethodName: "Classify", Handler: classifyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lifeos/governance/v1/governance.proto",
}

// RegisterGovernanceServer registers srv on s.
func RegisterGovernanceServer(s grpc.ServiceRegistrar, srv GovernanceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func governHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServer).Govern(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: governMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GovernanceServer).Govern(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func classifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: classifyMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GovernanceServer).Classify(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type governanceClient struct {
	cc grpc.ClientConnInterface
}

// NewGovernanceClient returns a client stub over cc.
func NewGovernanceClient(cc grpc.ClientConnInterface) GovernanceClient {
	return &governanceClient{cc: cc}
}

func (c *governanceClient) Govern(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, governMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceClient) Classify(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, classifyMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
