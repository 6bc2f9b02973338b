package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pantheon.favor.v1alpha1.FavorService"

// Method names, as they appear after the service name on the wire
const (
	MethodStartSession = "StartSession"
	MethodGetStatus    = "GetStatus"
	MethodJoin         = "Join"
	MethodLeave        = "Leave"
	MethodGainPiety    = "GainPiety"
	MethodLosePiety    = "LosePiety"
	MethodDockPiety    = "DockPiety"
	MethodIncurPenance = "IncurPenance"
	MethodPassTime     = "PassTime"
	MethodEndTurn      = "EndTurn"
	MethodGrantGift    = "GrantGift"
)

// FavorServiceServer is the server API for the favor service. Requests and
// responses are structpb envelopes.
type FavorServiceServer interface {
	StartSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Join(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Leave(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GainPiety(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LosePiety(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DockPiety(context.Context, *structpb.Struct) (*structpb.Struct, error)
	IncurPenance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PassTime(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndTurn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GrantGift(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(FavorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(FavorServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(FavorServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FavorServiceDesc describes the favor service for grpc.Server registration
var FavorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FavorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodStartSession, FavorServiceServer.StartSession),
		unaryMethod(MethodGetStatus, FavorServiceServer.GetStatus),
		unaryMethod(MethodJoin, FavorServiceServer.Join),
		unaryMethod(MethodLeave, FavorServiceServer.Leave),
		unaryMethod(MethodGainPiety, FavorServiceServer.GainPiety),
		unaryMethod(MethodLosePiety, FavorServiceServer.LosePiety),
		unaryMethod(MethodDockPiety, FavorServiceServer.DockPiety),
		unaryMethod(MethodIncurPenance, FavorServiceServer.IncurPenance),
		unaryMethod(MethodPassTime, FavorServiceServer.PassTime),
		unaryMethod(MethodEndTurn, FavorServiceServer.EndTurn),
		unaryMethod(MethodGrantGift, FavorServiceServer.GrantGift),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantheon/favor/v1alpha1/favor.proto",
}

// RegisterFavorServiceServer registers the favor service on s
func RegisterFavorServiceServer(s grpc.ServiceRegistrar, srv FavorServiceServer) {
	s.RegisterService(&FavorServiceDesc, srv)
}

// FavorServiceClient calls a remote favor service
type FavorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFavorServiceClient creates a client over an established connection
func NewFavorServiceClient(cc grpc.ClientConnInterface) *FavorServiceClient {
	return &FavorServiceClient{cc: cc}
}

// Call invokes method with the given request fields
func (c *FavorServiceClient) Call(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
