// Package v1alpha1 serves munchkin.api.v1alpha1.RoomService. Messages are
// google.protobuf.Struct documents carrying the same JSON the browser
// transport uses, so no generated code is needed.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified names of the room service
const (
	RoomServiceName                     = "munchkin.api.v1alpha1.RoomService"
	RoomService_Dispatch_FullMethodName = "/" + RoomServiceName + "/Dispatch"
	RoomService_Watch_FullMethodName    = "/" + RoomServiceName + "/Watch"
)

// RoomServiceServer is the server API for RoomService
type RoomServiceServer interface {
	// Dispatch runs one intent against a room
	Dispatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Watch streams the room's state views and effects
	Watch(*structpb.Struct, grpc.ServerStreamingServer[structpb.Struct]) error
}

// RegisterRoomServiceServer registers srv on s
func RegisterRoomServiceServer(s grpc.ServiceRegistrar, srv RoomServiceServer) {
	s.RegisterService(&RoomService_ServiceDesc, srv)
}

func _RoomService_Dispatch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).Dispatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomService_Dispatch_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).Dispatch(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_Watch_Handler(srv any, stream grpc.ServerStream) error {
	m := new(structpb.Struct)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RoomServiceServer).Watch(m, &grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
}

// RoomService_ServiceDesc is the grpc.ServiceDesc for RoomService
var RoomService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: RoomServiceName,
	HandlerType: (*RoomServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Dispatch",
			Handler:    _RoomService_Dispatch_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Watch",
			Handler:       _RoomService_Watch_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "munchkin/api/v1alpha1/room.proto",
}

// RoomServiceClient is the client API for RoomService
type RoomServiceClient interface {
	Dispatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Watch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error)
}

type roomServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRoomServiceClient creates a client over cc
func NewRoomServiceClient(cc grpc.ClientConnInterface) RoomServiceClient {
	return &roomServiceClient{cc}
}

func (c *roomServiceClient) Dispatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RoomService_Dispatch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) Watch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &RoomService_ServiceDesc.Streams[0], RoomService_Watch_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: stream}
	if err := x.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
