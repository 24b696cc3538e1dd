package pb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion9

const (
	Quote_SubscribeOrderBook_FullMethodName = "/quote.Quote/SubscribeOrderBook"
	Quote_SubscribeTrade_FullMethodName     = "/quote.Quote/SubscribeTrade"
)

// QuoteClient is the client API for Quote service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Quote streams live order books and trades per product. Each stream starts
// only once the server has loaded its initial snapshots.
type QuoteClient interface {
	// SubscribeOrderBook sends one full book snapshot, then every resolved
	// incremental update in sequence order.
	SubscribeOrderBook(ctx context.Context, in *SubscribeOrderBookRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[OrderBookEvent], error)
	// SubscribeTrade sends every trade for the product as it happens.
	SubscribeTrade(ctx context.Context, in *SubscribeTradeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Trade], error)
}

type quoteClient struct {
	cc grpc.ClientConnInterface
}

func NewQuoteClient(cc grpc.ClientConnInterface) QuoteClient {
	return &quoteClient{cc}
}

func (c *quoteClient) SubscribeOrderBook(ctx context.Context, in *SubscribeOrderBookRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[OrderBookEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &Quote_ServiceDesc.Streams[0], Quote_SubscribeOrderBook_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeOrderBookRequest, OrderBookEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type Quote_SubscribeOrderBookClient = grpc.ServerStreamingClient[OrderBookEvent]

func (c *quoteClient) SubscribeTrade(ctx context.Context, in *SubscribeTradeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Trade], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &Quote_ServiceDesc.Streams[1], Quote_SubscribeTrade_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeTradeRequest, Trade]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type Quote_SubscribeTradeClient = grpc.ServerStreamingClient[Trade]

// QuoteServer is the server API for Quote service.
// All implementations must embed UnimplementedQuoteServer
// for forward compatibility.
//
// Quote streams live order books and trades per product. Each stream starts
// only once the server has loaded its initial snapshots.
type QuoteServer interface {
	// SubscribeOrderBook sends one full book snapshot, then every resolved
	// incremental update in sequence order.
	SubscribeOrderBook(*SubscribeOrderBookRequest, grpc.ServerStreamingServer[OrderBookEvent]) error
	// SubscribeTrade sends every trade for the product as it happens.
	SubscribeTrade(*SubscribeTradeRequest, grpc.ServerStreamingServer[Trade]) error
	mustEmbedUnimplementedQuoteServer()
}

// UnimplementedQuoteServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQuoteServer struct{}

func (UnimplementedQuoteServer) SubscribeOrderBook(*SubscribeOrderBookRequest, grpc.ServerStreamingServer[OrderBookEvent]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeOrderBook not implemented")
}
func (UnimplementedQuoteServer) SubscribeTrade(*SubscribeTradeRequest, grpc.ServerStreamingServer[Trade]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeTrade not implemented")
}
func (UnimplementedQuoteServer) mustEmbedUnimplementedQuoteServer() {}
func (UnimplementedQuoteServer) testEmbeddedByValue()               {}

// UnsafeQuoteServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QuoteServer will
// result in compilation errors.
type UnsafeQuoteServer interface {
	mustEmbedUnimplementedQuoteServer()
}

func RegisterQuoteServer(s grpc.ServiceRegistrar, srv QuoteServer) {
	// If the following call panics, it indicates UnimplementedQuoteServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Quote_ServiceDesc, srv)
}

func _Quote_SubscribeOrderBook_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeOrderBookRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(QuoteServer).SubscribeOrderBook(m, &grpc.GenericServerStream[SubscribeOrderBookRequest, OrderBookEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type Quote_SubscribeOrderBookServer = grpc.ServerStreamingServer[OrderBookEvent]

func _Quote_SubscribeTrade_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeTradeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(QuoteServer).SubscribeTrade(m, &grpc.GenericServerStream[SubscribeTradeRequest, Trade]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type Quote_SubscribeTradeServer = grpc.ServerStreamingServer[Trade]

// Quote_ServiceDesc is the grpc.ServiceDesc for Quote service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Quote_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "quote.Quote",
	HandlerType: (*QuoteServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeOrderBook",
			Handler:       _Quote_SubscribeOrderBook_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "SubscribeTrade",
			Handler:       _Quote_SubscribeTrade_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/proto/quote.proto",
}
