// Package pb holds the wire types for the Quote gRPC service. The types are
// maintained by hand in step with api/proto/quote.proto: the file descriptor
// is kept as a structured literal, serialized at package load, and fed to
// the protobuf runtime type builder.
package pb

import (
	reflect "reflect"
	sync "sync"

	proto "google.golang.org/protobuf/proto"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	descriptorpb "google.golang.org/protobuf/types/descriptorpb"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// -----------------------------------------------------------------------------

type SubscribeOrderBookRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProductId string `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
}

func (x *SubscribeOrderBookRequest) Reset() {
	*x = SubscribeOrderBookRequest{}
	mi := &file_api_proto_quote_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeOrderBookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeOrderBookRequest) ProtoMessage() {}

func (x *SubscribeOrderBookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_quote_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*SubscribeOrderBookRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_quote_proto_rawDescGZIP(), []int{0}
}

func (x *SubscribeOrderBookRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

// -----------------------------------------------------------------------------

type SubscribeTradeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProductId string `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
}

func (x *SubscribeTradeRequest) Reset() {
	*x = SubscribeTradeRequest{}
	mi := &file_api_proto_quote_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeTradeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeTradeRequest) ProtoMessage() {}

func (x *SubscribeTradeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_quote_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*SubscribeTradeRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_quote_proto_rawDescGZIP(), []int{1}
}

func (x *SubscribeTradeRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

// -----------------------------------------------------------------------------

// OrderBookEntry is one resting order. Decimal values are strings to keep
// exchange precision intact.
type OrderBookEntry struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OrderId string `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Price   string `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	Size    string `protobuf:"bytes,3,opt,name=size,proto3" json:"size,omitempty"`
}

func (x *OrderBookEntry) Reset() {
	*x = OrderBookEntry{}
	mi := &file_api_proto_quote_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderBookEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderBookEntry) ProtoMessage() {}

func (x *OrderBookEntry) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_quote_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*OrderBookEntry) Descriptor() ([]byte, []int) {
	return file_api_proto_quote_proto_rawDescGZIP(), []int{2}
}

func (x *OrderBookEntry) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *OrderBookEntry) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *OrderBookEntry) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

// -----------------------------------------------------------------------------

// OrderBookEvent is either the initial snapshot (bids and asks fully
// populated) or an incremental update (at most one entry per side; a zero
// size entry means removal, sides absent means a sequence-only advance).
type OrderBookEvent struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProductId string            `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Sequence  int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Snapshot  bool              `protobuf:"varint,3,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	Time      string            `protobuf:"bytes,4,opt,name=time,proto3" json:"time,omitempty"`
	Bids      []*OrderBookEntry `protobuf:"bytes,5,rep,name=bids,proto3" json:"bids,omitempty"`
	Asks      []*OrderBookEntry `protobuf:"bytes,6,rep,name=asks,proto3" json:"asks,omitempty"`
}

func (x *OrderBookEvent) Reset() {
	*x = OrderBookEvent{}
	mi := &file_api_proto_quote_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderBookEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderBookEvent) ProtoMessage() {}

func (x *OrderBookEvent) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_quote_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*OrderBookEvent) Descriptor() ([]byte, []int) {
	return file_api_proto_quote_proto_rawDescGZIP(), []int{3}
}

func (x *OrderBookEvent) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *OrderBookEvent) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *OrderBookEvent) GetSnapshot() bool {
	if x != nil {
		return x.Snapshot
	}
	return false
}

func (x *OrderBookEvent) GetTime() string {
	if x != nil {
		return x.Time
	}
	return ""
}

func (x *OrderBookEvent) GetBids() []*OrderBookEntry {
	if x != nil {
		return x.Bids
	}
	return nil
}

func (x *OrderBookEvent) GetAsks() []*OrderBookEntry {
	if x != nil {
		return x.Asks
	}
	return nil
}

// -----------------------------------------------------------------------------

// Trade is one match between a resting maker order and an incoming taker.
type Trade struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProductId    string `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Time         string `protobuf:"bytes,2,opt,name=time,proto3" json:"time,omitempty"`
	Side         string `protobuf:"bytes,3,opt,name=side,proto3" json:"side,omitempty"`
	MakerOrderId string `protobuf:"bytes,4,opt,name=maker_order_id,json=makerOrderId,proto3" json:"maker_order_id,omitempty"`
	TakerOrderId string `protobuf:"bytes,5,opt,name=taker_order_id,json=takerOrderId,proto3" json:"taker_order_id,omitempty"`
	Price        string `protobuf:"bytes,6,opt,name=price,proto3" json:"price,omitempty"`
	Size         string `protobuf:"bytes,7,opt,name=size,proto3" json:"size,omitempty"`
	Sequence     int64  `protobuf:"varint,8,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (x *Trade) Reset() {
	*x = Trade{}
	mi := &file_api_proto_quote_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Trade) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Trade) ProtoMessage() {}

func (x *Trade) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_quote_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Trade) Descriptor() ([]byte, []int) {
	return file_api_proto_quote_proto_rawDescGZIP(), []int{4}
}

func (x *Trade) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *Trade) GetTime() string {
	if x != nil {
		return x.Time
	}
	return ""
}

func (x *Trade) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *Trade) GetMakerOrderId() string {
	if x != nil {
		return x.MakerOrderId
	}
	return ""
}

func (x *Trade) GetTakerOrderId() string {
	if x != nil {
		return x.TakerOrderId
	}
	return ""
}

func (x *Trade) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *Trade) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

func (x *Trade) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

// -----------------------------------------------------------------------------

var File_api_proto_quote_proto protoreflect.FileDescriptor

// The wire-format descriptor, serialized from the structured literal below.
var file_api_proto_quote_proto_rawDesc = func() []byte {
	b, err := proto.Marshal(file_api_proto_quote_proto_desc())
	if err != nil {
		panic(err)
	}
	return b
}()

var (
	file_api_proto_quote_proto_rawDescOnce sync.Once
	file_api_proto_quote_proto_rawDescData = file_api_proto_quote_proto_rawDesc
)

func file_api_proto_quote_proto_rawDescGZIP() []byte {
	file_api_proto_quote_proto_rawDescOnce.Do(func() {
		file_api_proto_quote_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_quote_proto_rawDescData)
	})
	return file_api_proto_quote_proto_rawDescData
}

// file_api_proto_quote_proto_desc mirrors api/proto/quote.proto.
func file_api_proto_quote_proto_desc() *descriptorpb.FileDescriptorProto {
	strField := func(num int32, name, jsonName string) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(num),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
			JsonName: proto.String(jsonName),
		}
	}
	int64Field := func(num int32, name, jsonName string) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(num),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_INT64.Enum(),
			JsonName: proto.String(jsonName),
		}
	}
	boolField := func(num int32, name, jsonName string) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(num),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum(),
			JsonName: proto.String(jsonName),
		}
	}
	entryField := func(num int32, name string) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(num),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
			TypeName: proto.String(".quote.OrderBookEntry"),
			JsonName: proto.String(name),
		}
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("api/proto/quote.proto"),
		Package: proto.String("quote"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("quote-server/api/pb"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String("SubscribeOrderBookRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{strField(1, "product_id", "productId")},
			},
			{
				Name:  proto.String("SubscribeTradeRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{strField(1, "product_id", "productId")},
			},
			{
				Name: proto.String("OrderBookEntry"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField(1, "order_id", "orderId"),
					strField(2, "price", "price"),
					strField(3, "size", "size"),
				},
			},
			{
				Name: proto.String("OrderBookEvent"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField(1, "product_id", "productId"),
					int64Field(2, "sequence", "sequence"),
					boolField(3, "snapshot", "snapshot"),
					strField(4, "time", "time"),
					entryField(5, "bids"),
					entryField(6, "asks"),
				},
			},
			{
				Name: proto.String("Trade"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField(1, "product_id", "productId"),
					strField(2, "time", "time"),
					strField(3, "side", "side"),
					strField(4, "maker_order_id", "makerOrderId"),
					strField(5, "taker_order_id", "takerOrderId"),
					strField(6, "price", "price"),
					strField(7, "size", "size"),
					int64Field(8, "sequence", "sequence"),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("Quote"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:            proto.String("SubscribeOrderBook"),
						InputType:       proto.String(".quote.SubscribeOrderBookRequest"),
						OutputType:      proto.String(".quote.OrderBookEvent"),
						ServerStreaming: proto.Bool(true),
					},
					{
						Name:            proto.String("SubscribeTrade"),
						InputType:       proto.String(".quote.SubscribeTradeRequest"),
						OutputType:      proto.String(".quote.Trade"),
						ServerStreaming: proto.Bool(true),
					},
				},
			},
		},
	}
}

var file_api_proto_quote_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_api_proto_quote_proto_goTypes = []any{
	(*SubscribeOrderBookRequest)(nil), // 0: quote.SubscribeOrderBookRequest
	(*SubscribeTradeRequest)(nil),     // 1: quote.SubscribeTradeRequest
	(*OrderBookEntry)(nil),            // 2: quote.OrderBookEntry
	(*OrderBookEvent)(nil),            // 3: quote.OrderBookEvent
	(*Trade)(nil),                     // 4: quote.Trade
}
var file_api_proto_quote_proto_depIdxs = []int32{
	2, // 0: quote.OrderBookEvent.bids:type_name -> quote.OrderBookEntry
	2, // 1: quote.OrderBookEvent.asks:type_name -> quote.OrderBookEntry
	0, // 2: quote.Quote.SubscribeOrderBook:input_type -> quote.SubscribeOrderBookRequest
	1, // 3: quote.Quote.SubscribeTrade:input_type -> quote.SubscribeTradeRequest
	3, // 4: quote.Quote.SubscribeOrderBook:output_type -> quote.OrderBookEvent
	4, // 5: quote.Quote.SubscribeTrade:output_type -> quote.Trade
	4, // [4:6] is the sub-list for method output_type
	2, // [2:4] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_api_proto_quote_proto_init() }
func file_api_proto_quote_proto_init() {
	if File_api_proto_quote_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_quote_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_quote_proto_goTypes,
		DependencyIndexes: file_api_proto_quote_proto_depIdxs,
		MessageInfos:      file_api_proto_quote_proto_msgTypes,
	}.Build()
	File_api_proto_quote_proto = out.File
	file_api_proto_quote_proto_goTypes = nil
	file_api_proto_quote_proto_depIdxs = nil
}
