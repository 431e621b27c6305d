package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.v1alpha1.SheetService"

// Method names
const (
	MethodCreateSheet     = "CreateSheet"
	MethodGetSheet        = "GetSheet"
	MethodListSheets      = "ListSheets"
	MethodDeleteSheet     = "DeleteSheet"
	MethodGetFields       = "GetFields"
	MethodApplyEdits      = "ApplyEdits"
	MethodAddEquipment    = "AddEquipment"
	MethodRemoveEquipment = "RemoveEquipment"
	MethodAddAdvantage    = "AddAdvantage"
	MethodUndo            = "Undo"
	MethodRedo            = "Redo"
	MethodRollDamage      = "RollDamage"
)

// SheetServiceServer is the server API for the sheet service. Requests and responses are
// google.protobuf.Struct messages.
type SheetServiceServer interface {
	CreateSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSheets(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFields(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyEdits(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddEquipment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveEquipment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddAdvantage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Undo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Redo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollDamage(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// SheetServiceDesc describes the sheet service for grpc.ServiceRegistrar
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreateSheet, SheetServiceServer.CreateSheet),
		unary(MethodGetSheet, SheetServiceServer.GetSheet),
		unary(MethodListSheets, SheetServiceServer.ListSheets),
		unary(MethodDeleteSheet, SheetServiceServer.DeleteSheet),
		unary(MethodGetFields, SheetServiceServer.GetFields),
		unary(MethodApplyEdits, SheetServiceServer.ApplyEdits),
		unary(MethodAddEquipment, SheetServiceServer.AddEquipment),
		unary(MethodRemoveEquipment, SheetServiceServer.RemoveEquipment),
		unary(MethodAddAdvantage, SheetServiceServer.AddAdvantage),
		unary(MethodUndo, SheetServiceServer.Undo),
		unary(MethodRedo, SheetServiceServer.Redo),
		unary(MethodRollDamage, SheetServiceServer.RollDamage),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterSheetServiceServer registers srv with s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

// SheetServiceClient calls the sheet service over a client connection
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client for the sheet service
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

// Call invokes method with req
func (c *SheetServiceClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFields reads field values from a sheet
func (c *SheetServiceClient) GetFields(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodGetFields, req, opts...)
}

// ApplyEdits writes field values to a sheet
func (c *SheetServiceClient) ApplyEdits(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodApplyEdits, req, opts...)
}
