package calculator

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName - полное имя gRPC-сервиса калькулятора.
const ServiceName = "calculator.v1.CalculatorService"

// Имена методов сервиса.
const (
	MethodCalculate     = "Calculate"
	MethodCreateSession = "CreateSession"
	MethodLastShared    = "LastShared"
	MethodResetShared   = "ResetShared"
	MethodLastInstance  = "LastInstance"
	MethodResetInstance = "ResetInstance"
)

// CalculatorServiceServer - серверная сторона сервиса. Запросы и ответы - google.protobuf.Struct,
// десятичные числа передаются строками.
type CalculatorServiceServer interface {
	Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CreateSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	LastShared(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ResetShared(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	LastInstance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ResetInstance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv CalculatorServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc - описание сервиса для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodCalculate, Handler: handler(MethodCalculate, CalculatorServiceServer.Calculate)},
		{MethodName: MethodCreateSession, Handler: handler(MethodCreateSession, CalculatorServiceServer.CreateSession)},
		{MethodName: MethodLastShared, Handler: handler(MethodLastShared, CalculatorServiceServer.LastShared)},
		{MethodName: MethodResetShared, Handler: handler(MethodResetShared, CalculatorServiceServer.ResetShared)},
		{MethodName: MethodLastInstance, Handler: handler(MethodLastInstance, CalculatorServiceServer.LastInstance)},
		{MethodName: MethodResetInstance, Handler: handler(MethodResetInstance, CalculatorServiceServer.ResetInstance)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator/v1/calculator.proto",
}

// RegisterCalculatorServiceServer регистрирует реализацию сервиса на сервере.
func RegisterCalculatorServiceServer(s grpc.ServiceRegistrar, srv CalculatorServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// handler - то же, что protoc-gen-go-grpc генерирует для каждого unary-метода.
func handler(method string, call unaryCall) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CalculatorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(CalculatorServiceServer), ctx, req.(*structpb.Struct))
		})
	}
}

// Client - клиент сервиса калькулятора поверх любого grpc.ClientConnInterface.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient создаёт клиента.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Invoke вызывает метод сервиса по имени (MethodCalculate и т.д.).
func (c *Client) Invoke(ctx context.Context, method string, req map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
