package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "mnemos.v1.Mnemos"

// Full method names, as seen by interceptors.
const (
	MethodPing             = "/" + ServiceName + "/Ping"
	MethodGetAllItems      = "/" + ServiceName + "/GetAllItems"
	MethodCreateItem       = "/" + ServiceName + "/CreateItem"
	MethodUpdateItem       = "/" + ServiceName + "/UpdateItem"
	MethodDeleteItem       = "/" + ServiceName + "/DeleteItem"
	MethodGetSettings      = "/" + ServiceName + "/GetSettings"
	MethodUpdateSettings   = "/" + ServiceName + "/UpdateSettings"
	MethodGetAllCategories = "/" + ServiceName + "/GetAllCategories"
	MethodAddCategory      = "/" + ServiceName + "/AddCategory"
	MethodRenameCategory   = "/" + ServiceName + "/RenameCategory"
	MethodDeleteCategory   = "/" + ServiceName + "/DeleteCategory"
	MethodGetData          = "/" + ServiceName + "/GetData"
)

// MnemosServer is the server API of the Mnemos service.
type MnemosServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	GetAllItems(context.Context, *Empty) (*ItemsResponse, error)
	CreateItem(context.Context, *CreateItemRequest) (*ItemResponse, error)
	UpdateItem(context.Context, *UpdateItemRequest) (*ItemResponse, error)
	DeleteItem(context.Context, *DeleteItemRequest) (*Empty, error)
	GetSettings(context.Context, *Empty) (*SettingsResponse, error)
	UpdateSettings(context.Context, *SettingsRequest) (*SettingsResponse, error)
	GetAllCategories(context.Context, *Empty) (*CategoriesResponse, error)
	AddCategory(context.Context, *CategoryRequest) (*CategoriesResponse, error)
	RenameCategory(context.Context, *RenameCategoryRequest) (*CategoriesResponse, error)
	DeleteCategory(context.Context, *CategoryRequest) (*CategoriesResponse, error)
	GetData(context.Context, *Empty) (*DataResponse, error)
}

// UnimplementedMnemosServer returns codes.Unimplemented for every method.
// Embed it to stay forward compatible.
type UnimplementedMnemosServer struct{}

func unimplemented(name string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", name)
}

func (UnimplementedMnemosServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedMnemosServer) GetAllItems(context.Context, *Empty) (*ItemsResponse, error) {
	return nil, unimplemented("GetAllItems")
}
func (UnimplementedMnemosServer) CreateItem(context.Context, *CreateItemRequest) (*ItemResponse, error) {
	return nil, unimplemented("CreateItem")
}
func (UnimplementedMnemosServer) UpdateItem(context.Context, *UpdateItemRequest) (*ItemResponse, error) {
	return nil, unimplemented("UpdateItem")
}
func (UnimplementedMnemosServer) DeleteItem(context.Context, *DeleteItemRequest) (*Empty, error) {
	return nil, unimplemented("DeleteItem")
}
func (UnimplementedMnemosServer) GetSettings(context.Context, *Empty) (*SettingsResponse, error) {
	return nil, unimplemented("GetSettings")
}
func (UnimplementedMnemosServer) UpdateSettings(context.Context, *SettingsRequest) (*SettingsResponse, error) {
	return nil, unimplemented("UpdateSettings")
}
func (UnimplementedMnemosServer) GetAllCategories(context.Context, *Empty) (*CategoriesResponse, error) {
	return nil, unimplemented("GetAllCategories")
}
func (UnimplementedMnemosServer) AddCategory(context.Context, *CategoryRequest) (*CategoriesResponse, error) {
	return nil, unimplemented("AddCategory")
}
func (UnimplementedMnemosServer) RenameCategory(context.Context, *RenameCategoryRequest) (*CategoriesResponse, error) {
	return nil, unimplemented("RenameCategory")
}
func (UnimplementedMnemosServer) DeleteCategory(context.Context, *CategoryRequest) (*CategoriesResponse, error) {
	return nil, unimplemented("DeleteCategory")
}
func (UnimplementedMnemosServer) GetData(context.Context, *Empty) (*DataResponse, error) {
	return nil, unimplemented("GetData")
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(MnemosServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MnemosServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MnemosServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes the Mnemos service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MnemosServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unary(MethodPing, MnemosServer.Ping)},
		{MethodName: "GetAllItems", Handler: unary(MethodGetAllItems, MnemosServer.GetAllItems)},
		{MethodName: "CreateItem", Handler: unary(MethodCreateItem, MnemosServer.CreateItem)},
		{MethodName: "UpdateItem", Handler: unary(MethodUpdateItem, MnemosServer.UpdateItem)},
		{MethodName: "DeleteItem", Handler: unary(MethodDeleteItem, MnemosServer.DeleteItem)},
		{MethodName: "GetSettings", Handler: unary(MethodGetSettings, MnemosServer.GetSettings)},
		{MethodName: "UpdateSettings", Handler: unary(MethodUpdateSettings, MnemosServer.UpdateSettings)},
		{MethodName: "GetAllCategories", Handler: unary(MethodGetAllCategories, MnemosServer.GetAllCategories)},
		{MethodName: "AddCategory", Handler: unary(MethodAddCategory, MnemosServer.AddCategory)},
		{MethodName: "RenameCategory", Handler: unary(MethodRenameCategory, MnemosServer.RenameCategory)},
		{MethodName: "DeleteCategory", Handler: unary(MethodDeleteCategory, MnemosServer.DeleteCategory)},
		{MethodName: "GetData", Handler: unary(MethodGetData, MnemosServer.GetData)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mnemos/v1/mnemos",
}

// RegisterMnemosServer registers srv on s.
func RegisterMnemosServer(s grpc.ServiceRegistrar, srv MnemosServer) {
	s.RegisterService(&ServiceDesc, srv)
}
