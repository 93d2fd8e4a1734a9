package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// MnemosClient is the client API of the Mnemos service.
type MnemosClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)
	GetAllItems(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ItemsResponse, error)
	CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*Empty, error)
	GetSettings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SettingsResponse, error)
	UpdateSettings(ctx context.Context, in *SettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error)
	GetAllCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CategoriesResponse, error)
	AddCategory(ctx context.Context, in *CategoryRequest, opts ...grpc.CallOption) (*CategoriesResponse, error)
	RenameCategory(ctx context.Context, in *RenameCategoryRequest, opts ...grpc.CallOption) (*CategoriesResponse, error)
	DeleteCategory(ctx context.Context, in *CategoryRequest, opts ...grpc.CallOption) (*CategoriesResponse, error)
	GetData(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DataResponse, error)
}

type mnemosClient struct {
	cc grpc.ClientConnInterface
}

// NewMnemosClient returns a client bound to cc. Calls must use the JSON
// codec, see CodecName.
func NewMnemosClient(cc grpc.ClientConnInterface) MnemosClient {
	return &mnemosClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mnemosClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *mnemosClient) GetAllItems(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ItemsResponse, error) {
	return invoke[ItemsResponse](ctx, c.cc, MethodGetAllItems, in, opts)
}

func (c *mnemosClient) CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemResponse](ctx, c.cc, MethodCreateItem, in, opts)
}

func (c *mnemosClient) UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemResponse](ctx, c.cc, MethodUpdateItem, in, opts)
}

func (c *mnemosClient) DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteItem, in, opts)
}

func (c *mnemosClient) GetSettings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[SettingsResponse](ctx, c.cc, MethodGetSettings, in, opts)
}

func (c *mnemosClient) UpdateSettings(ctx context.Context, in *SettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[SettingsResponse](ctx, c.cc, MethodUpdateSettings, in, opts)
}

func (c *mnemosClient) GetAllCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CategoriesResponse, error) {
	return invoke[CategoriesResponse](ctx, c.cc, MethodGetAllCategories, in, opts)
}

func (c *mnemosClient) AddCategory(ctx context.Context, in *CategoryRequest, opts ...grpc.CallOption) (*CategoriesResponse, error) {
	return invoke[CategoriesResponse](ctx, c.cc, MethodAddCategory, in, opts)
}

func (c *mnemosClient) RenameCategory(ctx context.Context, in *RenameCategoryRequest, opts ...grpc.CallOption) (*CategoriesResponse, error) {
	return invoke[CategoriesResponse](ctx, c.cc, MethodRenameCategory, in, opts)
}

func (c *mnemosClient) DeleteCategory(ctx context.Context, in *CategoryRequest, opts ...grpc.CallOption) (*CategoriesResponse, error) {
	return invoke[CategoriesResponse](ctx, c.cc, MethodDeleteCategory, in, opts)
}

func (c *mnemosClient) GetData(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DataResponse, error) {
	return invoke[DataResponse](ctx, c.cc, MethodGetData, in, opts)
}
