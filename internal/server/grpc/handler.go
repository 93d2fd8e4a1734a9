package grpc

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/rpc"
)

// Ping answers "OK" once the server is ready and "STARTING" before.
func (s *GRPCServer) Ping(ctx context.Context, _ *rpc.Empty) (*rpc.PingResponse, error) {
	if !s.gate.Ready() {
		return &rpc.PingResponse{Status: "STARTING"}, nil
	}
	return &rpc.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if st != nil && err != nil {
		s.logger.Error(ctx, op+" failed", "error", err.Error())
	}
	return st
}

func (s *GRPCServer) GetAllItems(ctx context.Context, _ *rpc.Empty) (*rpc.ItemsResponse, error) {
	items, err := s.services.Items.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetAllItems", err)
	}
	return &rpc.ItemsResponse{Items: items}, nil
}

func (s *GRPCServer) CreateItem(ctx context.Context, req *rpc.CreateItemRequest) (*rpc.ItemResponse, error) {
	item, err := s.services.Items.Create(ctx, req.Item)
	if err != nil {
		return nil, s.fail(ctx, "CreateItem", err)
	}
	s.logger.Info(ctx, "item created", "id", item.ID, "category", item.Category)
	return &rpc.ItemResponse{Item: item}, nil
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *rpc.UpdateItemRequest) (*rpc.ItemResponse, error) {
	item, err := s.services.Items.Update(ctx, req.ID, req.Item)
	if err != nil {
		return nil, s.fail(ctx, "UpdateItem", err)
	}
	return &rpc.ItemResponse{Item: item}, nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *rpc.DeleteItemRequest) (*rpc.Empty, error) {
	if err := s.services.Items.Delete(ctx, req.ID); err != nil {
		return nil, s.fail(ctx, "DeleteItem", err)
	}
	s.logger.Info(ctx, "item deleted", "id", req.ID)
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) GetSettings(ctx context.Context, _ *rpc.Empty) (*rpc.SettingsResponse, error) {
	settings, err := s.services.Settings.Get(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetSettings", err)
	}
	return &rpc.SettingsResponse{Settings: settings}, nil
}

func (s *GRPCServer) UpdateSettings(ctx context.Context, req *rpc.SettingsRequest) (*rpc.SettingsResponse, error) {
	settings, err := s.services.Settings.Update(ctx, req.Settings)
	if err != nil {
		return nil, s.fail(ctx, "UpdateSettings", err)
	}
	return &rpc.SettingsResponse{Settings: settings}, nil
}

func (s *GRPCServer) GetAllCategories(ctx context.Context, _ *rpc.Empty) (*rpc.CategoriesResponse, error) {
	cats, err := s.services.Categories.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetAllCategories", err)
	}
	return &rpc.CategoriesResponse{Categories: cats}, nil
}

func (s *GRPCServer) AddCategory(ctx context.Context, req *rpc.CategoryRequest) (*rpc.CategoriesResponse, error) {
	cats, err := s.services.Categories.Add(ctx, req.Name)
	if err != nil {
		return nil, s.fail(ctx, "AddCategory", err)
	}
	return &rpc.CategoriesResponse{Categories: cats}, nil
}

func (s *GRPCServer) RenameCategory(ctx context.Context, req *rpc.RenameCategoryRequest) (*rpc.CategoriesResponse, error) {
	cats, err := s.services.Categories.Rename(ctx, req.OldName, req.NewName)
	if err != nil {
		return nil, s.fail(ctx, "RenameCategory", err)
	}
	return &rpc.CategoriesResponse{Categories: cats}, nil
}

func (s *GRPCServer) DeleteCategory(ctx context.Context, req *rpc.CategoryRequest) (*rpc.CategoriesResponse, error) {
	cats, err := s.services.Categories.Delete(ctx, req.Name)
	if err != nil {
		return nil, s.fail(ctx, "DeleteCategory", err)
	}
	return &rpc.CategoriesResponse{Categories: cats}, nil
}

func (s *GRPCServer) GetData(ctx context.Context, _ *rpc.Empty) (*rpc.DataResponse, error) {
	data, err := s.services.Data.Export(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetData", err)
	}
	return &rpc.DataResponse{Data: data}, nil
}
