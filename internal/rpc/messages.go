package rpc

import "github.com/dmitrijs2005/mnemos/internal/models"

// Empty is used where a call carries no data.
type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type ItemsResponse struct {
	Items []models.Item `json:"items"`
}

type CreateItemRequest struct {
	Item models.Item `json:"item"`
}

type UpdateItemRequest struct {
	ID   string      `json:"id"`
	Item models.Item `json:"item"`
}

type ItemResponse struct {
	Item models.Item `json:"item"`
}

type DeleteItemRequest struct {
	ID string `json:"id"`
}

type SettingsRequest struct {
	Settings models.Settings `json:"settings"`
}

type SettingsResponse struct {
	Settings models.Settings `json:"settings"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type RenameCategoryRequest struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

type DataResponse struct {
	Data models.AppData `json:"data"`
}
