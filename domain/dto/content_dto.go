package dto

import "vibes-backend/domain/model"

// ContentRequest creates or updates a catalog item.
type ContentRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Type        string         `json:"type" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Status      string         `json:"status"`
	Thumbnail   model.MediaRef `json:"thumbnail"`
	Audio       model.MediaRef `json:"audio"`
	Video       model.MediaRef `json:"video"`
	Tags        []string       `json:"tags"`
	Featured    bool           `json:"featured"`
}

// ContentListRequest filters the public catalog listing.
type ContentListRequest struct {
	Type     string `form:"type"`
	Category string `form:"category"`
	Featured bool   `form:"featured"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ContentPage is a page of catalog items with its total count.
type ContentPage struct {
	Items    []model.Content `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
