package handler

import (
	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// --- Request / Response types ---

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type searchProductsRequest struct {
	Search      string   `query:"search"`
	Category    string   `query:"category"`
	MinPrice    *float64 `query:"minPrice"    validate:"omitempty,gte=0"`
	MaxPrice    *float64 `query:"maxPrice"    validate:"omitempty,gte=0"`
	StockFilter string   `query:"stockFilter" validate:"omitempty,oneof=inStock outOfStock all"`
	SortBy      string   `query:"sortBy"      validate:"omitempty,oneof=name price stock createdAt"`
	SortOrder   string   `query:"sortOrder"   validate:"omitempty,oneof=asc desc"`
	Page        int64    `query:"page"        validate:"omitempty,gte=1"`
	Limit       int64    `query:"limit"       validate:"omitempty,gte=1"`
}

type paginationMeta struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type productPageResponse struct {
	Data []domain.Product `json:"data"`
	Meta paginationMeta   `json:"meta"`
}
