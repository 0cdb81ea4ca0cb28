package products

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// ListQuery selects one page of products. Zero Page means the first page and
// zero Limit means the whole filtered set; other values, negative ones
// included, are used as given.
type ListQuery struct {
	Category string
	Page     int
	Limit    int
}

type ListResult struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}

type Stats struct {
	CountByCategory map[string]int `json:"countByCategory"`
	Total           int            `json:"total"`
}

type Store interface {
	List(ctx context.Context, q ListQuery) (ListResult, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, f Fields) (Product, error)
	Update(ctx context.Context, id string, f Fields) (Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, name string) ([]Product, error)
	Stats(ctx context.Context) (Stats, error)
}
