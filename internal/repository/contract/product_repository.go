package contract

import (
	"context"

	"woodshop-assistant-be/internal/entity"
)

// ProductRepository resolves related products by case-insensitive substring
// match between video titles and each product's tag string, distinct by id.
type ProductRepository interface {
	FindByVideoTitles(ctx context.Context, titles []string) ([]*entity.Product, error)
}
