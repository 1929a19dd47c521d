package implementation

import (
	"context"
	"strings"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/mapper"
	"woodshop-assistant-be/internal/model"
	"woodshop-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

// buildTagConditions renders one LOWER(tags) LIKE LOWER(?) clause per title,
// joined with OR, with %-wrapped arguments for substring matching.
func buildTagConditions(titles []string) (string, []interface{}) {
	conditions := make([]string, len(titles))
	args := make([]interface{}, len(titles))
	for i, title := range titles {
		conditions[i] = "LOWER(tags) LIKE LOWER(?)"
		args[i] = "%" + title + "%"
	}
	return strings.Join(conditions, " OR "), args
}

func (r *ProductRepositoryImpl) FindByVideoTitles(ctx context.Context, titles []string) ([]*entity.Product, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	where, args := buildTagConditions(titles)

	// DISTINCT ON (id): a product matched by several video titles appears once
	var models []*model.Product
	query := "SELECT DISTINCT ON (id) id, title, tags, link FROM products WHERE " + where
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
