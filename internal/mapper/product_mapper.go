package mapper

import (
	"strings"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var tags []string
	if p.Tags != "" {
		tags = strings.Split(p.Tags, ",")
	}

	return &entity.Product{
		Id:    p.Id,
		Title: p.Title,
		Tags:  tags,
		Link:  p.Link,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:    p.Id,
		Title: p.Title,
		Tags:  strings.Join(p.Tags, ","),
		Link:  p.Link,
	}
}
