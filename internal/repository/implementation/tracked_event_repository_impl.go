package implementation

import (
	"context"
	"encoding/json"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/model"
	"woodshop-assistant-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TrackedEventRepositoryImpl struct {
	db *gorm.DB
}

func NewTrackedEventRepository(db *gorm.DB) contract.TrackedEventRepository {
	return &TrackedEventRepositoryImpl{db: db}
}

func (r *TrackedEventRepositoryImpl) Create(ctx context.Context, event *entity.TrackedEvent) error {
	properties, err := json.Marshal(event.Properties)
	if err != nil {
		return err
	}

	m := model.TrackedEvent{
		Id:         event.Id,
		UserId:     event.UserId,
		EventType:  event.EventType,
		Properties: datatypes.JSON(properties),
		CreatedAt:  event.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}
