package contract

import (
	"context"

	"woodshop-assistant-be/internal/entity"
)

type TrackedEventRepository interface {
	Create(ctx context.Context, event *entity.TrackedEvent) error
}
