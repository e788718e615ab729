package repository

import (
	"context"
	"errors"

	"lensrent/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 公開カタログの検索条件
type EquipmentListQuery struct {
	Page          int
	Limit         int
	Q             string
	Category      string
	AvailableOnly bool
	Sort          string
}

type EquipmentRepository interface {
	ListPublic(ctx context.Context, q EquipmentListQuery) ([]model.Equipment, int64, error)
	FindByID(ctx context.Context, equipmentID int64) (model.Equipment, error)
	Create(ctx context.Context, e model.Equipment) (model.Equipment, error)
	Update(ctx context.Context, e model.Equipment) error
	SoftDelete(ctx context.Context, equipmentID int64) error

	//availableフラグだけを更新する（他のフィールドは触らない）
	SetAvailability(ctx context.Context, equipmentID int64, available bool) error
}
