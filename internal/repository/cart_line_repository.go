package repository

import (
	"context"

	"lensrent/internal/domain/model"
)

// Upsert時に保存するスナップショット一式
type CartLineSnapshot struct {
	Name      string
	ImageURL  string
	UnitPrice int64
}

type CartLineRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartLine, error)
	FindByID(ctx context.Context, lineID int64) (model.CartLine, error)

	//同じ(equipment, duration)の明細があれば数量加算、無ければ新規作成
	UpsertByEquipmentAndDuration(ctx context.Context, cartID int64, equipmentID int64, duration model.RentalDuration, addQty int64, snap CartLineSnapshot) error

	UpdateQuantity(ctx context.Context, lineID int64, qty int64) error
	DeleteByID(ctx context.Context, lineID int64) error

	//lineがそのユーザーのカートに属しているか
	IsOwnedByUser(ctx context.Context, lineID int64, userID int64) (bool, error)
}
