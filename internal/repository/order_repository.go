package repository

import (
	"context"
	"time"

	"lensrent/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page          int
	Limit         int
	Status        string
	CustomerEmail string
	From          *time.Time
	To            *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	ListByCustomerEmail(ctx context.Context, email string, page int, limit int) ([]model.Order, int64, error)

	//ステータスと担当者をまとめて更新
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, handledBy int64) error

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
}
