package usecase

import (
	"context"
	"net/http"
	"strings"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// 注文一覧（管理画面）
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (OrderListOutput, error) {
	// page/limitの最低限チェック
	if f.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch f.Status {
	case "", "pending", "confirmed", "completed", "cancelled":
	default:
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orderRepo.ListAdmin(ctx, f)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderOutput(o))
	}
	return OrderListOutput{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// ステータス更新。
// pending -> confirmed/cancelled、confirmed -> completed だけを許可。
// completed/cancelled は終端で、それ以外の遷移は400。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorUserID int64, orderID int64, in AdminUpdateOrderStatusInput) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	switch newStatus {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusCompleted, model.OrderStatusCancelled:
		// OK
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// すでに同じなら何もしない（200）
	if o.Status == newStatus {
		return nil
	}

	//許可された遷移だけ通す
	if !model.CanTransitionOrder(o.Status, newStatus) {
		return NewHTTPError(http.StatusBadRequest, "invalid transition")
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, newStatus, actorUserID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
