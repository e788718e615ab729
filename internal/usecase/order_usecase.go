package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	userRepo  repo.UserRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, userRepo repo.UserRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, userRepo: userRepo}
}

type OrderOutput struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"reference"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	EquipmentID   int64     `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	Duration      string    `json:"duration"`
	RentDate      time.Time `json:"rent_date"`
	ReturnDate    time.Time `json:"return_date"`
	Quantity      int64     `json:"quantity"`
	PaymentMode   string    `json:"payment_mode"`
	PaymentType   string    `json:"payment_type"`
	TotalCost     int64     `json:"total_cost"`
	Status        string    `json:"status"`
	HandledBy     *int64    `json:"handled_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// 自分の注文一覧。注文はアカウントに紐付かないので、
// ログインユーザーのメールアドレスで引く。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, total, err := u.orderRepo.ListByCustomerEmail(ctx, strings.ToLower(user.Email), page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderOutput(o))
	}

	return OrderListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		ID:            o.ID,
		Reference:     o.Reference,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		EquipmentID:   o.EquipmentID,
		EquipmentName: o.EquipmentNameSnapshot,
		Duration:      string(o.Duration),
		RentDate:      o.RentDate,
		ReturnDate:    o.ReturnDate,
		Quantity:      o.Quantity,
		PaymentMode:   string(o.PaymentMode),
		PaymentType:   string(o.PaymentType),
		TotalCost:     o.TotalCost,
		Status:        string(o.Status),
		HandledBy:     o.HandledBy,
		CreatedAt:     o.CreatedAt,
	}
}
