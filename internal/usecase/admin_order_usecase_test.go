package usecase_test

import (
	"context"
	"testing"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"
	"lensrent/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminOrderUsecase_List_InvalidPage(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(OrderRepoMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestAdminOrderUsecase_List_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(OrderRepoMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 20, Status: "paid"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_List_Success(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)

	f := repo.AdminOrderListFilter{Page: 1, Limit: 20, Status: "pending"}
	orderRepo.On("ListAdmin", mock.Anything, f).Return([]model.Order{
		{ID: 10, Status: model.OrderStatusPending},
		{ID: 11, Status: model.OrderStatusPending},
	}, int64(2), nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo)

	out, err := uc.List(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, int64(2), out.Total)

	orderRepo.AssertExpectations(t)
}

// 遷移マトリクス。pending -> confirmed/cancelled と confirmed -> completed のみ許可。
func TestAdminOrderUsecase_UpdateStatus_TransitionMatrix(t *testing.T) {
	cases := []struct {
		from    model.OrderStatus
		to      model.OrderStatus
		allowed bool
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, false},
		{model.OrderStatusConfirmed, model.OrderStatusCompleted, true},
		{model.OrderStatusConfirmed, model.OrderStatusCancelled, false},
		{model.OrderStatusConfirmed, model.OrderStatusPending, false},
		{model.OrderStatusCompleted, model.OrderStatusPending, false},
		{model.OrderStatusCompleted, model.OrderStatusConfirmed, false},
		{model.OrderStatusCompleted, model.OrderStatusCancelled, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusConfirmed, false},
		{model.OrderStatusCancelled, model.OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			orderRepo := new(OrderRepoMock)
			orderRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, Status: tc.from}, nil)
			if tc.allowed {
				orderRepo.On("UpdateStatus", mock.Anything, int64(10), tc.to, int64(5)).Return(nil)
			}

			uc := usecase.NewAdminOrderUsecase(orderRepo)

			err := uc.UpdateStatus(context.Background(), 5, 10, usecase.AdminUpdateOrderStatusInput{Status: string(tc.to)})
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assertErrContains(t, err, "invalid transition")
				orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestAdminOrderUsecase_UpdateStatus_SameStatus_NoOp(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPending}, nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo)

	err := uc.UpdateStatus(context.Background(), 5, 10, usecase.AdminUpdateOrderStatusInput{Status: "pending"})
	assert.NoError(t, err)

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(OrderRepoMock))

	err := uc.UpdateStatus(context.Background(), 5, 10, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewAdminOrderUsecase(orderRepo)

	err := uc.UpdateStatus(context.Background(), 5, 99, usecase.AdminUpdateOrderStatusInput{Status: "confirmed"})
	assertErrContains(t, err, "not found")
}

// 担当者が記録される
func TestAdminOrderUsecase_UpdateStatus_RecordsHandler(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusConfirmed, int64(42)).Return(nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo)

	err := uc.UpdateStatus(context.Background(), 42, 10, usecase.AdminUpdateOrderStatusInput{Status: "confirmed"})
	assert.NoError(t, err)

	orderRepo.AssertExpectations(t)
}
