package usecase_test

import (
	"context"
	"testing"

	"lensrent/internal/domain/model"
	"lensrent/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// 注文はアカウントに紐付かないので、ログインユーザーのメールで引く
func TestOrderUsecase_ListMyOrders_LooksUpByEmail(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	userRepo := new(UserRepoMock)

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Email: "asha@example.com"}, nil)
	orderRepo.On("ListByCustomerEmail", mock.Anything, "asha@example.com", 1, 20).Return([]model.Order{
		{ID: 10, CustomerEmail: "asha@example.com", Status: model.OrderStatusPending},
	}, int64(1), nil)

	uc := usecase.NewOrderUsecase(orderRepo, userRepo)

	out, err := uc.ListMyOrders(ctx, 1, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, "pending", out.Items[0].Status)

	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestOrderUsecase_ListMyOrders_UnknownUser(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByID", mock.Anything, int64(1)).Return(nil, nil)

	uc := usecase.NewOrderUsecase(new(OrderRepoMock), userRepo)

	_, err := uc.ListMyOrders(context.Background(), 1, 1, 20)
	assertErrContains(t, err, "unauthorized")
}

func TestOrderUsecase_ListMyOrders_InvalidPaging(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderRepoMock), new(UserRepoMock))

	_, err := uc.ListMyOrders(context.Background(), 1, 0, 20)
	assertErrContains(t, err, "invalid page")

	_, err = uc.ListMyOrders(context.Background(), 1, 1, 101)
	assertErrContains(t, err, "invalid limit")
}
