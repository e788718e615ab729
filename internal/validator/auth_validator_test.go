package validator_test

import (
	"context"
	"testing"

	"lensrent/internal/domain/model"
	"lensrent/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestAuthValidator_Register_OK(t *testing.T) {
	users := new(userRepoMock)
	users.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, nil)

	v := validator.NewAuthValidator(users)

	err := v.ValidateRegister(context.Background(), "Asha Verma", "asha@example.com", "password123")
	assert.NoError(t, err)
}

func TestAuthValidator_Register_ShortPassword(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateRegister(context.Background(), "Asha", "asha@example.com", "short")
	assert.ErrorIs(t, err, validator.ErrInvalidInput)
}

func TestAuthValidator_Register_BadEmail(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateRegister(context.Background(), "Asha", "asha at example", "password123")
	assert.ErrorIs(t, err, validator.ErrInvalidInput)
}

func TestAuthValidator_Register_DuplicateEmail(t *testing.T) {
	users := new(userRepoMock)
	users.On("FindByEmail", mock.Anything, "asha@example.com").Return(&model.User{ID: 1}, nil)

	v := validator.NewAuthValidator(users)

	err := v.ValidateRegister(context.Background(), "Asha", "asha@example.com", "password123")
	assert.ErrorIs(t, err, validator.ErrEmailAlreadyUsed)
}

func TestAuthValidator_Refresh_EmptyToken(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateRefresh(context.Background(), "  ", "go-test")
	assert.ErrorIs(t, err, validator.ErrInvalidRefresh)
}
