package usecase_test

import (
	"context"
	"strings"
	"testing"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type EquipmentRepoMock struct{ mock.Mock }

func (m *EquipmentRepoMock) ListPublic(ctx context.Context, q repo.EquipmentListQuery) ([]model.Equipment, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Equipment)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *EquipmentRepoMock) FindByID(ctx context.Context, equipmentID int64) (model.Equipment, error) {
	args := m.Called(ctx, equipmentID)
	e, _ := args.Get(0).(model.Equipment)
	return e, args.Error(1)
}

func (m *EquipmentRepoMock) Create(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(model.Equipment)
	return out, args.Error(1)
}

func (m *EquipmentRepoMock) Update(ctx context.Context, e model.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *EquipmentRepoMock) SoftDelete(ctx context.Context, equipmentID int64) error {
	args := m.Called(ctx, equipmentID)
	return args.Error(0)
}

func (m *EquipmentRepoMock) SetAvailability(ctx context.Context, equipmentID int64, available bool) error {
	args := m.Called(ctx, equipmentID, available)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error {
	args := m.Called(ctx, cartID, status)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartLineRepoMock struct{ mock.Mock }

func (m *CartLineRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, cartID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *CartLineRepoMock) FindByID(ctx context.Context, lineID int64) (model.CartLine, error) {
	args := m.Called(ctx, lineID)
	l, _ := args.Get(0).(model.CartLine)
	return l, args.Error(1)
}

func (m *CartLineRepoMock) UpsertByEquipmentAndDuration(ctx context.Context, cartID int64, equipmentID int64, duration model.RentalDuration, addQty int64, snap repo.CartLineSnapshot) error {
	args := m.Called(ctx, cartID, equipmentID, duration, addQty, snap)
	return args.Error(0)
}

func (m *CartLineRepoMock) UpdateQuantity(ctx context.Context, lineID int64, qty int64) error {
	args := m.Called(ctx, lineID, qty)
	return args.Error(0)
}

func (m *CartLineRepoMock) DeleteByID(ctx context.Context, lineID int64) error {
	args := m.Called(ctx, lineID)
	return args.Error(0)
}

func (m *CartLineRepoMock) IsOwnedByUser(ctx context.Context, lineID int64, userID int64) (bool, error) {
	args := m.Called(ctx, lineID, userID)
	return args.Bool(0), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListByCustomerEmail(ctx context.Context, email string, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, email, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, handledBy int64) error {
	args := m.Called(ctx, orderID, status, handledBy)
	return args.Error(0)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type SuggestionRepoMock struct{ mock.Mock }

func (m *SuggestionRepoMock) Create(ctx context.Context, s model.Suggestion) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SuggestionRepoMock) List(ctx context.Context, page int, limit int) ([]model.Suggestion, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Suggestion)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *SuggestionRepoMock) DeleteByID(ctx context.Context, suggestionID int64) error {
	args := m.Called(ctx, suggestionID)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type RefreshTokenRepoMock struct{ mock.Mock }

func (m *RefreshTokenRepoMock) Create(ctx context.Context, rt *model.RefreshToken) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *RefreshTokenRepoMock) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *RefreshTokenRepoMock) MarkUsed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RefreshTokenRepoMock) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RefreshTokenRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders      repo.OrderRepository
	carts       repo.CartRepository
	cartLines   repo.CartLineRepository
	equipments  repo.EquipmentRepository
	suggestions repo.SuggestionRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository           { return r.orders }
func (r *TxReposMock) Carts() repo.CartRepository             { return r.carts }
func (r *TxReposMock) CartLines() repo.CartLineRepository     { return r.cartLines }
func (r *TxReposMock) Equipments() repo.EquipmentRepository   { return r.equipments }
func (r *TxReposMock) Suggestions() repo.SuggestionRepository { return r.suggestions }

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
