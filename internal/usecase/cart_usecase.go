package usecase

import (
	"context"
	"net/http"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// Cart と CartLine のRepositoryは分離して受け取ります。
type CartUsecase struct {
	cartRepo      repo.CartRepository
	cartLineRepo  repo.CartLineRepository
	equipmentRepo repo.EquipmentRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartLineRepo repo.CartLineRepository,
	equipmentRepo repo.EquipmentRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:      cartRepo,
		cartLineRepo:  cartLineRepo,
		equipmentRepo: equipmentRepo,
	}
}

// price は unit_price_snapshot（追加時点の料金）を返します。
type CartLineResponse struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipment_id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Duration    string `json:"duration"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalPrice int64              `json:"total_price"`
	ItemCount  int64              `json:"item_count"`
}

type AddCartLineInput struct {
	EquipmentID int64
	Duration    string
}

type UpdateCartLineInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければACTIVEを作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddLine はカートに追加。同じ(機材, 時間)の明細は数量+1。
// 料金は選んだ時間区分のレートをスナップショット。
func (u *CartUsecase) AddLine(ctx context.Context, userID int64, in AddCartLineInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.EquipmentID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid equipment_id")
	}

	duration := model.RentalDuration(in.Duration)
	if duration != model.Duration12hr && duration != model.Duration24hr {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid duration")
	}

	// ACTIVEカート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 機材チェック（レンタル可のみ）
	e, err := u.equipmentRepo.FindByID(ctx, in.EquipmentID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !e.Available {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "not available")
	}

	// Upsert（同じ機材・同じ時間は加算）
	snap := repo.CartLineSnapshot{
		Name:      e.Name,
		ImageURL:  e.ImageURL,
		UnitPrice: e.RateFor(duration),
	}
	if err := u.cartLineRepo.UpsertByEquipmentAndDuration(ctx, cart.ID, in.EquipmentID, duration, 1, snap); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// 数量変更（所有チェック付き。1未満は拒否）。
func (u *CartUsecase) UpdateLine(ctx context.Context, userID int64, lineID int64, in UpdateCartLineInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if lineID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	owned, err := u.cartLineRepo.IsOwnedByUser(ctx, lineID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartLineRepo.UpdateQuantity(ctx, lineID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartResponse(ctx, cart.ID)
}

// 明細削除
func (u *CartUsecase) DeleteLine(ctx context.Context, userID int64, lineID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if lineID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartLineRepo.IsOwnedByUser(ctx, lineID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartLineRepo.DeleteByID(ctx, lineID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartResponse(ctx, cart.ID)
}

// カートを空にする
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		//カートが無ければ空を返すだけ
		return CartResponse{Items: []CartLineResponse{}}, nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// cartIDの明細をまとめてCartResponseを作る。
// total_priceとitem_countは読み取りのたびに再計算する。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	lines, err := u.cartLineRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartLineResponse, 0, len(lines))
	var totalPrice int64 = 0
	var itemCount int64 = 0

	for _, l := range lines {
		respItems = append(respItems, CartLineResponse{
			ID:          l.ID,
			EquipmentID: l.EquipmentID,
			Name:        l.NameSnapshot,
			ImageURL:    l.ImageURLSnapshot,
			Duration:    string(l.Duration),
			Price:       l.UnitPriceSnapshot,
			Quantity:    l.Quantity,
		})

		totalPrice += l.UnitPriceSnapshot * l.Quantity
		itemCount += l.Quantity
	}

	return CartResponse{Items: respItems, TotalPrice: totalPrice, ItemCount: itemCount}, nil
}
