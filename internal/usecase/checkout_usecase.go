package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"

	"github.com/google/uuid"
)

// 前払いの割合は30%固定
const advanceRatioPercent = 30

// usecaseがValidatorInterfaceに依存する約束
type CheckoutValidator interface {
	ValidateCheckout(ctx context.Context, in CheckoutInput) error
}

type CheckoutUsecase struct {
	tx        repo.TransactionManager
	validator CheckoutValidator
}

func NewCheckoutUsecase(tx repo.TransactionManager, validator CheckoutValidator) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, validator: validator}
}

type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	RentDate      string // RFC3339
	ReturnDate    string // RFC3339
	PaymentMode   string // cash / upi
	PaymentType   string // advance / full
	Notes         string
}

type CheckoutOutput struct {
	Reference      string  `json:"reference"`
	OrderIDs       []int64 `json:"order_ids"`
	Duration       string  `json:"duration"`
	TotalPrice     int64   `json:"total_price"`
	AmountDueNow   int64   `json:"amount_due_now"`
	AmountDueLater int64   `json:"amount_due_later"`
}

// AdvanceOf は合計の30%を四捨五入（paise単位）で返す。
// 残額は total - AdvanceOf(total) なので2つの合計は必ずtotalになる。
func AdvanceOf(total int64) int64 {
	return (total*advanceRatioPercent + 50) / 100
}

// ClassifyDuration はレンタル開始・返却の実時間から注文の時間ラベルを決める。
// 切り上げた時間数が12以下なら12hr、それ以外は24hr。
// 明細が選んだ料金区分とは独立に計算される（既存仕様のまま）。
func ClassifyDuration(rentDate time.Time, returnDate time.Time) model.RentalDuration {
	hours := int64(0)
	if d := returnDate.Sub(rentDate); d > 0 {
		hours = int64((d + time.Hour - 1) / time.Hour)
	}
	if hours <= 12 {
		return model.Duration12hr
	}
	return model.Duration24hr
}

// Checkout はカートの全明細から注文を作る。
// 明細ごとに注文1件＋チェックアウト全体の要約を受信箱に1件。
// すべて1つのトランザクションで確定し、成功したらカートを空にする。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validator.ValidateCheckout(ctx, in); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rentDate, err := time.Parse(time.RFC3339, in.RentDate)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid rent_date")
	}
	returnDate, err := time.Parse(time.RFC3339, in.ReturnDate)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid return_date")
	}
	if !returnDate.After(rentDate) {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "return_date must be after rent_date")
	}

	paymentMode := model.PaymentMode(in.PaymentMode)
	paymentType := model.PaymentType(in.PaymentType)

	var out CheckoutOutput

	//注文作成・要約・カートのクリアまで1トランザクション。
	//途中で失敗したら注文は1件も残らない。
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindActiveByUserID(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines, err := r.CartLines().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		//空カートは何も書き込まず終了
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		durationLabel := ClassifyDuration(rentDate, returnDate)
		reference := uuid.NewString()
		now := time.Now()

		var totalPrice int64 = 0
		orderIDs := make([]int64, 0, len(lines))

		for _, l := range lines {
			lineTotal := l.UnitPriceSnapshot * l.Quantity
			totalPrice += lineTotal

			//前払いなら明細ごとに30%
			cost := lineTotal
			if paymentType == model.PaymentTypeAdvance {
				cost = AdvanceOf(lineTotal)
			}

			orderID, err := r.Orders().Create(ctx, model.Order{
				Reference:             reference,
				CustomerName:          strings.TrimSpace(in.CustomerName),
				CustomerEmail:         strings.TrimSpace(in.CustomerEmail),
				CustomerPhone:         strings.TrimSpace(in.CustomerPhone),
				EquipmentID:           l.EquipmentID,
				EquipmentNameSnapshot: l.NameSnapshot,
				Duration:              durationLabel,
				RentDate:              rentDate,
				ReturnDate:            returnDate,
				Quantity:              l.Quantity,
				PaymentMode:           paymentMode,
				PaymentType:           paymentType,
				TotalCost:             cost,
				Status:                model.OrderStatusPending,
				Notes:                 in.Notes,
				CreatedAt:             now,
				UpdatedAt:             now,
			})
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			orderIDs = append(orderIDs, orderID)
		}

		amountDueNow := totalPrice
		amountDueLater := int64(0)
		if paymentType == model.PaymentTypeAdvance {
			amountDueNow = AdvanceOf(totalPrice)
			amountDueLater = totalPrice - amountDueNow
		}

		//管理者向けの要約を受信箱に入れる
		summary := buildCheckoutSummary(in, lines, paymentMode, paymentType, totalPrice, amountDueNow)
		if _, err := r.Suggestions().Create(ctx, model.Suggestion{
			SuggestionText: summary,
			SuggestedBy:    strings.TrimSpace(in.CustomerName),
			CreatedAt:      now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートをCHECKED_OUTにして明細をクリア（再注文防止）
		if err := r.Carts().UpdateStatus(ctx, cart.ID, model.CartStatusCheckedOut); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CheckoutOutput{
			Reference:      reference,
			OrderIDs:       orderIDs,
			Duration:       string(durationLabel),
			TotalPrice:     totalPrice,
			AmountDueNow:   amountDueNow,
			AmountDueLater: amountDueLater,
		}
		return nil
	})

	if err != nil {
		return CheckoutOutput{}, err
	}
	return out, nil
}

// paiseをルピー表記にする（660.00のような形）
func formatRupees(paise int64) string {
	return fmt.Sprintf("%d.%02d", paise/100, paise%100)
}

func buildCheckoutSummary(
	in CheckoutInput,
	lines []model.CartLine,
	paymentMode model.PaymentMode,
	paymentType model.PaymentType,
	totalPrice int64,
	amountDueNow int64,
) string {
	itemParts := make([]string, 0, len(lines))
	for _, l := range lines {
		itemParts = append(itemParts, fmt.Sprintf("%s (%dx)", l.NameSnapshot, l.Quantity))
	}

	paymentLabel := fmt.Sprintf("Full Payment (Rs.%s)", formatRupees(totalPrice))
	if paymentType == model.PaymentTypeAdvance {
		paymentLabel = fmt.Sprintf("Advance (Rs.%s)", formatRupees(amountDueNow))
	}

	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`New Order Request:
Customer: %s
Email: %s
Phone: %s
Items: %s
Rent Date: %s
Return Date: %s
Payment Mode: %s
Payment Type: %s
Total Amount: Rs.%s
Notes: %s`,
		strings.TrimSpace(in.CustomerName),
		strings.TrimSpace(in.CustomerEmail),
		strings.TrimSpace(in.CustomerPhone),
		strings.Join(itemParts, ", "),
		in.RentDate,
		in.ReturnDate,
		strings.ToUpper(string(paymentMode)),
		paymentLabel,
		formatRupees(totalPrice),
		notes,
	)
}
