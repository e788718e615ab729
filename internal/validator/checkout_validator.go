package validator

import (
	"context"
	"errors"
	"strings"

	"lensrent/internal/usecase"
)

var (
	ErrMissingCustomerInfo = errors.New("customer name, email and phone are required")
	ErrInvalidPaymentMode  = errors.New("invalid payment_mode")
	ErrInvalidPaymentType  = errors.New("invalid payment_type")
	ErrMissingRentalDates  = errors.New("rent_date and return_date are required")
)

type checkoutValidator struct{}

func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// チェックアウトフォームの必須項目を検証。
// 日付の中身（パース・前後関係）はusecase側で見る。
func (v *checkoutValidator) ValidateCheckout(ctx context.Context, in usecase.CheckoutInput) error {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerEmail) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" {
		return ErrMissingCustomerInfo
	}

	if !isEmailLike(strings.TrimSpace(in.CustomerEmail)) {
		return ErrInvalidInput
	}

	if strings.TrimSpace(in.RentDate) == "" || strings.TrimSpace(in.ReturnDate) == "" {
		return ErrMissingRentalDates
	}

	switch in.PaymentMode {
	case "cash", "upi":
	default:
		return ErrInvalidPaymentMode
	}

	switch in.PaymentType {
	case "advance", "full":
	default:
		return ErrInvalidPaymentType
	}

	return nil
}
