package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 支払い方法（現金/UPIのラベルのみ。決済連携はしない）
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
)

// 前払い（30%）か全額か
type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "advance"
	PaymentTypeFull    PaymentType = "full"
)

// 注文。チェックアウト時にカート明細1行につき1件作成。
// 顧客情報はチェックアウトフォームの入力をそのまま保存する。
type Order struct {
	ID                    int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference             string         `gorm:"type:uuid;not null;index" json:"reference"`
	CustomerName          string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail         string         `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	CustomerPhone         string         `gorm:"type:varchar(30);not null" json:"customer_phone"`
	EquipmentID           int64          `gorm:"not null;index" json:"equipment_id"`
	EquipmentNameSnapshot string         `gorm:"type:varchar(255);not null" json:"equipment_name_snapshot"`
	Duration              RentalDuration `gorm:"type:varchar(10);not null" json:"duration"`
	RentDate              time.Time      `gorm:"not null" json:"rent_date"`
	ReturnDate            time.Time      `gorm:"not null" json:"return_date"`
	Quantity              int64          `gorm:"not null" json:"quantity"`
	PaymentMode           PaymentMode    `gorm:"type:varchar(10);not null" json:"payment_mode"`
	PaymentType           PaymentType    `gorm:"type:varchar(10);not null" json:"payment_type"`
	TotalCost             int64          `gorm:"not null" json:"total_cost"`
	Status                OrderStatus    `gorm:"type:varchar(20);not null;index" json:"status"`
	HandledBy             *int64         `gorm:"index" json:"handled_by"`
	Notes                 string         `gorm:"type:text" json:"notes"`
	CreatedAt             time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 許可された遷移かどうか。
// pending -> confirmed/cancelled、confirmed -> completed のみ。
func CanTransitionOrder(from OrderStatus, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusConfirmed || to == OrderStatusCancelled
	case OrderStatusConfirmed:
		return to == OrderStatusCompleted
	default:
		// completed / cancelled は終端
		return false
	}
}
