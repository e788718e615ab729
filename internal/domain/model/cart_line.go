package model

import "time"

// カートの明細。
// (cart_id, equipment_id, duration) で1行。同じ組み合わせの追加は数量加算。
// 追加時点の料金と表示用の名前/画像を必ずスナップショットで保存。
type CartLine struct {
	ID                int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID            int64          `gorm:"not null;index:idx_cart_equipment_duration,unique" json:"cart_id"`
	EquipmentID       int64          `gorm:"not null;index:idx_cart_equipment_duration,unique" json:"equipment_id"`
	Duration          RentalDuration `gorm:"type:varchar(10);not null;index:idx_cart_equipment_duration,unique" json:"duration"`
	NameSnapshot      string         `gorm:"type:varchar(255);not null" json:"name_snapshot"`
	ImageURLSnapshot  string         `gorm:"type:varchar(512)" json:"image_url_snapshot"`
	UnitPriceSnapshot int64          `gorm:"not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
	Quantity          int64          `gorm:"not null" json:"quantity"`
	CreatedAt         time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
