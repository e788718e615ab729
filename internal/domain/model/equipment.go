package model

import (
	"time"

	"gorm.io/gorm"
)

// カメラ/アクセサリの区分
type EquipmentCategory string

const (
	CategoryCamera    EquipmentCategory = "camera"
	CategoryAccessory EquipmentCategory = "accessory"
)

// レンタル時間（12時間/24時間の2択）
type RentalDuration string

const (
	Duration12hr RentalDuration = "12hr"
	Duration24hr RentalDuration = "24hr"
)

// 機材（カメラ・アクセサリ共通）。
// 料金はpaise（最小単位）のint64で持つ。
type Equipment struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string            `gorm:"type:varchar(255);not null" json:"name"`
	Category    EquipmentCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	ImageURL    string            `gorm:"type:varchar(512)" json:"image_url"`
	Description string            `gorm:"type:text" json:"description"`
	Rate12hr    int64             `gorm:"not null" json:"rate_12hr"`
	Rate24hr    int64             `gorm:"not null" json:"rate_24hr"`
	Available   bool              `gorm:"not null;default:true;index" json:"available"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

// 指定した時間区分の料金を返す
func (e Equipment) RateFor(d RentalDuration) int64 {
	if d == Duration12hr {
		return e.Rate12hr
	}
	return e.Rate24hr
}
