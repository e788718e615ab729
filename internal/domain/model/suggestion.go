package model

import "time"

// 管理者向けの受信箱。チェックアウト時に自動生成され、管理者が手動で削除する。
type Suggestion struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SuggestionText string    `gorm:"type:text;not null" json:"suggestion_text"`
	SuggestedBy    string    `gorm:"type:varchar(255);not null" json:"suggested_by"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
