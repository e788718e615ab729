package repository

import (
	"context"

	"lensrent/internal/domain/model"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, rt *model.RefreshToken) error
	// ハッシュで1件取得。見つからなければ (nil, nil)。
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	//used_atを現在時刻にする（ローテーション時）
	MarkUsed(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
	//replay検知時などにユーザーの全tokenを削除
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
