package repository

import (
	"context"

	"lensrent/internal/domain/model"
)

type SuggestionRepository interface {
	Create(ctx context.Context, s model.Suggestion) (int64, error)

	//作成日時の降順
	List(ctx context.Context, page int, limit int) ([]model.Suggestion, int64, error)
	DeleteByID(ctx context.Context, suggestionID int64) error
}
