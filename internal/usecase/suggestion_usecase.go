package usecase

import (
	"context"
	"net/http"
	"time"

	repo "lensrent/internal/repository"
)

// 管理者向け受信箱。チェックアウトで自動生成されたものを読む/消すだけ。
type SuggestionUsecase struct {
	suggestionRepo repo.SuggestionRepository
}

func NewSuggestionUsecase(suggestionRepo repo.SuggestionRepository) *SuggestionUsecase {
	return &SuggestionUsecase{suggestionRepo: suggestionRepo}
}

type SuggestionOutput struct {
	ID             int64     `json:"id"`
	SuggestionText string    `json:"suggestion_text"`
	SuggestedBy    string    `json:"suggested_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type SuggestionListOutput struct {
	Items []SuggestionOutput `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

func (u *SuggestionUsecase) List(ctx context.Context, page int, limit int) (SuggestionListOutput, error) {
	if page < 1 {
		return SuggestionListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return SuggestionListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.suggestionRepo.List(ctx, page, limit)
	if err != nil {
		return SuggestionListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]SuggestionOutput, 0, len(items))
	for _, s := range items {
		outs = append(outs, SuggestionOutput{
			ID:             s.ID,
			SuggestionText: s.SuggestionText,
			SuggestedBy:    s.SuggestedBy,
			CreatedAt:      s.CreatedAt,
		})
	}

	return SuggestionListOutput{Items: outs, Total: total, Page: page, Limit: limit}, nil
}

func (u *SuggestionUsecase) Delete(ctx context.Context, suggestionID int64) error {
	if suggestionID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.suggestionRepo.DeleteByID(ctx, suggestionID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
