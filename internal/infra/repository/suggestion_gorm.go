package repository

import (
	"context"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"

	"gorm.io/gorm"
)

type SuggestionGormRepository struct {
	db *gorm.DB
}

func NewSuggestionGormRepository(db *gorm.DB) *SuggestionGormRepository {
	return &SuggestionGormRepository{db: db}
}

func (r *SuggestionGormRepository) Create(ctx context.Context, s model.Suggestion) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

// 作成日時の降順で一覧
func (r *SuggestionGormRepository) List(ctx context.Context, page int, limit int) ([]model.Suggestion, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Suggestion{}).Count(&total).Error; err != nil {
		return []model.Suggestion{}, 0, err
	}

	var items []model.Suggestion
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Suggestion{}, 0, err
	}

	return items, total, nil
}

func (r *SuggestionGormRepository) DeleteByID(ctx context.Context, suggestionID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Suggestion{}, suggestionID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
