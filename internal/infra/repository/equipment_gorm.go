package repository

import (
	"context"
	"errors"
	"strings"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"

	"gorm.io/gorm"
)

type EquipmentGormRepository struct {
	db *gorm.DB
}

// DI
func NewEquipmentGormRepository(db *gorm.DB) *EquipmentGormRepository {
	return &EquipmentGormRepository{db: db}
}

// 公開カタログ一覧。カテゴリ/在庫可否/キーワードで絞り込み。
func (r *EquipmentGormRepository) ListPublic(ctx context.Context, q repo.EquipmentListQuery) ([]model.Equipment, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Equipment{})

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.AvailableOnly {
		tx = tx.Where("available = ?", true)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Equipment{}, 0, err
	}

	switch q.Sort {
	case "rate_asc":
		tx = tx.Order("rate_24hr asc")
	case "rate_desc":
		tx = tx.Order("rate_24hr desc")
	default:
		//新着順
		tx = tx.Order("created_at desc")
	}

	var items []model.Equipment
	offset := (q.Page - 1) * q.Limit
	if err := tx.Limit(q.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Equipment{}, 0, err
	}

	return items, total, nil
}

func (r *EquipmentGormRepository) FindByID(ctx context.Context, equipmentID int64) (model.Equipment, error) {
	var e model.Equipment

	err := r.db.WithContext(ctx).
		Where("id = ?", equipmentID).
		First(&e).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Equipment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentGormRepository) Create(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return model.Equipment{}, err
	}
	return e, nil
}

// 全フィールド更新（管理画面の編集フォーム）
func (r *EquipmentGormRepository) Update(ctx context.Context, e model.Equipment) error {
	res := r.db.WithContext(ctx).
		Model(&model.Equipment{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"name":        e.Name,
			"category":    e.Category,
			"image_url":   e.ImageURL,
			"description": e.Description,
			"rate_12hr":   e.Rate12hr,
			"rate_24hr":   e.Rate24hr,
			"available":   e.Available,
			"updated_at":  e.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *EquipmentGormRepository) SoftDelete(ctx context.Context, equipmentID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Equipment{}, equipmentID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// availableだけを更新。他のカラムは触らない。
func (r *EquipmentGormRepository) SetAvailability(ctx context.Context, equipmentID int64, available bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Equipment{}).
		Where("id = ?", equipmentID).
		Update("available", available)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
