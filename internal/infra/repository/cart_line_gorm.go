package repository

import (
	"context"
	"errors"
	"time"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartLineGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartLineGormRepository(db *gorm.DB) *CartLineGormRepository {
	return &CartLineGormRepository{db: db}
}

// カート明細を一覧取得
func (r *CartLineGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartLine, error) {
	var lines []model.CartLine

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&lines).Error; err != nil {
		return []model.CartLine{}, err
	}

	return lines, nil
}

// 明細を取得
func (r *CartLineGormRepository) FindByID(ctx context.Context, lineID int64) (model.CartLine, error) {
	var line model.CartLine

	err := r.db.WithContext(ctx).
		Where("id = ?", lineID).
		First(&line).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartLine{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartLine{}, err
	}
	return line, nil
}

// 同じ(equipment, duration)は数量加算
func (r *CartLineGormRepository) UpsertByEquipmentAndDuration(ctx context.Context, cartID int64, equipmentID int64, duration model.RentalDuration, addQty int64, snap repo.CartLineSnapshot) error {
	if addQty <= 0 {
		return errors.New("invalid quantity")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line model.CartLine

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND equipment_id = ? AND duration = ?", cartID, equipmentID, duration).
			First(&line).Error

		if err == nil {
			// 既存ありだったら数量を増やす
			newQty := line.Quantity + addQty

			res := tx.Model(&model.CartLine{}).
				Where("id = ?", line.ID).
				Update("quantity", newQty)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		//無い場合は新規作成。追加時点の料金と表示情報をスナップショット。
		now := time.Now()
		newLine := model.CartLine{
			CartID:            cartID,
			EquipmentID:       equipmentID,
			Duration:          duration,
			NameSnapshot:      snap.Name,
			ImageURLSnapshot:  snap.ImageURL,
			UnitPriceSnapshot: snap.UnitPrice,
			Quantity:          addQty,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		if err := tx.Create(&newLine).Error; err != nil {
			return err
		}

		return nil
	})
}

// 明細の数量を更新
func (r *CartLineGormRepository) UpdateQuantity(ctx context.Context, lineID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartLine{}).
		Where("id = ?", lineID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除
func (r *CartLineGormRepository) DeleteByID(ctx context.Context, lineID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartLine{}, lineID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

//lineが、そのuserのカートに属しているかを判定

func (r *CartLineGormRepository) IsOwnedByUser(ctx context.Context, lineID int64, userID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table("cart_lines").
		Joins("join carts on carts.id = cart_lines.cart_id").
		Where("cart_lines.id = ? AND carts.user_id = ?", lineID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
