package repository

import (
	"context"

	repo "lensrent/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders      repo.OrderRepository
	carts       repo.CartRepository
	cartLines   repo.CartLineRepository
	equipments  repo.EquipmentRepository
	suggestions repo.SuggestionRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository           { return r.orders }
func (r *txReposGorm) Carts() repo.CartRepository             { return r.carts }
func (r *txReposGorm) CartLines() repo.CartLineRepository     { return r.cartLines }
func (r *txReposGorm) Equipments() repo.EquipmentRepository   { return r.equipments }
func (r *txReposGorm) Suggestions() repo.SuggestionRepository { return r.suggestions }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:      NewOrderGormRepository(tx),
			carts:       NewCartGormRepository(tx),
			cartLines:   NewCartLineGormRepository(tx),
			equipments:  NewEquipmentGormRepository(tx),
			suggestions: NewSuggestionGormRepository(tx),
		}
		return fn(r)
	})
}
