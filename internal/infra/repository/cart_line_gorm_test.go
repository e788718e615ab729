package repository_test

import (
	"context"
	"os"
	"testing"

	"lensrent/internal/domain/model"
	infraRepo "lensrent/internal/infra/repository"
	repo "lensrent/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TEST_DATABASE_URLで指定したpostgresに対して実行する。
// 未設定ならスキップ（CIや手元ではdocker composeのDBを指す）。
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Cart{}, &model.CartLine{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	return db
}

func createTestCart(t *testing.T, db *gorm.DB, userID int64) model.Cart {
	t.Helper()

	cart := model.Cart{UserID: userID, Status: model.CartStatusActive}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("cart create failed: %v", err)
	}

	t.Cleanup(func() {
		db.Where("cart_id = ?", cart.ID).Delete(&model.CartLine{})
		db.Delete(&model.Cart{}, cart.ID)
	})

	return cart
}

// 同じ(equipment, duration)を2回追加すると明細は1行のまま数量だけ増える
func TestCartLineGormRepository_Upsert_DuplicateIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	cart := createTestCart(t, db, 901)

	r := infraRepo.NewCartLineGormRepository(db)

	snap := repo.CartLineSnapshot{Name: "Tripod", ImageURL: "https://img.example/tripod.jpg", UnitPrice: 20000}

	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cart.ID, 3, model.Duration12hr, 1, snap))
	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cart.ID, 3, model.Duration12hr, 1, snap))

	lines, err := r.ListByCartID(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, int64(2), lines[0].Quantity)
	//スナップショットは最初の追加時のまま
	assert.Equal(t, "Tripod", lines[0].NameSnapshot)
	assert.Equal(t, int64(20000), lines[0].UnitPriceSnapshot)
}

// 追加回数＝数量になる
func TestCartLineGormRepository_Upsert_QuantityEqualsAddCount(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	cart := createTestCart(t, db, 902)

	r := infraRepo.NewCartLineGormRepository(db)
	snap := repo.CartLineSnapshot{Name: "Canon EOS R6", UnitPrice: 50000}

	const adds = 5
	for i := 0; i < adds; i++ {
		assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cart.ID, 4, model.Duration24hr, 1, snap))
	}

	lines, err := r.ListByCartID(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, int64(adds), lines[0].Quantity)
}

// 同じ機材でもdurationが違えば別明細になる
func TestCartLineGormRepository_Upsert_DifferentDurationCreatesSecondLine(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	cart := createTestCart(t, db, 903)

	r := infraRepo.NewCartLineGormRepository(db)

	snap12 := repo.CartLineSnapshot{Name: "Canon EOS R6", UnitPrice: 50000}
	snap24 := repo.CartLineSnapshot{Name: "Canon EOS R6", UnitPrice: 80000}

	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cart.ID, 4, model.Duration12hr, 1, snap12))
	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cart.ID, 4, model.Duration24hr, 1, snap24))

	lines, err := r.ListByCartID(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(lines))

	//それぞれが選んだ区分のレートを保持している
	byDuration := map[model.RentalDuration]model.CartLine{}
	for _, l := range lines {
		byDuration[l.Duration] = l
	}
	assert.Equal(t, int64(50000), byDuration[model.Duration12hr].UnitPriceSnapshot)
	assert.Equal(t, int64(80000), byDuration[model.Duration24hr].UnitPriceSnapshot)
	assert.Equal(t, int64(1), byDuration[model.Duration12hr].Quantity)
	assert.Equal(t, int64(1), byDuration[model.Duration24hr].Quantity)
}

// 別カートの同じ(equipment, duration)には影響しない
func TestCartLineGormRepository_Upsert_ScopedToCart(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	cartA := createTestCart(t, db, 904)
	cartB := createTestCart(t, db, 905)

	r := infraRepo.NewCartLineGormRepository(db)
	snap := repo.CartLineSnapshot{Name: "Tripod", UnitPrice: 20000}

	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cartA.ID, 3, model.Duration12hr, 1, snap))
	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cartB.ID, 3, model.Duration12hr, 1, snap))
	assert.NoError(t, r.UpsertByEquipmentAndDuration(ctx, cartA.ID, 3, model.Duration12hr, 1, snap))

	linesA, err := r.ListByCartID(ctx, cartA.ID)
	assert.NoError(t, err)
	linesB, err := r.ListByCartID(ctx, cartB.ID)
	assert.NoError(t, err)

	assert.Equal(t, 1, len(linesA))
	assert.Equal(t, int64(2), linesA[0].Quantity)
	assert.Equal(t, 1, len(linesB))
	assert.Equal(t, int64(1), linesB[0].Quantity)
}
