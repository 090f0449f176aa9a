package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"cafepos/internal/domain/model"
	infraRepo "cafepos/internal/infra/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テストごとに使い捨ての単一ファイルDBを作る
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cafe_test.db")
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Order{}))
	return gormDB
}

// Test: usernameのunique制約はDBでも効く
func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := infraRepo.NewUserGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "carol", Password: "pw2"}))
	err := repo.Create(ctx, &model.User{Username: "carol", Password: "other"})
	assert.Error(t, err)
}

// Test: ログイン照合は完全一致（大文字小文字も区別）
func TestUserFindByCredentials(t *testing.T) {
	repo := infraRepo.NewUserGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", Password: "pw1", FullName: "Alice Smith"}))

	u, err := repo.FindByCredentials(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Alice Smith", u.FullName)

	u, err = repo.FindByCredentials(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.FindByCredentials(ctx, "Alice", "pw1")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserFindByUsername(t *testing.T) {
	repo := infraRepo.NewUserGormRepository(newTestDB(t))
	ctx := context.Background()

	u, err := repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", Password: "pw1"}))
	u, err = repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)
}

// Test: 新しい順、同時刻は登録順
func TestOrderListAllOrdering(t *testing.T) {
	repo := infraRepo.NewOrderGormRepository(newTestDB(t))
	ctx := context.Background()

	newOrder := func(customer string, ts string) *model.Order {
		return &model.Order{
			CustomerName: customer,
			Cashier:      "alice",
			Items:        "Espresso x 1",
			Total:        decimal.RequireFromString("2.50"),
			Timestamp:    ts,
		}
	}

	_, err := repo.Create(ctx, newOrder("first", "2026-03-14 09:00:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newOrder("second", "2026-03-14 10:00:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newOrder("tie-a", "2026-03-14 11:00:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newOrder("tie-b", "2026-03-14 11:00:00"))
	require.NoError(t, err)

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)

	names := []string{orders[0].CustomerName, orders[1].CustomerName, orders[2].CustomerName, orders[3].CustomerName}
	assert.Equal(t, []string{"tie-a", "tie-b", "second", "first"}, names)
}

// Test: totalは保存と読み出しで値が変わらない
func TestOrderTotalRoundTrip(t *testing.T) {
	repo := infraRepo.NewOrderGormRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &model.Order{
		CustomerName: "Bob",
		Cashier:      "alice",
		Items:        "Cappuccino x 3",
		Total:        decimal.RequireFromString("9.60"),
		Timestamp:    "2026-03-14 09:26:53",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("9.60")), "total = %s", orders[0].Total)
}
