package repository

import (
	"context"

	"cafepos/internal/domain/model"
	domainrepo "cafepos/internal/repository"

	"gorm.io/gorm"
)

type orderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) domainrepo.OrderRepository {
	return &orderGormRepository{db: db}
}

// Createは注文を1件作成して採番されたIDを返す。
func (r *orderGormRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// ListAllは全注文を新しい順で返す。
// 同時刻（秒精度）の注文は登録順に並べるためidを第2キーにする。
func (r *orderGormRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var items []model.Order

	err := r.db.WithContext(ctx).
		Order("timestamp desc, id asc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}

	return items, nil
}
