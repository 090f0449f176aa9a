package repository

import (
	"context"

	"cafepos/internal/domain/model"
)

type OrderRepository interface {
	//注文を1件作成して採番されたIDを返す。作成後の注文は更新しない。
	Create(ctx context.Context, order *model.Order) (int64, error)
	//全注文を新しい順で返す（同時刻は登録順）
	ListAll(ctx context.Context) ([]model.Order, error)
}
