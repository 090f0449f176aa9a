package repository

import (
	"context"

	"cafepos/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（username重複はDBのunique制約でも弾かれる）
	Create(ctx context.Context, user *model.User) error
	//usernameからユーザーを1件取得する。見つからなければ(nil, nil)。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	//username+passwordの完全一致で1件取得する（ログイン用）。一致しなければ(nil, nil)。
	FindByCredentials(ctx context.Context, username string, password string) (*model.User, error)
}
