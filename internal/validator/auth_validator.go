package validator

import (
	"context"

	"cafepos/internal/repository"
	"cafepos/internal/usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// 登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	// 必須チェック（usernameは空文字不可）
	if username == "" || password == "" {
		return usecase.ErrValidation
	}

	// username重複チェック（DBが必要）
	u, err := v.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u != nil {
		return usecase.ErrUsernameTaken
	}

	return nil
}
