package usecase

import (
	"context"
	"errors"
	"time"

	"cafepos/internal/domain/model"
	"cafepos/internal/repository"
)

var (
	// 入力不足（username/passwordが空）
	ErrValidation = errors.New("validation error")
	// usernameが既に使用済み
	ErrUsernameTaken = errors.New("username already exists")
	// ユーザー名またはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, username string, password string) error
}

// 登録の入力
type RegisterInput struct {
	Username string
	Password string
	FullName string
}

// RegisterUsecaseはユーザー登録の処理。
type RegisterUsecase struct {
	userRepo  repository.UserRepository
	validator AuthValidator
}

// DI
func NewRegisterUsecase(userRepo repository.UserRepository, validator AuthValidator) *RegisterUsecase {
	return &RegisterUsecase{userRepo: userRepo, validator: validator}
}

// 登録実行。セッションには触らない。
func (u *RegisterUsecase) Execute(ctx context.Context, in RegisterInput) error {
	if err := u.validator.ValidateRegister(ctx, in.Username, in.Password); err != nil {
		return err
	}

	// パスワードは平文のまま保存する。ハッシュ化するとログインの完全一致比較が成り立たなくなる。
	user := &model.User{
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
	}

	return u.userRepo.Create(ctx, user)
}

// ログインの入力
type LoginInput struct {
	Username string
	Password string
}

// セッションに積む値
type LoginOutput struct {
	Username string
	FullName string
}

type LoginUsecase struct {
	userRepo repository.UserRepository
}

// DI
func NewLoginUsecase(userRepo repository.UserRepository) *LoginUsecase {
	return &LoginUsecase{userRepo: userRepo}
}

// ログイン処理を実行する。
// username+passwordの完全一致（大文字小文字区別）。回数制限は設けない。
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	user, err := u.userRepo.FindByCredentials(ctx, in.Username, in.Password)
	if err != nil {
		return out, err
	}
	if user == nil {
		return out, ErrInvalidCredentials
	}

	out.Username = user.Username
	out.FullName = user.FullName
	return out, nil
}
