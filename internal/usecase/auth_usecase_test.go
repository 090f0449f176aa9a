package usecase_test

import (
	"context"
	"testing"

	"cafepos/internal/domain/model"
	"cafepos/internal/repository"
	"cafepos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// UserRepository モック
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, username string, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

// =====================
// AuthValidator モック
// =====================

type MockAuthValidator struct {
	mock.Mock
}

func (m *MockAuthValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

var _ usecase.AuthValidator = (*MockAuthValidator)(nil)

// Test: 登録はパスワードを平文のまま保存する
func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	v := new(MockAuthValidator)
	uc := usecase.NewRegisterUsecase(userRepo, v)

	v.On("ValidateRegister", mock.Anything, "carol", "pw2").Return(nil)

	var saved *model.User
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		saved = u
		return true
	})).Return(nil)

	err := uc.Execute(context.Background(), usecase.RegisterInput{
		Username: "carol",
		Password: "pw2",
		FullName: "Carol Jones",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "carol", saved.Username)
	assert.Equal(t, "pw2", saved.Password)
	assert.Equal(t, "Carol Jones", saved.FullName)
	userRepo.AssertExpectations(t)
}

// Test: usernameが既にあれば何も書かない
func TestRegisterUsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	v := new(MockAuthValidator)
	uc := usecase.NewRegisterUsecase(userRepo, v)

	v.On("ValidateRegister", mock.Anything, "carol", "pw2").Return(usecase.ErrUsernameTaken)

	err := uc.Execute(context.Background(), usecase.RegisterInput{
		Username: "carol",
		Password: "pw2",
	})

	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: ログイン成功はセッションに積む値を返す
func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecase.NewLoginUsecase(userRepo)

	userRepo.On("FindByCredentials", mock.Anything, "alice", "pw1").
		Return(&model.User{ID: 1, Username: "alice", Password: "pw1", FullName: "Alice Smith"}, nil)

	out, err := uc.Execute(context.Background(), usecase.LoginInput{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "Alice Smith", out.FullName)
}

// Test: 一致しなければErrInvalidCredentials
func TestLoginInvalidCredentials(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecase.NewLoginUsecase(userRepo)

	userRepo.On("FindByCredentials", mock.Anything, "alice", "wrong").Return(nil, nil)

	_, err := uc.Execute(context.Background(), usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}
