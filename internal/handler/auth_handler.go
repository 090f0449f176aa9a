package handler

import (
	"errors"
	"net/http"

	"cafepos/internal/session"
	"cafepos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *usecase.RegisterUsecase // 登録usecase
	loginUC    *usecase.LoginUsecase    // ログインusecase
	sessions   *session.Manager
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *usecase.RegisterUsecase,
	loginUC *usecase.LoginUsecase,
	sessions *session.Manager,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		sessions:   sessions,
	}
}

// RegisterFormはGET /register のハンドラ
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return render(c, h.sessions, "register", nil)
}

// RegisterはPOST /register のハンドラ
func (h *AuthHandler) Register(c echo.Context) error {
	err := h.registerUC.Execute(c.Request().Context(), usecase.RegisterInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		FullName: c.FormValue("full_name"),
	})

	sess := session.From(c)
	switch {
	case err == nil:
		sess.AddFlash("Registration successful! Please log in.", "success")
		if err := h.sessions.Save(c, sess); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/login")

	case errors.Is(err, usecase.ErrUsernameTaken):
		// レコードは書かずに同じ画面へ戻す
		sess.AddFlash("Username already exists.", "danger")
		return render(c, h.sessions, "register", nil)

	case errors.Is(err, usecase.ErrValidation):
		sess.AddFlash("Username and password are required.", "danger")
		return render(c, h.sessions, "register", nil)

	default:
		// DB障害などはそのまま500へ
		return err
	}
}

// LoginFormはGET /login のハンドラ
func (h *AuthHandler) LoginForm(c echo.Context) error {
	// ログイン済みならトップへ
	if session.From(c).LoggedIn() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return render(c, h.sessions, "login", nil)
}

// LoginはPOST /login のハンドラ
func (h *AuthHandler) Login(c echo.Context) error {
	sess := session.From(c)
	if sess.LoggedIn() {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	out, err := h.loginUC.Execute(c.Request().Context(), usecase.LoginInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// セッションには触らずログイン画面を出し直す
			sess.AddFlash("Invalid username or password.", "danger")
			return render(c, h.sessions, "login", nil)
		}
		return err
	}

	sess.SetUser(out.Username, out.FullName)
	sess.AddFlash("Login successful!", "success")
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// LogoutはGET /logout のハンドラ。
// ログアウト済みでも同じ挙動（redirect+flashのみ）。
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := session.From(c)
	sess.ClearUser()
	sess.AddFlash("You have been logged out.", "success")
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
