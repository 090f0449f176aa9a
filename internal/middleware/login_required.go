package middleware

import (
	"net/http"

	"cafepos/internal/session"

	"github.com/labstack/echo/v4"
)

// LoginRequiredは未ログインのリクエストをログイン画面へ戻すガード。
// DBには触らない。flashを積んでredirectするだけで、中のハンドラは実行しない。
func LoginRequired(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := session.From(c)
			if !sess.LoggedIn() {
				sess.AddFlash("Please log in to access this page.", "warning")
				if err := sessions.Save(c, sess); err != nil {
					return err
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			return next(c)
		}
	}
}
