package handler

import (
	"net/http"

	"cafepos/internal/session"

	"github.com/labstack/echo/v4"
)

// renderは共通データ（flash・ログインユーザー）を付けてテンプレートを描画する。
// flashは取り出した状態でセッションを保存し直すので、一度しか表示されない。
func render(c echo.Context, sessions *session.Manager, name string, data map[string]interface{}) error {
	sess := session.From(c)

	if data == nil {
		data = map[string]interface{}{}
	}
	data["Flashes"] = sess.TakeFlashes()
	data["CurrentUser"] = sess.Username

	if err := sessions.Save(c, sess); err != nil {
		return err
	}

	return c.Render(http.StatusOK, name, data)
}
