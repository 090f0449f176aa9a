package server

import (
	"net/http"

	"cafepos/internal/handler"
	"cafepos/internal/middleware"
	"cafepos/internal/session"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, sessions *session.Manager, authH *handler.AuthHandler, orderH *handler.OrderHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"alive": true})
	})

	//認証なしで使える画面
	e.GET("/register", authH.RegisterForm)
	e.POST("/register", authH.Register)
	e.GET("/login", authH.LoginForm)
	e.POST("/login", authH.Login)
	e.GET("/logout", authH.Logout)

	//ログイン必須の画面
	guarded := e.Group("", middleware.LoginRequired(sessions))
	guarded.GET("/", orderH.Index)
	guarded.POST("/select_menu", orderH.SelectMenu)
	guarded.POST("/submit_order", orderH.SubmitOrder)
	guarded.GET("/report", orderH.Report)
}
