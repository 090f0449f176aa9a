package server

import (
	"cafepos/internal/handler"
	"cafepos/internal/session"
	"cafepos/web"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoを組み立てて返す。起動はしない。
func New(sessions *session.Manager, authH *handler.AuthHandler, orderH *handler.OrderHandler) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	//毎リクエストでセッションcookieを復元する
	e.Use(sessions.Middleware())

	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))

	RegisterRoutes(e, sessions, authH, orderH)
	return e, nil
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
