package server

import (
	"fashionretail/internal/config"
	"fashionretail/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlersはルーティングに必要なhandler一式。
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
}

// Newはechoを組み立ててルートを登録する。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//リクエストログとpanic回復
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, h)
	return e
}

// Startはサーバーを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
