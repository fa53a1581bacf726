package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はルート登録済みのechoを返す。
func New(cfg config.Config, cartH *handler.CartHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	if cfg.GoEnv != "prod" {
		e.Use(echomw.Logger())
	}

	RegisterRoutes(e, cfg, cartH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
