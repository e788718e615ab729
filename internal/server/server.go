package server

import (
	"net/http"

	"lensrent/internal/config"
	"lensrent/internal/handler"
	"lensrent/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 全Handlerをまとめて受け取る
type Handlers struct {
	Auth           *handler.AuthHandler
	Equipment      *handler.EquipmentHandler
	AdminEquipment *handler.AdminEquipmentHandler
	Cart           *handler.CartHandler
	Checkout       *handler.CheckoutHandler
	Order          *handler.OrderHandler
	AdminOrder     *handler.AdminOrderHandler
	Suggestion     *handler.SuggestionHandler
}

// echoを組み立てて返す（起動はmain側）
func New(cfg config.Config, userRepo repository.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//FEからのアクセスのみ許可
	origins := []string{"http://localhost:5173"}
	if cfg.FEURL != "" {
		origins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e, cfg, userRepo)
	h.Equipment.RegisterRoutes(e)
	h.AdminEquipment.RegisterRoutes(e, cfg, userRepo)
	h.Cart.RegisterRoutes(e, cfg, userRepo)
	h.Checkout.RegisterRoutes(e, cfg, userRepo)
	h.Order.RegisterRoutes(e, cfg, userRepo)
	h.AdminOrder.RegisterRoutes(e, cfg, userRepo)
	h.Suggestion.RegisterRoutes(e, cfg, userRepo)

	return e
}
