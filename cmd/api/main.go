package main

import (
	"log"

	"lensrent/internal/config"
	"lensrent/internal/domain/model"
	"lensrent/internal/handler"
	"lensrent/internal/infra/db"
	infraRepo "lensrent/internal/infra/repository"
	"lensrent/internal/server"
	"lensrent/internal/usecase"
	"lensrent/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くても動かす（本番は環境変数）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Equipment{},
		&model.Cart{},
		&model.CartLine{},
		&model.Order{},
		&model.Suggestion{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	equipmentRepo := infraRepo.NewEquipmentGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartLineRepo := infraRepo.NewCartLineGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	suggestionRepo := infraRepo.NewSuggestionGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Validator生成
	authValidator := validator.NewAuthValidator(userRepo)
	checkoutValidator := validator.NewCheckoutValidator()

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, authValidator)
	equipmentUC := usecase.NewEquipmentUsecase(equipmentRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartLineRepo, equipmentRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, checkoutValidator)
	orderUC := usecase.NewOrderUsecase(orderRepo, userRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo)
	suggestionUC := usecase.NewSuggestionUsecase(suggestionRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:           handler.NewAuthHandler(authUC, cfg),
		Equipment:      handler.NewEquipmentHandler(equipmentUC),
		AdminEquipment: handler.NewAdminEquipmentHandler(equipmentUC),
		Cart:           handler.NewCartHandler(cartUC),
		Checkout:       handler.NewCheckoutHandler(checkoutUC),
		Order:          handler.NewOrderHandler(orderUC),
		AdminOrder:     handler.NewAdminOrderHandler(adminOrderUC),
		Suggestion:     handler.NewSuggestionHandler(suggestionUC),
	}

	//Server起動
	e := server.New(cfg, userRepo, handlers)

	addr := ":" + cfg.Port
	if len(cfg.Port) > 0 && cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	if err := e.Start(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
