package main

import (
	"time"

	"cafepos/internal/config"
	"cafepos/internal/domain/model"
	"cafepos/internal/handler"
	"cafepos/internal/infra/db"
	infraRepo "cafepos/internal/infra/repository"
	"cafepos/internal/server"
	"cafepos/internal/session"
	"cafepos/internal/usecase"
	"cafepos/internal/validator"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envがあれば読む（無くてもよい）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Order{},
	); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}
	logrus.Println("migration is successful")

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//セッション（署名付きcookie）
	sessions := session.NewManager(cfg.SessionSecret, cfg.Prod())

	//usecaseに渡す部品
	clock := &realClock{}
	menu := model.DefaultMenu()
	authValidator := validator.NewAuthValidator(userRepo)

	//Usecase生成
	registerUC := usecase.NewRegisterUsecase(userRepo, authValidator)
	loginUC := usecase.NewLoginUsecase(userRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, menu, clock)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC, sessions)
	orderH := handler.NewOrderHandler(orderUC, sessions)

	//Server起動
	e, err := server.New(sessions, authH, orderH)
	if err != nil {
		logrus.Fatalf("failed to build server: %v", err)
	}

	addr := ":" + cfg.Port
	logrus.Infof("listening on %s", addr)
	if err := server.Start(e, addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
