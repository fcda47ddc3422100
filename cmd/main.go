package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shop-order-service/docs"
	"github.com/SergeyBogomolovv/shop-order-service/internal/app"
	"github.com/SergeyBogomolovv/shop-order-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/events"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/shop-order-service/internal/redis"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Order Service API
// @version         1.0
// @description     Каталог, корзина и оформление заказов
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to migrate db", postgres.Migrate(db))
	logger.Info("postgres connected")

	rdb, err := redis.New(conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	txManager := trm.NewManager(db, nil)
	itemRepo := repo.NewItemRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	userRepo := repo.NewUserRepo(db)
	sessionRepo := repo.NewSessionRepo(rdb)

	itemCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	tokens := auth.NewTokenManager(conf.JWT)
	publisher := events.NewPublisher(conf.Kafka)

	itemService := service.NewItemService(logger, txManager, itemRepo, itemCache)
	orderService := service.NewOrderService(logger, txManager, orderRepo, itemRepo, publisher)
	authService := service.NewAuthService(logger, userRepo, sessionRepo, tokens)

	authenticate := middleware.Authenticate(tokens)
	adminOnly := middleware.RequireRole(entities.RoleAdmin)

	handler.RegisterMetrics()
	itemHandler := handler.NewItemHandler(logger, itemService, authenticate, adminOnly)
	orderHandler := handler.NewOrderHandler(logger, orderService, authenticate)
	authHandler := handler.NewAuthHandler(logger, authService, authenticate, conf.Env == "production")
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, itemService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(itemHandler, orderHandler, authHandler)
	app.SetConsumers(kafkaHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	if err := app.Stop(); err != nil {
		logger.Error("failed to stop app", slog.Any("error", err))
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
