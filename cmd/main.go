package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hasanbut17314/kaspas-backend/internal/app"
	"github.com/hasanbut17314/kaspas-backend/internal/auth"
	"github.com/hasanbut17314/kaspas-backend/internal/config"
	"github.com/hasanbut17314/kaspas-backend/internal/handler"
	"github.com/hasanbut17314/kaspas-backend/internal/inventory"
	"github.com/hasanbut17314/kaspas-backend/internal/notifier"
	"github.com/hasanbut17314/kaspas-backend/internal/postgres"
	"github.com/hasanbut17314/kaspas-backend/internal/repo"
	"github.com/hasanbut17314/kaspas-backend/internal/service"
	"github.com/hasanbut17314/kaspas-backend/pkg/cache"
	"github.com/hasanbut17314/kaspas-backend/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	orderNumbers := repo.NewOrderNumbers(db)
	txManager := trm.NewManager(db, trm.WithTimeout(conf.Postgres.TxTimeout))
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	coordinator := inventory.NewCoordinator(logger, catalogRepo)
	kafkaNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)

	orderService := service.NewOrderService(
		logger, txManager, ordersRepo,
		coordinator, orderNumbers, kafkaNotifier, cache,
	)

	resolver := auth.NewResolver(conf.JWT.Secret)
	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf, auth.Middleware(logger, resolver))

	app.SetHttpHandlers(httpHandler)
	app.SetStarters(cache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(kafkaNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
