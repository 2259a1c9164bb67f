package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/catalog"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/catalogapi"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/memory"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/metrics"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/notice"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/rocketshoes-cart/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/rocketshoes-cart/internal/interfaces/http"
	"github.com/jhoicas/rocketshoes-cart/pkg/config"
	"github.com/jhoicas/rocketshoes-cart/pkg/i18n"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("cart_storage", cfg.Cart.Storage).
		Bool("remote_catalog", cfg.Catalog.Remote()).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
	}

	var storage repository.CartStorage
	switch cfg.Cart.Storage {
	case config.StoragePostgres:
		storage = postgres.NewCartStorage(pool)
	case config.StorageRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		storage = infraredis.NewCartStorage(client)
	default:
		storage = memory.NewCartStorage()
	}

	// Catálogo: remoto por HTTP o local en PostgreSQL (que además se expone en /stock y /products).
	var (
		gateway       cart.CatalogGateway
		catalogUC     *catalog.UseCase
		catalogClient *catalogapi.Client
	)
	if cfg.Catalog.Remote() {
		catalogClient = catalogapi.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout(), catalogapi.BreakerSettings{
			MaxFailures: uint32(cfg.Catalog.BreakerMaxFailures),
			OpenTimeout: cfg.Catalog.BreakerOpen(),
		})
		gateway = catalogClient
	} else {
		catalogUC = catalog.NewUseCase(postgres.NewProductRepository(pool), postgres.NewStockRepository(pool))
		gateway = catalogUC
	}

	m := metrics.New("cart")
	messages := i18n.NewCatalog(cfg.Cart.NoticeLocale)
	notices := notice.NewRecorder(notice.NewLogNotifier(log.Component("notice")))
	cartStore, err := cart.NewStore(ctx, storage, gateway, notices, cart.Options{
		Key:      cfg.Cart.StorageKey,
		Messages: messages,
		Logger:   log.Component("cart"),
		Observer: m,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar carrito")
	}
	log.Info().
		Int("cart_entries", len(cartStore.Cart())).
		Str("notice_locale", messages.Language().String()).
		Msg("carrito cargado")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RocketShoes Cart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		out := fiber.Map{"status": "ok", "service": cfg.App.Name}
		if catalogClient != nil {
			out["catalog_breaker"] = catalogClient.State()
		}
		return c.JSON(out)
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CartStore: cartStore,
		CatalogUC: catalogUC,
		Notices:   notices,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
