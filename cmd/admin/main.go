package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/auth"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/cache"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/session"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	httpRouter "github.com/FLAVIOALFA/stockflow-admin/internal/interfaces/http"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/config"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("strapi", cfg.Strapi.BaseURL).
		Msg("iniciando aplicación")

	// Caché de listados: Redis si está configurado, si no en memoria del proceso.
	var qc cache.Cache = cache.NewMemory()
	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		qc = cache.NewRedis(rdb, log)
	}

	// La sesión persistida se rehidrata al arrancar; un token vencido en disco
	// cuenta como ausencia de sesión.
	sessions := session.NewStore(cfg.Session.FilePath, log)
	sessions.Hydrate()

	client := strapi.NewClient(cfg.Strapi, sessions, log)
	ttl := cfg.Cache.TTL

	branches := strapi.NewResource[entity.Branch](client, strapi.Config{
		Endpoint: "/branches",
		CacheKey: "branches",
	}, qc, ttl)
	brands := strapi.NewResource[entity.Brand](client, strapi.Config{
		Endpoint: "/brands",
		CacheKey: "brands",
	}, qc, ttl)
	categories := strapi.NewResource[entity.Category](client, strapi.Config{
		Endpoint: "/categories",
		CacheKey: "categories",
	}, qc, ttl)
	products := strapi.NewResource[entity.Product](client, strapi.Config{
		Endpoint:      "/products",
		CacheKey:      "products",
		DefaultParams: strapi.Populate("mainImage", "brand", "categories"),
	}, qc, ttl)
	stocks := strapi.NewResource[entity.Stock](client, strapi.Config{
		Endpoint:      "/stocks",
		CacheKey:      "stocks",
		DefaultParams: strapi.Populate("branch", "product"),
	}, qc, ttl)
	movements := strapi.NewResource[entity.Movement](client, strapi.Config{
		Endpoint: "/movements",
		CacheKey: "movements",
		DefaultParams: strapi.Populate("origin", "destination", "items", "items.product").
			Set("sort", "createdAt:desc"),
	}, qc, ttl)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:   usecase.NewBranchUseCase(branches),
		BrandUC:    usecase.NewBrandUseCase(brands),
		CategoryUC: usecase.NewCategoryUseCase(categories),
		ProductUC:  usecase.NewProductUseCase(products),
		StockUC:    usecase.NewStockUseCase(stocks, client, log),
		MovementUC: usecase.NewMovementUseCase(movements, log),
		AuthUC:     auth.NewUseCase(client, sessions, log),
		Sessions:   sessions,
		LoginPath:  cfg.Session.LoginPath,
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
