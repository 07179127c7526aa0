package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/trimtime/queue-service/internal/config"
	"github.com/trimtime/queue-service/internal/handler"
	"github.com/trimtime/queue-service/internal/middleware"
	"github.com/trimtime/queue-service/internal/queue"
	"github.com/trimtime/queue-service/internal/repository"
	"github.com/trimtime/queue-service/internal/router"
)

func main() {
	// A missing .env is fine; containers inject real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Validator = handler.NewValidator()

	// Redis backs the rate limiter and the response cache.  Both degrade to
	// pass-through when the client is nil, so a missing Redis only costs the
	// protections, never the service.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// All state is seeded in memory and lives for the process lifetime.
	shops := repository.NewShopRepo(repository.SeedShops())
	waiting, serving, stats := repository.SeedQueue()
	queueRepo := repository.NewQueueRepo(waiting, serving, stats)
	bookings := repository.NewBookingRepo(repository.SeedBookings())
	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo()

	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := handler.NewPublicHandler(shops)
	ownerH := handler.NewOwnerHandler(cfg, queueRepo)
	customerH := handler.NewCustomerHandler(bookings)
	onboardingH := handler.NewOnboardingHandler(cfg)
	i18nH := &handler.I18nHandler{}

	router.RegisterRoutes(e)
	router.RegisterAuthRoutes(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, i18nH, onboardingH, cache)
	router.RegisterOwner(e, ownerH, cfg.JWTSecret)
	router.RegisterCustomer(e, customerH, cfg.JWTSecret)

	// The notification consumer reconnects on its own; a dead broker only
	// stops the log file from growing.
	go func() {
		if err := queue.StartNotifyConsumer(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
