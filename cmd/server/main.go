package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/config"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/database"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/handler"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/middleware"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/queue"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/repository"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/router"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
	queue_publisher "github.com/tomengsanchez/ecosys-main-sub000/internal/service"
)

func main() {
	// Load .env in development; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepo(db)
	resourceRepo := repository.NewResourceRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	notifier := queue_publisher.NewEventNotifier(userRepo)
	engine := scheduler.NewEngine(reservationRepo, resourceRepo, notifier, nil)

	e := echo.New()
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo), cfg.JWTSecret)
	router.RegisterReservations(e,
		handler.NewResourceHandler(cfg, resourceRepo, engine),
		handler.NewReservationHandler(engine, reservationRepo),
		handler.NewAdminReservationHandler(engine, reservationRepo),
		cfg.JWTSecret,
	)

	// Notification worker: consumes reservation events and renders the
	// requester-facing messages.  Runs its own reconnect loop.
	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
