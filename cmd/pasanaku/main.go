package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmcallejas/pasanaku/internal/api"
	"github.com/jmcallejas/pasanaku/internal/auth"
	"github.com/jmcallejas/pasanaku/internal/config"
	"github.com/jmcallejas/pasanaku/internal/db"
	"github.com/jmcallejas/pasanaku/internal/services"
	"github.com/jmcallejas/pasanaku/pkg/logger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	database, err := db.Open(cfg.Database)
	if err != nil {
		zlog.Fatalw("database init failed", "error", err)
	}
	repos := db.NewRepositories(database)

	tokens := auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)

	authService := services.NewAuthService(repos.Users, tokens)
	groupService := services.NewGroupService(repos.Groups)
	memberService := services.NewMemberService(repos.Members, repos.Groups)
	roundService := services.NewRoundService(repos.Rounds, repos.Groups)
	paymentService := services.NewPaymentService(repos.Payments, repos.Rounds)

	handler := api.NewHandler(zlog, cfg.App.Version, tokens,
		authService, groupService, memberService, roundService, paymentService)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins}))
	app.Use(api.RequestLogger(zlog))
	app.Use(api.MetricsCollector())

	handler.RegisterRoutes(app)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Errorw("server shutdown failed", "error", err)
		}
	}()

	zlog.Infow("server starting", "addr", cfg.ServerAddr(), "driver", cfg.Database.Driver)
	if err := app.Listen(cfg.ServerAddr()); err != nil {
		zlog.Fatalw("server exited", "error", err)
	}
}
