package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/config"
	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/notifier"
	"github.com/yeremiapane/sangem-ordering/router"
	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLoggerWith(cfg.LogOptions())

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if cfg.SeedDemo {
		if err := config.SeedDemo(db); err != nil {
			utils.ErrorLogger.Errorf("Seeding demo accounts failed: %v", err)
		}
	}

	revoked := utils.NewRevocationList()
	revoked.StartCleanup(time.Hour)
	defer revoked.Stop()

	opts := router.Options{
		Config: cfg,
		Tokens: utils.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL, revoked),
		Hub:    hub.New(),
	}
	if tg, err := notifier.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatIDs); err != nil {
		utils.ErrorLogger.Errorf("Telegram notifications disabled: %v", err)
	} else if tg != nil {
		opts.Notifier = services.OrderNotifier(tg)
	}

	r := router.SetupRouter(db, opts)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Errorf("Server shutdown: %v", err)
	}
}
