package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-dashboard/internal/api"
	"social-dashboard/internal/config"
	"social-dashboard/internal/database"
	"social-dashboard/internal/logger"
	"social-dashboard/internal/scheduler"
	"social-dashboard/internal/services"
	"social-dashboard/internal/state"
	"social-dashboard/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Initialize database
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Warn("Failed to close database", zap.Error(err))
		}
	}()
	zlog.Info("Database initialized", zap.String("path", cfg.Database.Path))

	ids, err := state.NewGenerator(cfg.IDs.Strategy)
	if err != nil {
		zlog.Fatal("Failed to build id generator", zap.Error(err))
	}
	seed := services.NewSeed(ids, time.Now())

	// Initialize services
	notifyService := services.NewNotifyService(db, zlog, services.NewLogNotifier(zlog))
	accountService := services.NewAccountService(seed.Accounts, ids, notifyService, zlog)
	messagingService := services.NewMessagingService(seed.Templates, seed.Campaigns, ids, notifyService, zlog)
	botService := services.NewBotService(seed.Bots, seed.Transcript, cfg.Simulation.ChatReplyDelayDuration(), ids, notifyService, zlog)
	scraperService := services.NewScraperService(seed.Rules, seed.Content, services.ScrapeSimulation{
		Delay:      cfg.Simulation.ScrapeDelayDuration(),
		FoundCount: cfg.Simulation.ScrapeFoundCount,
	}, ids, notifyService, zlog)
	dashboardService := services.NewDashboardService(accountService, messagingService, botService, scraperService, notifyService, zlog)
	defer botService.Close()
	defer scraperService.Close()

	// Initialize scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(scraperService, zlog)
		scraperService.OnRulesChanged(sched.Sync)
		sched.Start(scraperService.Rules())
		defer sched.Stop()
	}

	// Setup Gin
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Enable CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	tmpl, err := web.Templates()
	if err != nil {
		zlog.Fatal("Failed to parse templates", zap.Error(err))
	}
	r.SetHTMLTemplate(tmpl)

	// Setup routes
	handler := api.NewHandler(accountService, messagingService, botService, scraperService, dashboardService, notifyService, zlog)
	api.SetupRoutes(r, handler)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		zlog.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
}
