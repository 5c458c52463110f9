package router

import (
	"path/filepath"
	"time"

	"github.com/redromiee/bag-tracker/internal/config"
	"github.com/redromiee/bag-tracker/internal/handler"
	"github.com/redromiee/bag-tracker/internal/middleware"
	"github.com/redromiee/bag-tracker/internal/service"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store
func New(cfg *config.Config, st store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(st, cfg)
	scanSvc := service.NewScanService(st, cfg.BinColumn)
	retentionSvc := service.NewRetentionService(st)
	exportSvc := service.NewExportService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	scanH := handler.NewScanHandler(scanSvc)
	exportH := handler.NewExportHandler(exportSvc)
	cleanupH := handler.NewCleanupHandler(retentionSvc, cfg.CleanupSecretKey)

	// Login attempts: 5 per address per minute, sliding window
	loginLimiter := middleware.NewRateLimiter(5, time.Minute)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Static frontend
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.FrontendPath, "index.html"))
	})
	r.GET("/login", func(c *gin.Context) {
		c.File(filepath.Join(cfg.FrontendPath, "login.html"))
	})
	r.Static("/static", cfg.FrontendPath)

	r.GET("/health", handler.Health())

	r.POST("/register", authH.Register)
	r.POST("/login", loginLimiter.Middleware(), authH.Login)
	r.POST("/verify_token", authH.VerifyToken)
	r.POST("/check_approval", authH.CheckApproval)

	r.POST("/record_scan", scanH.Record)
	r.POST("/delete_scan", scanH.Delete)

	r.POST("/download_data", exportH.Download)
	r.POST("/cleanup", cleanupH.Cleanup)

	return r
}
