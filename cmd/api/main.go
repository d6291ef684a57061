package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/republica/storefront-service/config"
	"github.com/republica/storefront-service/internal/middleware"
	"github.com/republica/storefront-service/pkg/cache"
	"github.com/republica/storefront-service/pkg/database/mysql"
	"github.com/republica/storefront-service/pkg/logger"

	brandH "github.com/republica/storefront-service/internal/brand/handler"
	brandRepoPkg "github.com/republica/storefront-service/internal/brand/repository"
	brandUCPkg "github.com/republica/storefront-service/internal/brand/usecase"

	catH "github.com/republica/storefront-service/internal/category/handler"
	catRepoPkg "github.com/republica/storefront-service/internal/category/repository"
	catUCPkg "github.com/republica/storefront-service/internal/category/usecase"

	prodH "github.com/republica/storefront-service/internal/product/handler"
	prodRepoPkg "github.com/republica/storefront-service/internal/product/repository"
	prodUCPkg "github.com/republica/storefront-service/internal/product/usecase"

	invH "github.com/republica/storefront-service/internal/inventory/handler"
	invRepoPkg "github.com/republica/storefront-service/internal/inventory/repository"
	invUCPkg "github.com/republica/storefront-service/internal/inventory/usecase"

	orderH "github.com/republica/storefront-service/internal/order/handler"
	orderRepoPkg "github.com/republica/storefront-service/internal/order/repository"
	orderUCPkg "github.com/republica/storefront-service/internal/order/usecase"

	settingsH "github.com/republica/storefront-service/internal/settings/handler"
	settingsRepoPkg "github.com/republica/storefront-service/internal/settings/repository"
	settingsUCPkg "github.com/republica/storefront-service/internal/settings/usecase"

	userH "github.com/republica/storefront-service/internal/user/handler"
	userRepoPkg "github.com/republica/storefront-service/internal/user/repository"
	userUCPkg "github.com/republica/storefront-service/internal/user/usecase"

	mediaH "github.com/republica/storefront-service/internal/media/handler"
	mediaCloudinary "github.com/republica/storefront-service/internal/media/cloudinary"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := mysql.NewMySQL(&mysql.Config{
		Host:            cfg.MySQL.Host,
		Port:            cfg.MySQL.Port,
		User:            cfg.MySQL.User,
		Password:        cfg.MySQL.Password,
		DBName:          cfg.MySQL.DBName,
		MaxOpenConns:    cfg.MySQL.MaxOpenConns,
		MaxIdleConns:    cfg.MySQL.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.MySQL.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.MySQL.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to MySQL database", zap.String("db_name", cfg.MySQL.DBName))

	// 4. Initialize Redis (optional: listings and locks degrade without it)
	var cacheStore cache.Store
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("could not connect to redis, caching disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheStore = redisClient
		appLogger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Repositories
	catRepo := catRepoPkg.NewMySQLRepository(db)
	brandRepo := brandRepoPkg.NewMySQLRepository(db)
	prodRepo := prodRepoPkg.NewMySQLRepository(db)
	invRepo := invRepoPkg.NewMySQLRepository(db)
	orderRepo := orderRepoPkg.NewMySQLRepository(db)
	settingsRepo := settingsRepoPkg.NewMySQLRepository(db)
	userRepo := userRepoPkg.NewMySQLRepository(db)

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	brandUC := brandUCPkg.NewBrandUseCase(brandRepo, catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, brandRepo, cacheStore, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, cacheStore, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, cacheStore, appLogger)
	settingsUC := settingsUCPkg.NewSettingsUseCase(settingsRepo, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, cfg.Auth.BcryptCost, appLogger)

	// 7. HTTP Server
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.Server.CORSAllowOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	catH.NewCategoryHandler(catUC, appLogger).RegisterRoutes(api)
	brandH.NewBrandHandler(brandUC, appLogger).RegisterRoutes(api)
	prodH.NewProductHandler(prodUC, appLogger).RegisterRoutes(api)
	invH.NewInventoryHandler(invUC, appLogger).RegisterRoutes(api)
	orderH.NewOrderHandler(orderUC, appLogger).RegisterRoutes(api)
	settingsH.NewSettingsHandler(settingsUC, appLogger).RegisterRoutes(api)
	userH.NewUserHandler(userUC, appLogger).RegisterRoutes(api)

	if cfg.Cloudinary.CloudName != "" {
		uploader, err := mediaCloudinary.NewUploader(
			cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			appLogger.Fatal("could not init cloudinary", zap.Error(err))
		}
		mediaH.NewMediaHandler(uploader, cfg.Cloudinary.UploadFolder, appLogger).RegisterRoutes(api)
	} else {
		appLogger.Warn("cloudinary not configured, upload endpoint disabled")
	}

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
