package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZulfikarHD/labelgen/internal/config"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/handler"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/ZulfikarHD/labelgen/internal/middleware"
	"github.com/ZulfikarHD/labelgen/internal/shared/sirine"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting labelgen service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	if err := seedDefaults(db); err != nil {
		zapLogger.Warn("Seed defaults warning", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Token revocation degrades gracefully without Redis.
		zapLogger.Warn("Redis unavailable, logout revocation disabled", zap.Error(err))
	}

	specClient := sirine.NewClient(cfg.Sirine.BaseURL, cfg.Sirine.Timeout, zapLogger)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, specClient, cfg)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.CORS())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": Version, "build_time": BuildTime})
	})

	handler.RegisterRoutes(r, handlers, cfg.JWT.Secret, services.Auth)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// seedDefaults creates the workstations and accounts a fresh install
// needs. Every insert is a no-op when the row already exists.
func seedDefaults(db *gorm.DB) error {
	for _, name := range []string{"Team 1", "Team 2", "Team 3"} {
		station := entity.Workstation{Name: name, IsActive: true}
		if err := db.Where(entity.Workstation{Name: name}).FirstOrCreate(&station).Error; err != nil {
			return fmt.Errorf("seed workstation %q: %w", name, err)
		}
	}

	seeds := []struct {
		NP   string
		Name string
		Role entity.UserRole
	}{
		{"ADMIN", "Administrator", entity.RoleAdmin},
		{"OP001", "Operator Satu", entity.RoleOperator},
	}
	for _, seed := range seeds {
		var count int64
		if err := db.Model(&entity.User{}).Where("np = ?", seed.NP).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := service.HashPassword(service.DefaultPassword(seed.NP))
		if err != nil {
			return err
		}
		user := entity.User{
			NP:       seed.NP,
			Name:     seed.Name,
			Password: hash,
			Role:     seed.Role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", seed.NP, err)
		}
	}

	return nil
}
