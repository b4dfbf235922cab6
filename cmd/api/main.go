package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-admin/internal/core/auth"
	"go-shop-admin/internal/core/cache"
	"go-shop-admin/internal/core/config"
	"go-shop-admin/internal/core/database"
	"go-shop-admin/internal/core/logger"
	"go-shop-admin/internal/core/server"
	"go-shop-admin/internal/domain"
	"go-shop-admin/internal/mail"
	"go-shop-admin/internal/repo"
	"go-shop-admin/internal/service"
	"go-shop-admin/internal/transport/http/handler"
	"go-shop-admin/internal/transport/http/router"
	"go-shop-admin/pkg/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Category{},
			&domain.Product{},
			&domain.Review{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	var ccache *cache.Cache
	if cfg.Redis.Addr != "" {
		ccache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	sender := &mail.SMTPSender{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}
	mailq := mail.NewDispatcher(sender, log, cfg.SMTP.QueueSize)

	jwter := &auth.JWTer{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		SessionTTL: time.Duration(cfg.JWT.SessionTTLHours) * time.Hour,
		ResetTTL:   time.Duration(cfg.JWT.ResetTTLMin) * time.Minute,
	}

	users := repo.NewUserRepo(db)
	categories := repo.NewCategoryRepo(db)
	products := repo.NewProductRepo(db)
	reviews := repo.NewReviewRepo(db)

	accounts := service.NewAccountService(users, jwter, mailq, log, cfg.ResetURLBase)
	reviewSvc := service.NewReviewService(reviews, products, users)
	catalog := service.NewCatalogService(
		categories, products, reviews,
		ccache, time.Duration(cfg.Redis.CatalogTTLSec)*time.Second,
		mailq, log,
	)

	uploader := upload.New(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)

	uh := handler.NewUserHandler(accounts, reviewSvc, uploader, log)
	ch := handler.NewCatalogHandler(catalog, log)

	r := router.NewEngine(log, jwter, users, uh, ch)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()
	log.Info("api started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	mailq.Close()
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
