package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	_ "storefront/docs"
	"storefront/internal/cache"
	"storefront/internal/cleanup"
	"storefront/internal/database"
	"storefront/internal/hashing"
	"storefront/internal/logger"
	"storefront/internal/payment"
	"storefront/internal/producer"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Storefront API
// @Version 1.0
// @Description Catalog, cart, orders and card checkout for the storefront
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()
	cfg := config.Load(log)
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Optional side channels stay nil interfaces when disabled so services skip them.
	var appCache service.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("failed to create redis client", zap.Error(err))
		}
		defer redisClient.Close()
		appCache = redisClient
		log.Info("Redis cache enabled")
	} else {
		log.Info("Redis cache disabled")
	}

	var (
		events service.EventBus
		email  service.EmailSender
	)
	if len(cfg.Kafka.Brokers) > 0 {
		orderProducer := producer.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic)
		defer orderProducer.Close()
		emailProducer := producer.NewEmailProducer(cfg.Kafka.Brokers, cfg.Kafka.EmailTopic)
		defer emailProducer.Close()
		events, email = orderProducer, emailProducer
		log.Info("Kafka publishing enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	} else {
		log.Info("Kafka publishing disabled")
	}

	var gateway service.PaymentGateway
	if cfg.Stripe.SecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, log)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, card payments disabled")
	}

	webhookPricing, err := service.NewPricingPolicy(cfg.Pricing.WebhookPolicy)
	if err != nil {
		log.Fatal("invalid WEBHOOK_PRICING", zap.Error(err))
	}
	standard := service.NewStandardPricing()

	hasher := hashing.NewBcrypt(cfg.Password.BcryptCost)
	tokens := token.NewHSProvider(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	authSvc := service.NewAuthService(repos.Users, repos.Products, hasher, tokens, appCache, email, service.AuthConfig{
		AccessTTL:      cfg.JWT.AccessExp,
		ResetTokenTTL:  cfg.Reset.TokenTTL,
		ResetRateLimit: cfg.Reset.RateLimit,
		ClientURL:      cfg.ClientURL,
	}, log)
	productSvc := service.NewProductService(repos.Products, repos.Users, appCache, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
	cartSvc := service.NewCartService(repos.Carts, repos.Products, repos.Users, log)
	stockProducts := service.WithFeaturedInvalidation(repos.Products, appCache, log)
	orderSvc := service.NewOrderService(repos.Orders, repos.Carts, stockProducts, repos.Users, standard, events, log)
	paymentSvc := service.NewPaymentService(gateway, repos.Orders, repos.Carts, stockProducts, repos.Users,
		standard, webhookPricing, events, service.PaymentConfig{
			ClientURL: cfg.ClientURL,
			Currency:  cfg.Stripe.Currency,
		}, log)
	adminSvc := service.NewAdminService(repos.Orders, repos.Products, repos.Carts)

	cleanupSvc := cleanup.NewCleanupService(repos.Users, repos.Carts, log)
	scheduler := cleanup.NewScheduler(cleanupSvc, log)

	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	scheduler.Start(cleanupCtx)

	r := router.Router(router.Deps{
		Auth:      authSvc,
		Products:  productSvc,
		Carts:     cartSvc,
		Orders:    orderSvc,
		Payments:  paymentSvc,
		Admin:     adminSvc,
		Tokens:    tokens,
		ClientURL: cfg.ClientURL,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	scheduler.Stop()
	cleanupCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
		return
	}
	log.Info("HTTP server stopped gracefully")
}
