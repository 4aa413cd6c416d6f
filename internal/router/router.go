package router

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"storefront/internal/dto"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Deps struct {
	Auth     service.AuthService
	Products service.ProductService
	Carts    service.CartService
	Orders   service.OrderService
	Payments service.PaymentService
	Admin    service.AdminService
	Tokens   service.TokenProvider

	ClientURL string
	Log       *zap.Logger
}

func init() {
	// Report validation failures by json field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	}
}

func Router(d Deps) *gin.Engine {
	log := d.Log
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthRequired(d.Tokens, log)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	authH := handlers.NewAuthHandler(d.Auth, log)
	productH := handlers.NewProductHandler(d.Products, log)
	cartH := handlers.NewCartHandler(d.Carts, log)
	orderH := handlers.NewOrderHandler(d.Orders, log)
	paymentH := handlers.NewPaymentHandler(d.Payments, log)
	adminH := handlers.NewAdminHandler(d.Admin, log)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Message: "Server is running"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/forgotpassword", authH.ForgotPassword)
		auth.PUT("/resetpassword/:token", authH.ResetPassword)
		auth.GET("/me", authRequired, authH.Me)
		auth.PUT("/profile", authRequired, authH.UpdateProfile)
		auth.PUT("/wishlist", authRequired, authH.ToggleWishlist)
		auth.GET("/wishlist", authRequired, authH.Wishlist)
	}

	products := api.Group("/products")
	{
		products.GET("", productH.List)
		products.GET("/featured", productH.Featured)
		products.GET("/:id", productH.Get)
		products.POST("", authRequired, adminOnly, productH.Create)
		products.PUT("/:id", authRequired, adminOnly, productH.Update)
		products.DELETE("/:id", authRequired, adminOnly, productH.Delete)
		products.POST("/:id/reviews", authRequired, productH.AddReview)
	}

	cart := api.Group("/cart", authRequired)
	{
		cart.GET("", cartH.Get)
		cart.POST("", cartH.Add)
		cart.DELETE("", cartH.Clear)
		cart.GET("/all", adminOnly, cartH.All)
		cart.PUT("/:itemId", cartH.Update)
		cart.DELETE("/:itemId", cartH.Remove)
	}

	orders := api.Group("/orders", authRequired)
	{
		orders.POST("", orderH.Create)
		orders.GET("/my-orders", orderH.Mine)
		orders.GET("/:id", orderH.Get)
		orders.PUT("/:id/cancel", orderH.Cancel)
		orders.GET("", adminOnly, orderH.List)
		orders.PUT("/:id/status", adminOnly, orderH.UpdateStatus)
		orders.PUT("/:id/payment", adminOnly, orderH.UpdatePayment)
	}

	payment := api.Group("/payment")
	{
		// Signed by the provider, no bearer token.
		payment.POST("/webhook", paymentH.Webhook)
		payment.POST("/create-session", authRequired, paymentH.CreateSession)
		payment.POST("/create-intent", authRequired, paymentH.CreateIntent)
		payment.GET("/verify-session", authRequired, paymentH.VerifySession)
	}

	api.GET("/admin/stats", authRequired, adminOnly, adminH.Stats)

	return r
}
