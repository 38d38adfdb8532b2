package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/surendhiran2000/theatre-management/internal/cache"
	"github.com/surendhiran2000/theatre-management/internal/config"
	"github.com/surendhiran2000/theatre-management/internal/handlers"
	"github.com/surendhiran2000/theatre-management/internal/repo"
	"github.com/surendhiran2000/theatre-management/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *mongo.Database, rdb *redis.Client) {
	r.GET("/", rootHandler())
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")

	userRepo := repo.NewMongoUserRepo(db)
	userSvc := service.NewUserService(userRepo, service.NewBcryptHasher(0))
	authHandler := handlers.NewAuthHandler(userSvc)
	registerAuthRoutes(api, authHandler)

	bookingRepo := repo.NewMongoBookingRepo(db)
	bookingCache := cache.NewBookingCache(rdb, cfg.Redis.DefaultTTL.Duration())
	bookingSvc := service.NewBookingService(bookingRepo, bookingCache)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	registerBookingRoutes(api, bookingHandler)
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(200, "Welcome to bookings and Login API!")
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}

func registerBookingRoutes(api *gin.RouterGroup, h *handlers.BookingHandler) {
	api.POST("/bookings", h.Create)
	api.GET("/bookings", h.List)
	api.GET("/bookings/:id", h.ListByUser)
	api.DELETE("/bookings/:id", h.Delete)
}
