package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"venuespace/internal/database"
	"venuespace/internal/middleware"
	"venuespace/internal/modules/auth"
	"venuespace/internal/modules/booking"
	"venuespace/internal/modules/catalog"
	"venuespace/internal/modules/favorite"
	"venuespace/internal/modules/notification"
	"venuespace/internal/pkg/cache"
	jwtsvc "venuespace/internal/pkg/jwt"
	"venuespace/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Redis не обязателен, без него каталог живёт без кэша
	var catalogCache *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		catalogCache, err = cache.New(addr, os.Getenv("REDIS_PASSWORD"), redisDB, 10*time.Minute)
		if err != nil {
			log.Printf("redis unavailable, running without cache: %v", err)
			catalogCache = nil
		}
	}

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	defer hub.Close()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(venueRepo, serviceRepo, catalogCache)
	catalogHandler := catalog.NewHandler(catalogService, userRepo)

	bookingService := booking.NewService(bookingRepo, venueRepo, catalogService, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	favoriteHandler := favorite.NewHandler(favoriteRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Language())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)

			host := protected.Group("/host")
			host.Use(middleware.HostOnly())
			{
				catalogHandler.RegisterHostRoutes(host)
				bookingHandler.RegisterHostRoutes(host)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
