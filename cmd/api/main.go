package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"homelet/internal/config"
	"homelet/internal/database"
	"homelet/internal/logging"
	"homelet/internal/middleware"
	"homelet/internal/modules/auth"
	"homelet/internal/modules/booking"
	"homelet/internal/modules/history"
	"homelet/internal/modules/listing"
	"homelet/internal/modules/review"
	jwtsvc "homelet/internal/pkg/jwt"
	"homelet/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	redisClient := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	popularCache := repository.NewPopularSearchCache(redisClient, cfg.CacheTTL)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	listingHandler := listing.NewHandler(listing.NewService(listingRepo, historyRepo, logger))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, listingRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, bookingRepo))
	historyHandler := history.NewHandler(history.NewService(historyRepo, popularCache, logger))

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(&logger))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public; OptionalAuth lets history side effects attribute callers
		public := v1.Group("/")
		public.Use(middleware.OptionalAuth(j))
		{
			listingHandler.RegisterRoutes(public, nil)
			reviewHandler.RegisterRoutes(public, nil)
			historyHandler.RegisterRoutes(public)
		}

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}

		authHandler.RegisterRoutes(v1, v1.Group("/", middleware.Auth(j)))

		// listing/review writes need a strict principal
		writes := v1.Group("/", middleware.Auth(j))
		listingHandler.RegisterRoutes(nil, writes)
		reviewHandler.RegisterRoutes(nil, writes)
	}

	logger.Info().Str("port", cfg.Port).Msg("starting api")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
