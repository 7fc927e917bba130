package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/minh-swinburne/ridelink/internal/pkg/config"
	"github.com/minh-swinburne/ridelink/internal/pkg/database"
	"github.com/minh-swinburne/ridelink/internal/pkg/logger"
	nsqpkg "github.com/minh-swinburne/ridelink/internal/pkg/nsq"
	"github.com/minh-swinburne/ridelink/internal/pkg/pricing"
	"github.com/minh-swinburne/ridelink/internal/pkg/server"
	locationgw "github.com/minh-swinburne/ridelink/services/location/gateway"
	locationrepo "github.com/minh-swinburne/ridelink/services/location/repository"
	locationuc "github.com/minh-swinburne/ridelink/services/location/usecase"
	matchgw "github.com/minh-swinburne/ridelink/services/match/gateway"
	matchhandler "github.com/minh-swinburne/ridelink/services/match/handler"
	matchrepo "github.com/minh-swinburne/ridelink/services/match/repository"
	matchuc "github.com/minh-swinburne/ridelink/services/match/usecase"
	ridesgw "github.com/minh-swinburne/ridelink/services/rides/gateway"
	rideshandler "github.com/minh-swinburne/ridelink/services/rides/handler"
	ridesrepo "github.com/minh-swinburne/ridelink/services/rides/repository"
	ridesuc "github.com/minh-swinburne/ridelink/services/rides/usecase"
	usersrepo "github.com/minh-swinburne/ridelink/services/users/repository"
)

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to postgres")
	}
	defer db.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to redis")
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	// Repositories
	locRepo := locationrepo.NewLocationRepository(cfg, db)
	rideRepo := ridesrepo.NewRideRepository(cfg, db)
	userRepo := usersrepo.NewUserRepository(cfg, db)
	mRepo := matchrepo.NewMatchRepository(cfg, db, redisClient)

	// Gateways
	geocodingGW := locationgw.NewGeocodingGateway(cfg.Geocoding)
	locGW := locationgw.NewLocationGateway(producer)
	rideGW := ridesgw.NewRideGateway(producer)
	mGW := matchgw.NewMatchGateway(producer)

	// Use cases
	estimator := pricing.NewEstimator(cfg.Pricing)
	locUC := locationuc.NewLocationUC(cfg, locRepo, geocodingGW, locGW, appLogger)
	rideUC := ridesuc.NewRideUC(cfg, rideRepo, userRepo, locUC, estimator, rideGW, appLogger)
	mUC := matchuc.NewMatchUC(cfg, mRepo, userRepo, mGW, appLogger)

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	rideshandler.NewRidesHandler(rideUC).RegisterRoutes(e, cfg)
	matchhandler.NewMatchHandler(mUC).RegisterRoutes(e, cfg)

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}
