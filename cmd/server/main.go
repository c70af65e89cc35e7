package main

import (
	authhandler "github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/handler"
	authmiddleware "github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/middleware"
	"github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/token"
	bookinghandler "github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/handler"
	bookingrepository "github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/repository"
	bookingservice "github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/service"
	reviewhandler "github.com/fahadfakrul/Stay-Sphere-Server/internal/reviews/handler"
	reviewrepository "github.com/fahadfakrul/Stay-Sphere-Server/internal/reviews/repository"
	reviewservice "github.com/fahadfakrul/Stay-Sphere-Server/internal/reviews/service"
	roomhandler "github.com/fahadfakrul/Stay-Sphere-Server/internal/rooms/handler"
	roomrepository "github.com/fahadfakrul/Stay-Sphere-Server/internal/rooms/repository"
	roomservice "github.com/fahadfakrul/Stay-Sphere-Server/internal/rooms/service"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/app"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/config"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/events"
)

const ServiceName = "staysphere"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, ServiceName, cfg.Log)
	defer func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close event producer", "error", err)
		}
	}()

	tokens := token.NewManager(cfg.AccessTokenSecret, cfg.SessionTTL)
	guard := authmiddleware.RequireSession(tokens, cfg.Log)

	roomService := roomservice.NewRoomService(roomrepository.NewMongoRoomRepository(cfg), cfg)
	bookingService := bookingservice.NewBookingService(bookingrepository.NewMongoBookingRepository(cfg), producer, cfg)
	reviewService := reviewservice.NewReviewService(reviewrepository.NewMongoReviewRepository(cfg), cfg)

	cfg.Log.Info("Starting Stay Sphere server", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		authhandler.NewAuthHandler(tokens, cfg.IsProduction(), cfg.Log),
		roomhandler.NewRoomHandler(roomService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, guard, cfg.Log),
		reviewhandler.NewReviewHandler(reviewService, cfg.Log),
	)
	serverApp.Run()
}
