package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/salomebobokhidze/HotelManagement/internal/app"
	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/config"
	"github.com/salomebobokhidze/HotelManagement/internal/events"
	"github.com/salomebobokhidze/HotelManagement/internal/storage/postgres"
	"github.com/salomebobokhidze/HotelManagement/internal/storage/redisstore"
	transporthttp "github.com/salomebobokhidze/HotelManagement/internal/transport/http"
	"github.com/salomebobokhidze/HotelManagement/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()
	if err := godotenv.Load(); err != nil {
		logger.Printf("WARN: no .env file loaded: %v", err)
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := postgres.Connect(startupCtx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	rdb := redisstore.New(cfg.RedisAddr)
	defer func() { _ = rdb.Close() }()
	if err := rdb.Ping(startupCtx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	clk := clock.NewSystem()
	authSvc := app.NewAuthService(postgres.NewUserRepository(pool), redisstore.NewTokenStore(rdb), clk, cfg.JWTSecret)
	hotelSvc := app.NewHotelService(postgres.NewHotelRepository(pool), clk)
	roomSvc := app.NewRoomService(postgres.NewRoomRepository(pool), clk)

	var bookingOpts []app.BookingServiceOption
	if len(cfg.KafkaBrokers) > 0 {
		publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.ServiceName, 256)
		publisher.Start()
		defer publisher.Close()
		bookingOpts = append(bookingOpts, app.WithReservationEvents(publisher))
		logger.Printf("reservation events enabled brokers=%v", cfg.KafkaBrokers)
	} else {
		logger.Printf("WARN: KAFKA_BROKERS not set, reservation events disabled")
	}
	bookingSvc := app.NewBookingService(postgres.NewReservationRepository(pool), clk, bookingOpts...)

	router := transporthttp.NewRouter(transporthttp.RouterDeps{
		Booking:  bookingSvc,
		Hotels:   hotelSvc,
		Rooms:    roomSvc,
		Auth:     authSvc,
		Verifier: authSvc,
	})
	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, router), logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}

	log.Printf("api listening on %s", cfg.HTTPAddr)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}
