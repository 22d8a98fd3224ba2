package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"hotelbooking/internal/api"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/service"
	"hotelbooking/internal/session"
)

const migrationsDir = "migrations"

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	bookingSvc := service.NewBookingService(guestRepo, roomRepo, bookingRepo, sender)
	wizardSvc := service.NewWizardService(newSessionStore(), bookingSvc)
	jobSvc := service.NewJobService(jobRepo)

	guestHandler := api.NewGuestHandler(bookingSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	roomHandler := api.NewRoomHandler(bookingSvc)
	wizardHandler := api.NewWizardHandler(wizardSvc)

	r := mux.NewRouter()

	// Form endpoints
	r.HandleFunc("/submit-guest", guestHandler.SubmitGuest).Methods("POST")
	r.HandleFunc("/submit-roominfo", roomHandler.SubmitRoomInfo).Methods("POST")

	// Booking endpoints
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{reference}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/rooms", roomHandler.ListRooms).Methods("GET")

	// Wizard session endpoints
	r.HandleFunc("/api/sessions", wizardHandler.StartSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", wizardHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/search", wizardHandler.SaveSearch).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/room", wizardHandler.SelectRoom).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/guest", wizardHandler.SaveGuestDetails).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/payment", wizardHandler.CompletePayment).Methods("POST")

	c := cron.New()
	c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := jobSvc.ReleaseCheckedOutRooms(ctx); err != nil {
			log.Printf("Cron Job failed: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handlers.LoggingHandler(os.Stdout, cors(r)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(srv.ListenAndServe())
}

// newSessionStore picks Redis when REDIS_ADDR is set, otherwise wizard state
// lives in process memory.
func newSessionStore() session.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return session.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis at %s unreachable (%v), falling back to in-memory sessions", addr, err)
		return session.NewMemoryStore()
	}
	log.Printf("Session store: redis at %s", addr)
	return session.NewRedisStore(client)
}
