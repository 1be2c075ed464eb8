// This is the main entry point of the profile API.
// It is responsible for initializing configuration, the database pool,
// migrations, services and handlers, setting up the HTTP router and
// middleware, and starting the HTTP server with graceful shutdown.
//
// Analogy to AdonisJS: this file covers what the framework's bootstrap plus
// start/routes did in the original service — the route table below is a
// direct transcription of it.
// @title Profile API
// @version 1.0
// @description User registration, authentication, and profile management.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/user/profileapi-go/docs" // Generated Swagger docs

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/profileapi-go/apperror"
	"github.com/user/profileapi-go/auth"
	"github.com/user/profileapi-go/background"
	"github.com/user/profileapi-go/config"
	"github.com/user/profileapi-go/db"
	"github.com/user/profileapi-go/users"
)

func main() {
	// .env is a development convenience; production sets variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	// Schema first: the unique email constraint and the profile cascade live
	// in the migrations, and the handlers assume they are in place.
	if cfg.MigrationsPath != "" {
		if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Repositories, then services, then handlers: explicit constructor
	// injection all the way down.
	userRepo := auth.NewPgxUserRepository(pool)
	revokedTokens := auth.NewPgxTokenRevocations(pool)
	profileRepo := users.NewPgxProfileRepository(pool)

	authService := auth.NewAuthService(userRepo, revokedTokens, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	profileService := users.NewProfileService(profileRepo, userRepo)
	profileHandlers := users.NewProfileHandlers(profileService)

	// The sweeper prunes expired logout-denylist entries in the background.
	sweeperStopChan := make(chan struct{})
	background.StartTokenSweeper(revokedTokens, sweeperStopChan)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers in the standard error envelope rather than
	// an empty 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					auth.WriteError(ww, r, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Route table, transcribed from the original service.
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())

		// Logout needs a valid token: there is no session to end without one.
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware(authService))
			r.Post("/logout", authHandlers.HandleLogout())
		})

		r.Route("/user/profile", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.JWTMiddleware(authService))
				r.Get("/", profileHandlers.HandleGetProfile())
				r.Post("/", profileHandlers.HandleCreateProfile())
				r.Put("/", profileHandlers.HandleUpdateProfile())
			})
			// DELETE is deliberately outside the auth gate and keyed by an
			// arbitrary email, reproducing the original routing table. This
			// is a known security gap in the inherited contract.
			r.Delete("/", profileHandlers.HandleDeleteUser())
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Signaling token sweeper to stop...")
	close(sweeperStopChan)

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
