package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/strandvakten/ansokan/authenticator"
	"github.com/strandvakten/ansokan/config"
	"github.com/strandvakten/ansokan/controllers"
	"github.com/strandvakten/ansokan/database"
	authmiddleware "github.com/strandvakten/ansokan/middleware"
	"github.com/strandvakten/ansokan/repositories"
	"github.com/strandvakten/ansokan/services"
)

func main() {
	// Load environment variables from .env file; in production the
	// variables are set directly, so a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database. Serving with an inconsistent schema is worse
	// than not starting, so any migration failure is fatal.
	db, err := database.Initialize(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize token authenticator
	auth, err := authenticator.New(authenticator.Config{
		AdminUser:     cfg.AdminUser,
		AdminPass:     cfg.AdminPass,
		AdminPassHash: cfg.AdminPassHash,
		Secret:        cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize authenticator: %v", err)
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, auth)

	// Set up router
	r := setupRouter(ctrl, auth)

	fmt.Printf("🚀 Ansökningsservern starting on port %s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DBPath)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth *authenticator.Authenticator) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/api/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"message": "Servern funkar! 🚀"}`)
	})
	r.Post("/api/apply", ctrl.Application.Apply)
	r.Post("/api/login", ctrl.Auth.Login)

	// PROTECTED ROUTES (bearer token required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth(auth))

		r.Get("/api/applications", ctrl.Application.List)
		r.Patch("/api/applications/{id}/status", ctrl.Application.UpdateStatus)
		r.Delete("/api/applications/{id}", ctrl.Application.Delete)
		r.Get("/api/admin-logs", ctrl.AdminLog.Index)
	})

	// Static frontend (submission form and admin panel)
	r.Handle("/*", http.FileServer(http.Dir("public")))

	return r
}
