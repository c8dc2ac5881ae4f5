// The user service handles authentication (register, login, logout) and
// user record management over REST on port 4000.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/blogstack-go/auth"
	"github.com/user/blogstack-go/config"
	"github.com/user/blogstack-go/db"
	"github.com/user/blogstack-go/server"
	"github.com/user/blogstack-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig("4000")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokenIssuer := auth.NewTokenIssuer(*cfg.Auth)
	authService := auth.NewAuthService(auth.NewPgxUserStore(pool), auth.NewBcryptHasher(), tokenIssuer)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(pool)
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()
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

	r.Get("/health", userHandlers.HandleHealth())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		// Logout only needs a verifiable token; it changes no state.
		r.With(auth.TokenMiddleware(tokenIssuer)).Post("/logout", authHandlers.HandleLogout())
	})

	r.Route("/users", func(r chi.Router) {
		userHandlers.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	if err := server.Run(addr, r); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
