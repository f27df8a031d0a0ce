package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "jobboard/internal/adapters/web"
	"jobboard/internal/auth"
	"jobboard/internal/core"
	"jobboard/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	companies := core.NewCompanyService(pool)
	jobs := core.NewJobService(pool)
	users := core.NewUserService(pool, auth.NewHasher())

	tokens, err := auth.NewTokenService(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(companies, jobs, users, tokens, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
