package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/UmerKhan-18/TodoApp/config"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	todos := []struct {
		title, description string
		completed          bool
	}{
		{"buy milk", "2%", false},
		{"water plants", "balcony and kitchen", true},
	}
	for _, t := range todos {
		if _, err := db.Exec(`
			INSERT INTO todos (owner_id, title, description, completed)
			VALUES ($1, $2, $3, $4)
		`, id, t.title, t.description, t.completed); err != nil {
			log.Fatalf("failed to seed todo %q: %v", t.title, err)
		}
	}
	fmt.Printf("seeded %d todos for %s\n", len(todos), email)
}
