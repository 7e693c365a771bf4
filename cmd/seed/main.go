package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/promptopia/promptopia-api/config"
)

// Seeds a demo user with a couple of prompts for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		log.Fatal("DB_HOST, DB_USER and DB_NAME must be set")
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, username, image)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, "demo@example.com", "demoprompter", "").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=demo@example.com\n", userID)

	prompts := []struct{ body, tag string }{
		{"Write a poem about the sea", "#poetry"},
		{"Plan a weekend trip to the mountains", "#travel"},
		{"Explain recursion to a five year old", "#teaching"},
	}
	for _, p := range prompts {
		var id string
		if err := db.QueryRow(`
			INSERT INTO prompts (creator_id, prompt, tag)
			VALUES ($1, $2, $3)
			RETURNING id
		`, userID, p.body, p.tag).Scan(&id); err != nil {
			log.Fatalf("failed to seed prompt: %v", err)
		}
		fmt.Printf("seeded prompt: id=%s tag=%s\n", id, p.tag)
	}
}
