// Command setup creates the StudyQuest database and applies the embedded
// migrations. With -reset it drops the database first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/StudyQuest_Go/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "drop the database before creating it")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		log.Fatal("DB_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Manage databases from the default 'postgres' database
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	serverPool, err := database.NewPool(serverConnString, 2, time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	if *reset {
		log.Printf("Terminating existing connections to database %s...", dbName)
		if _, err := serverPool.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}

		log.Printf("Dropping database %s if it exists...", dbName)
		if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
	}

	var exists bool
	if err := serverPool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if exists {
		log.Printf("Database %s already exists.", dbName)
	} else {
		log.Printf("Creating database %s...", dbName)
		if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
	serverPool.Close()

	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
	pool, err := database.NewPool(targetConnString, 2, time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database setup complete.")
}
