package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"record-management-api/internal/handler"
	"record-management-api/internal/middleware"
	"record-management-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	port := env("PORT", "8080")

	// database — postgres when configured, in-memory for demo runs
	var st store.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(context.Background(), dbURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("db ping: %v", err)
		}
		log.Println("connected to postgres")

		// run migrations
		if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
			log.Printf("migration file not found, skipping: %v", err)
		} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
			log.Printf("migration warning: %v", err)
		} else {
			log.Println("migration applied")
		}

		st = store.NewPostgres(pool)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		st = store.NewMemory()
	}

	h := handler.New(st)
	rl := middleware.NewRateLimiter(5, 10)

	httpSrv := &http.Server{
		Addr:    ":" + port,
		Handler: handler.Routes(h, rl),
	}
	go func() {
		log.Printf("http on :%s", port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
