package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"hospitalflow/cache"
	"hospitalflow/config"
	"hospitalflow/database"
	"hospitalflow/routes"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the cache utility
	cacheClient, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	handler := routes.SetupRoutes(cacheClient, cfg, db)

	srv := &http.Server{
		Addr:           cfg.ServerAddress,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	serverAddress := os.Getenv("SERVER_ADDRESS")
	if serverAddress == "" {
		serverAddress = ":8930"
	}

	return &config.AppConfig{
		DBURL:         dbURL,
		RedisAddress:  redisAddress,
		BearerToken:   bearerToken,
		ServerAddress: serverAddress,
	}, nil
}
