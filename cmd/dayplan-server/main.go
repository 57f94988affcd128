package main

import (
	"log"
	"os"

	"github.com/existflow/dayplan/internal/config"
	"github.com/existflow/dayplan/internal/logger"
	"github.com/existflow/dayplan/server"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; env vars win over config.yaml.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if addr := os.Getenv("DAYPLAN_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if upstream := os.Getenv("DAYPLAN_UPSTREAM_URL"); upstream != "" {
		cfg.UpstreamURL = upstream
	}
	if version := os.Getenv("DAYPLAN_CACHE_VERSION"); version != "" {
		cfg.CacheVersion = version
	}

	if err := logger.Init(logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		FilePath:   cfg.LogFile,
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 5,
		Console:    cfg.LogConsole,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("DayPlan gateway starting on %s", cfg.ListenAddr)
	if err := srv.Start(cfg.ListenAddr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
