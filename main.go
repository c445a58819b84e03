package main

import (
	"log"

	"edudesk/adapters/api"
	"edudesk/internal"
	"edudesk/internal/config"
	"edudesk/ui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	backend := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Backend.MaxPages)
	server := ui.NewServer(cfg, backend)

	internal.DefaultLogger.Info("EduDesk admin console listening on :%s (backend %s)",
		cfg.Server.Port, cfg.Backend.BaseURL)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
