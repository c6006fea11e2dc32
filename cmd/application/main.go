package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"commerceadmin_api/config"
	panelapp "commerceadmin_api/internal/panel/app"
	"commerceadmin_api/pkg/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv("PANEL_CONFIG"), "путь к yaml-конфигу панели")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var cfg *config.AppConfig
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config %s: %v", *configPath, err)
		}
		cfg = loaded
	} else {
		cfg = config.GetConfig()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger := logger.NewLogrusLogger(log.StandardLogger(), "panel")
	server := panelapp.NewPanelServer(cfg, appLogger, os.Stdout)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("panel stopped with error: %v", err)
	}
}
