package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"finledger/config"
	"finledger/di"
	"finledger/menu"
)

func main() {
	_ = godotenv.Load()
	cfg := config.New()

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if err := os.MkdirAll(cfg.ImportDir, 0o755); err != nil {
		log.WithError(err).Fatal("cannot create import dir")
	}
	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.WithError(err).Fatal("cannot create export dir")
	}

	app, err := di.Build(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wiring failed:", err)
		os.Exit(1)
	}

	menu.Run(context.Background(), app.Menu, &app.Deps)
}
