package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ujjwalkirti/leave-marker/internal/cli"
	"github.com/ujjwalkirti/leave-marker/internal/config"
	"github.com/ujjwalkirti/leave-marker/internal/logger"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	if err := cli.Root(cfg, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
