package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/khalilrez/food-log-api/internal/cli/commands"
	"github.com/khalilrez/food-log-api/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + .env + флаги; серверные поля клиент не использует
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(os.Stdout, cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(commands.Dispatch(ctx, cfg, flag.Args()))
}

func printVersion(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "FoodLog CLI %s (built %s)\n", version, buildDate)
	fmt.Fprintf(w, "Server:     %s\n", cfg.ServerURL)
	fmt.Fprintf(w, "Token file: %s\n", cfg.TokenFile)
}
