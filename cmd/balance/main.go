package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/chainsafe/apex-omni-deposit/pkg/app/balance"
	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
	"github.com/chainsafe/apex-omni-deposit/pkg/config"
)

func main() {
	// Variables already set in the environment take precedence over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
		os.Exit(apperrors.ExitCode(apperrors.ConfigurationError(err, ".env")))
	}

	cfg, err := config.LoadBalance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Required: APEX_API_KEY, APEX_SECRET, APEX_PASSPHRASE (IS_TESTNET optional)")
		os.Exit(apperrors.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := balance.NewApp(cfg, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to retrieve balance data: %v\n", err)
		stop()
		os.Exit(apperrors.ExitCode(err))
	}
}
