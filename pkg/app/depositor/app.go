// Package depositor implements app.Runner for the deposit tool.
package depositor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/apex-omni-deposit/internal/metrics"
	"github.com/chainsafe/apex-omni-deposit/pkg/apexomni"
	"github.com/chainsafe/apex-omni-deposit/pkg/app"
	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
	"github.com/chainsafe/apex-omni-deposit/pkg/config"
	"github.com/chainsafe/apex-omni-deposit/pkg/deposit"
)

// App runs one deposit with a loaded configuration.
type App struct {
	cfg    *config.Config
	out    io.Writer
	opts   []apexomni.Option
	result *deposit.Result
}

var _ app.Runner = (*App)(nil)

// NewApp creates the deposit application. Progress is written to out
// (stdout when nil); opts are passed to the exchange client.
func NewApp(cfg *config.Config, out io.Writer, opts ...apexomni.Option) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{cfg: cfg, out: out, opts: opts}
}

// Result returns the outcome of the last Run, nil if nothing was submitted.
func (a *App) Result() *deposit.Result {
	return a.result
}

// Run builds the clients and performs the deposit.
// A deposit still pending after the confirmation timeout is not an error.
func (a *App) Run(ctx context.Context) error {
	if a.cfg == nil {
		return apperrors.ConfigurationError(nil, "nil config")
	}
	cfg := a.cfg

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return apperrors.ConfigurationError(err, "create logger")
	}
	defer func() { _ = logger.Sync() }()

	logger = logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("network", cfg.Network.Name))
	defer writeMetrics(cfg.Monitoring.TextfilePath, logger)

	logger.Info("Starting ApeX Omni deposit",
		zap.String("endpoint", cfg.Network.Endpoint),
		zap.Int64("network_id", cfg.Network.NetworkID),
		zap.String("amount", cfg.Deposit.Amount.String()),
		zap.Bool("ensure_allowance", cfg.Deposit.EnsureAllowance))
	fmt.Fprintf(a.out, "Using %s environment\n", strings.ToUpper(cfg.Network.Name))

	opts := append([]apexomni.Option{apexomni.WithLogger(logger)}, a.opts...)
	client, err := apexomni.NewClient(cfg, opts...)
	if err != nil {
		logger.Error("Failed to initialize exchange client", zap.Error(err))
		return err
	}
	defer client.Close()

	runner := deposit.NewRunner(deposit.NewExchange(client), deposit.Options{
		Amount:          cfg.Deposit.Amount,
		EnsureAllowance: cfg.Deposit.EnsureAllowance,
		Network:         cfg.Network.Name,
	}, a.out, logger)

	result, err := runner.Run(ctx)
	a.result = result
	if err != nil {
		logger.Error("Deposit failed",
			zap.String("category", apperrors.CategoryOf(err).String()),
			zap.Error(err))
		return err
	}
	return nil
}

func writeMetrics(path string, logger *zap.Logger) {
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn("Failed to write metrics textfile", zap.String("path", path), zap.Error(err))
	}
}
