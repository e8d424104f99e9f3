// Package balance implements app.Runner for the balance report.
package balance

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/apex-omni-deposit/internal/metrics"
	"github.com/chainsafe/apex-omni-deposit/pkg/apexomni"
	"github.com/chainsafe/apex-omni-deposit/pkg/app"
	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
	"github.com/chainsafe/apex-omni-deposit/pkg/config"
	"github.com/chainsafe/apex-omni-deposit/pkg/report"
)

// App fetches the account balances and prints the summary.
type App struct {
	cfg  *config.Config
	out  io.Writer
	opts []apexomni.Option
	now  func() time.Time

	savedPath string
}

var _ app.Runner = (*App)(nil)

// NewApp creates the balance application. The summary is written to out
// (stdout when nil); opts are passed to the exchange client.
func NewApp(cfg *config.Config, out io.Writer, opts ...apexomni.Option) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{cfg: cfg, out: out, opts: opts, now: time.Now}
}

// SavedPath returns the report file written by the last Run, if any.
func (a *App) SavedPath() string {
	return a.savedPath
}

// Run fetches the account and balance summary, prints the report and
// saves it when AUTO_SAVE_REPORTS is set.
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
	defer func() {
		if err := metrics.WriteTextfile(cfg.Monitoring.TextfilePath); err != nil {
			logger.Warn("Failed to write metrics textfile", zap.Error(err))
		}
	}()

	fmt.Fprintf(a.out, "Using %s environment\n", strings.ToUpper(cfg.Network.Name))

	opts := append([]apexomni.Option{apexomni.WithLogger(logger)}, a.opts...)
	client, err := apexomni.NewAPIClient(cfg, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Fetching account data...")
	account, err := client.GetAccount(ctx)
	if err != nil {
		logger.Error("Failed to fetch account", zap.Error(err))
		return err
	}
	balance, err := client.GetAccountBalance(ctx)
	if err != nil {
		logger.Error("Failed to fetch account balance", zap.Error(err))
		return err
	}

	r := report.Build(account, balance, a.now())
	r.Network = cfg.Network.Name
	report.Print(a.out, r)

	if !cfg.Reports.AutoSave {
		return nil
	}

	path, err := report.Save(cfg.Reports.Dir, cfg.Reports.Format, r)
	if err != nil {
		return apperrors.GeneralError(err)
	}
	a.savedPath = path
	logger.Info("Balance report saved", zap.String("path", path))
	fmt.Fprintf(a.out, "Data saved to %s\n", path)

	return nil
}
