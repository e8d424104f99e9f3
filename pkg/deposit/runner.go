// Package deposit runs a single collateral deposit from an L1 wallet into
// an exchange account.
package deposit

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/apex-omni-deposit/internal/metrics"
	"github.com/chainsafe/apex-omni-deposit/pkg/apexomni"
	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
)

// Status is the outcome of a run that did not fail
type Status string

const (
	// StatusConfirmed means the deposit transaction was mined successfully.
	StatusConfirmed Status = "confirmed"
	// StatusPending means the deposit was submitted but not mined before the
	// confirmation timeout. It may still be mined.
	StatusPending Status = "pending"
)

//go:generate mockery --name ChainClient --output mocks --outpkg mocks --filename mock_chain_client.go --with-expecter

// ChainClient submits and tracks L1 transactions
type ChainClient interface {
	GetExchangeContract() common.Address
	HasSufficientAllowance(ctx context.Context, amount decimal.Decimal) (bool, error)
	SetTokenMaxAllowance(ctx context.Context, spender common.Address) (common.Hash, error)
	DepositToExchange(ctx context.Context, positionID string, amount decimal.Decimal) (common.Hash, error)
	WaitForTx(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

//go:generate mockery --name ExchangeClient --output mocks --outpkg mocks --filename mock_exchange_client.go --with-expecter

// ExchangeClient reads exchange state and exposes the chain client bound by Configs
type ExchangeClient interface {
	Configs(ctx context.Context) (*apexomni.Configs, error)
	GetAccount(ctx context.Context) (*apexomni.Account, error)
	Chain() (ChainClient, error)
}

// Options are the parameters of one run
type Options struct {
	Amount          decimal.Decimal
	EnsureAllowance bool
	// Network labels metrics and log lines
	Network string
}

// Result describes a run that reached submission
type Result struct {
	PositionID  string          `json:"position_id"`
	Amount      decimal.Decimal `json:"amount"`
	AllowanceTx *common.Hash    `json:"allowance_tx,omitempty"`
	DepositTx   common.Hash     `json:"deposit_tx"`
	Status      Status          `json:"status"`
}

// Runner performs one deposit. It is not safe to reuse: every Run submits
// a new deposit.
type Runner struct {
	exchange ExchangeClient
	opts     Options
	out      io.Writer
	logger   *zap.Logger
}

// NewRunner creates a deposit runner. Progress lines are written to out.
func NewRunner(exchange ExchangeClient, opts Options, out io.Writer, logger *zap.Logger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		exchange: exchange,
		opts:     opts,
		out:      out,
		logger:   logger,
	}
}

// Run fetches configs and the account, optionally ensures the token
// allowance, submits the deposit and waits for it to be mined.
// A confirmation timeout is not an error: the result is StatusPending.
func (r *Runner) Run(ctx context.Context) (result *Result, err error) {
	if !r.opts.Amount.IsPositive() {
		return nil, apperrors.ConfigurationError(nil,
			fmt.Sprintf("deposit amount must be positive, got %s", r.opts.Amount.String()))
	}

	start := time.Now()
	defer func() {
		status := "failed"
		if result != nil && err == nil {
			status = string(result.Status)
		}
		if err != nil {
			metrics.ErrorsTotal.WithLabelValues("deposit", apperrors.CategoryOf(err).String()).Inc()
		}
		metrics.DepositsTotal.WithLabelValues(r.opts.Network, status).Inc()
		metrics.DepositDuration.WithLabelValues(r.opts.Network).Observe(time.Since(start).Seconds())
	}()

	r.logger.Warn("Deposits are not idempotent, every run submits a new deposit",
		zap.String("network", r.opts.Network),
		zap.String("amount", r.opts.Amount.String()))

	r.progress("Fetching exchange configs...")
	if _, err := r.exchange.Configs(ctx); err != nil {
		return nil, err
	}

	r.progress("Fetching account...")
	account, err := r.exchange.GetAccount(ctx)
	if err != nil {
		return nil, err
	}
	positionID := account.PositionID()
	r.progress("Account fetched, position id %s", positionID)

	chain, err := r.exchange.Chain()
	if err != nil {
		return nil, err
	}

	result = &Result{
		PositionID: positionID,
		Amount:     r.opts.Amount,
	}

	if err := r.ensureAllowance(ctx, chain, result); err != nil {
		return result, err
	}

	r.progress("Submitting deposit of %s to position %s...", r.opts.Amount.String(), positionID)
	txHash, err := chain.DepositToExchange(ctx, positionID, r.opts.Amount)
	if err != nil {
		return result, err
	}
	result.DepositTx = txHash
	metrics.DepositAmount.WithLabelValues(r.opts.Network).Observe(r.opts.Amount.InexactFloat64())

	r.progress("Waiting for deposit %s...", txHash.Hex())
	receipt, err := chain.WaitForTx(ctx, txHash)
	switch {
	case err == nil:
		metrics.GasUsed.WithLabelValues("deposit").Observe(float64(receipt.GasUsed))
		result.Status = StatusConfirmed
		r.progress("...done.")
		r.progress("Deposit complete. Check your account balance.")
	case apperrors.Is(err, apperrors.CategoryChainTimeout):
		r.logger.Warn("Deposit not confirmed before timeout",
			zap.String("tx_hash", txHash.Hex()),
			zap.Error(err))
		result.Status = StatusPending
		r.progress("...still pending, the deposit may be mined later: %s", txHash.Hex())
	default:
		return result, err
	}

	r.logger.Info("Deposit finished",
		zap.String("position_id", positionID),
		zap.String("amount", r.opts.Amount.String()),
		zap.String("tx_hash", txHash.Hex()),
		zap.String("status", string(result.Status)))

	return result, nil
}

// ensureAllowance approves the exchange contract when the current allowance
// does not cover the amount. The deposit is not submitted unless the
// approval is mined.
func (r *Runner) ensureAllowance(ctx context.Context, chain ChainClient, result *Result) error {
	if !r.opts.EnsureAllowance {
		r.progress("Allowance check skipped")
		return nil
	}

	ok, err := chain.HasSufficientAllowance(ctx, r.opts.Amount)
	if err != nil {
		return err
	}
	if ok {
		r.progress("Allowance sufficient, no approval needed")
		return nil
	}

	spender := chain.GetExchangeContract()
	r.progress("Approving %s to spend collateral...", spender.Hex())
	txHash, err := chain.SetTokenMaxAllowance(ctx, spender)
	if err != nil {
		return err
	}
	result.AllowanceTx = &txHash

	r.progress("Waiting for allowance %s...", txHash.Hex())
	receipt, err := chain.WaitForTx(ctx, txHash)
	if err != nil {
		if apperrors.Is(err, apperrors.CategoryChainTimeout) {
			return apperrors.ChainSubmissionError(err, "allowance not confirmed, deposit not submitted")
		}
		return err
	}
	metrics.GasUsed.WithLabelValues("allowance").Observe(float64(receipt.GasUsed))
	r.progress("...done.")
	return nil
}

func (r *Runner) progress(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
