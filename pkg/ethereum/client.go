package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/apex-omni-deposit/internal/metrics"
	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
	"github.com/chainsafe/apex-omni-deposit/pkg/ethereum/contracts"
)

// Backend is the RPC surface used by the client. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// Config contains the chain client settings
type Config struct {
	ChainID    *big.Int
	PrivateKey *ecdsa.PrivateKey
	// StarkKey is the x coordinate of the account's STARK public key
	StarkKey  *big.Int
	Contracts ExchangeContracts

	GasLimit    uint64
	MaxGasPrice *big.Int

	ConfirmationTimeout time.Duration `default:"120s"`
	PollInterval        time.Duration `default:"3s"`
}

// Client submits allowance and deposit transactions for one account
type Client struct {
	config  Config
	backend Backend
	address common.Address
	logger  *zap.Logger

	exchange *contracts.StarkExchange
	token    *contracts.ERC20
}

// NewClient creates a new Ethereum client bound to the exchange contracts
func NewClient(cfg Config, backend Backend, logger *zap.Logger) (*Client, error) {
	if backend == nil {
		return nil, apperrors.ClientInitError(nil, "nil ethereum backend")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, apperrors.ClientInitError(err, "apply chain client defaults")
	}
	if err := cfg.validate(); err != nil {
		return nil, apperrors.ClientInitError(err, "invalid chain client config")
	}

	exchange, err := contracts.NewStarkExchange(cfg.Contracts.Exchange, backend)
	if err != nil {
		return nil, apperrors.ClientInitError(err, "failed to load exchange contract")
	}
	token, err := contracts.NewERC20(cfg.Contracts.Token, backend)
	if err != nil {
		return nil, apperrors.ClientInitError(err, "failed to load token contract")
	}

	address := crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey)

	logger.Info("Bound exchange contracts",
		zap.String("chain_id", cfg.ChainID.String()),
		zap.String("exchange_contract", cfg.Contracts.Exchange.Hex()),
		zap.String("token_contract", cfg.Contracts.Token.Hex()),
		zap.String("sender_address", address.Hex()))

	return &Client{
		config:   cfg,
		backend:  backend,
		address:  address,
		logger:   logger,
		exchange: exchange,
		token:    token,
	}, nil
}

func (cfg *Config) validate() error {
	switch {
	case cfg.ChainID == nil || cfg.ChainID.Sign() <= 0:
		return errors.New("chain id is required")
	case cfg.PrivateKey == nil:
		return errors.New("private key is required")
	case cfg.StarkKey == nil || cfg.StarkKey.Sign() <= 0:
		return errors.New("stark key is required")
	}
	return cfg.Contracts.validate()
}

// Close closes the RPC connection
func (c *Client) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

// Address returns the account that signs transactions
func (c *Client) Address() common.Address {
	return c.address
}

// GetExchangeContract returns the exchange contract deposits are sent to
func (c *Client) GetExchangeContract() common.Address {
	return c.config.Contracts.Exchange
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.config.PrivateKey, c.config.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	nonce, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.config.GasLimit

	// Set gas price if configured
	if c.config.MaxGasPrice != nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(c.config.MaxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", c.config.MaxGasPrice.String()))
			auth.GasPrice = new(big.Int).Set(c.config.MaxGasPrice)
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// Allowance returns how many token base units the exchange may pull from the sender
func (c *Client) Allowance(ctx context.Context) (*big.Int, error) {
	allowance, err := c.token.Allowance(&bind.CallOpts{Context: ctx}, c.address, c.config.Contracts.Exchange)
	if err != nil {
		return nil, apperrors.RemoteError(err, "failed to read token allowance")
	}
	return allowance, nil
}

// HasSufficientAllowance reports whether the current allowance covers amount
func (c *Client) HasSufficientAllowance(ctx context.Context, amount decimal.Decimal) (bool, error) {
	needed := c.config.Contracts.ToBaseUnits(amount)
	allowance, err := c.Allowance(ctx)
	if err != nil {
		return false, err
	}
	return allowance.Cmp(needed) >= 0, nil
}

// SetTokenMaxAllowance approves spender for the maximum token amount
func (c *Client) SetTokenMaxAllowance(ctx context.Context, spender common.Address) (common.Hash, error) {
	c.logger.Info("Submitting max token allowance",
		zap.String("token", c.config.Contracts.Token.Hex()),
		zap.String("spender", spender.Hex()))

	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, apperrors.ChainSubmissionError(err, "failed to create transactor")
	}

	tx, err := c.token.Approve(auth, spender, math.MaxBig256)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues("allowance", "failed").Inc()
		return common.Hash{}, apperrors.ChainSubmissionError(err, "failed to submit allowance transaction")
	}
	metrics.TransactionsSent.WithLabelValues("allowance", "submitted").Inc()

	c.logger.Info("Allowance transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()))

	return tx.Hash(), nil
}

// DepositToExchange submits a deposit of amount collateral into positionID.
// It returns as soon as the transaction is sent.
func (c *Client) DepositToExchange(ctx context.Context, positionID string, amount decimal.Decimal) (common.Hash, error) {
	if !amount.IsPositive() {
		return common.Hash{}, apperrors.ConfigurationError(nil,
			fmt.Sprintf("deposit amount must be positive, got %s", amount.String()))
	}
	vaultID, ok := new(big.Int).SetString(positionID, 10)
	if !ok || vaultID.Sign() < 0 {
		return common.Hash{}, apperrors.ConfigurationError(nil, fmt.Sprintf("invalid position id %q", positionID))
	}
	quantized, err := c.config.Contracts.Quantize(amount)
	if err != nil {
		return common.Hash{}, apperrors.ConfigurationError(err, "invalid deposit amount")
	}

	c.logger.Info("Submitting deposit to exchange",
		zap.String("position_id", positionID),
		zap.String("amount", amount.String()),
		zap.String("quantized_amount", quantized.String()))

	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, apperrors.ChainSubmissionError(err, "failed to create transactor")
	}

	tx, err := c.exchange.Deposit(auth, c.config.StarkKey, c.config.Contracts.AssetType, vaultID, quantized)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues("deposit", "failed").Inc()
		return common.Hash{}, apperrors.ChainSubmissionError(err, "failed to submit deposit transaction")
	}
	metrics.TransactionsSent.WithLabelValues("deposit", "submitted").Inc()

	c.logger.Info("Deposit transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("position_id", positionID),
		zap.String("amount", amount.String()))

	return tx.Hash(), nil
}

// WaitForTx polls for the receipt of txHash until it is mined or the
// confirmation timeout passes. A timeout is reported as a chain timeout
// error; a reverted transaction as a chain submission error.
func (c *Client) WaitForTx(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	start := time.Now()
	waitCtx, cancel := context.WithTimeout(ctx, c.config.ConfirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(waitCtx, txHash)
		if err == nil {
			metrics.ConfirmationWait.Observe(time.Since(start).Seconds())
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, apperrors.ChainSubmissionError(nil,
					fmt.Sprintf("transaction %s reverted in block %s", txHash.Hex(), receipt.BlockNumber))
			}
			c.logger.Info("Transaction mined",
				zap.String("tx_hash", txHash.Hex()),
				zap.Uint64("gas_used", receipt.GasUsed))
			return receipt, nil
		}
		if !errors.Is(err, goethereum.NotFound) && waitCtx.Err() == nil {
			c.logger.Warn("Failed to fetch transaction receipt",
				zap.String("tx_hash", txHash.Hex()),
				zap.Error(err))
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, apperrors.ChainTimeoutError(waitCtx.Err(),
				fmt.Sprintf("transaction %s not mined after %s", txHash.Hex(), c.config.ConfirmationTimeout))
		case <-ticker.C:
		}
	}
}
