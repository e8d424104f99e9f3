// Package apexomni is a minimal client for the ApeX Omni private API and
// the deposit contracts published in its configuration.
package apexomni

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/apex-omni-deposit/internal/metrics"
	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
	"github.com/chainsafe/apex-omni-deposit/pkg/config"
	"github.com/chainsafe/apex-omni-deposit/pkg/ethereum"
	"github.com/chainsafe/apex-omni-deposit/pkg/keys"
)

const maxResponseSize = 4 << 20

// Client talks to the private HTTP API of one network. Clients built with
// NewClient also carry the chain credentials needed to deposit.
type Client struct {
	cfg        *config.Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time

	ethKey  *ecdsa.PrivateKey
	stark   *keys.StarkKeyPair
	backend ethereum.Backend

	configs *Configs
	eth     *ethereum.Client
}

// NewAPIClient creates a client for the private API only.
func NewAPIClient(cfg *config.Config, opts ...Option) (*Client, error) {
	return newClient(cfg, applyOptions(opts))
}

// NewClient creates a client able to deposit. The L1 key and the STARK key
// pair are validated and the Ethereum RPC is dialed; the API is not contacted.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	s := applyOptions(opts)
	c, err := newClient(cfg, s)
	if err != nil {
		return nil, err
	}

	ethKey, address, err := keys.ParseEthPrivateKey(cfg.Credentials.Eth.PrivateKey)
	if err != nil {
		return nil, apperrors.ClientInitError(err, "invalid ETH_PRIVATE_KEY")
	}
	stark, err := keys.ParseStarkKeyPair(
		cfg.Credentials.Stark.PublicKey,
		cfg.Credentials.Stark.PublicKeyYCoordinate,
		cfg.Credentials.Stark.PrivateKey,
	)
	if err != nil {
		return nil, apperrors.ClientInitError(err, "invalid STARK key pair")
	}

	backend := s.backend
	if backend == nil {
		rpc, err := ethclient.Dial(cfg.Ethereum.RPCURL)
		if err != nil {
			return nil, apperrors.ClientInitError(err, "failed to connect to Ethereum RPC")
		}
		backend = rpc
	}

	c.ethKey = ethKey
	c.stark = stark
	c.backend = backend

	c.logger.Info("Exchange client initialized",
		zap.String("network", cfg.Network.Name),
		zap.String("endpoint", c.baseURL),
		zap.String("eth_address", address.Hex()),
		zap.String("stark_key", stark.PublicKeyHex()))

	return c, nil
}

func newClient(cfg *config.Config, s settings) (*Client, error) {
	if cfg == nil {
		return nil, apperrors.ClientInitError(nil, "nil config")
	}

	baseURL := s.baseURL
	if baseURL == "" {
		baseURL = cfg.Network.Endpoint
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apperrors.ClientInitError(err, fmt.Sprintf("invalid exchange endpoint %q", baseURL))
	}

	httpClient := s.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTP.RequestTimeout}
	}

	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     s.logger,
		now:        s.now,
	}, nil
}

// Close releases the chain connection.
func (c *Client) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

// Configs fetches the exchange configuration and binds the chain client
// to the collateral token and exchange contract of the configured network.
func (c *Client) Configs(ctx context.Context) (*Configs, error) {
	var configs Configs
	if err := c.get(ctx, "/symbols", nil, &configs); err != nil {
		return nil, err
	}
	c.configs = &configs

	if c.ethKey == nil {
		return &configs, nil
	}

	contracts, err := configs.ExchangeContracts(c.cfg.Network.NetworkID)
	if err != nil {
		return nil, apperrors.RemoteError(err, "exchange configs lack deposit settings")
	}

	var maxGasPrice *big.Int
	if c.cfg.Ethereum.MaxGasPrice != "" {
		maxGasPrice, _ = new(big.Int).SetString(c.cfg.Ethereum.MaxGasPrice, 10)
	}

	eth, err := ethereum.NewClient(ethereum.Config{
		ChainID:             c.cfg.Network.ChainID(),
		PrivateKey:          c.ethKey,
		StarkKey:            c.stark.PublicKey,
		Contracts:           contracts,
		GasLimit:            c.cfg.Ethereum.GasLimit,
		MaxGasPrice:         maxGasPrice,
		ConfirmationTimeout: c.cfg.Ethereum.ConfirmationTimeout,
		PollInterval:        c.cfg.Ethereum.ConfirmationPollInterval,
	}, c.backend, c.logger)
	if err != nil {
		return nil, err
	}
	c.eth = eth

	c.logger.Info("Fetched exchange configs",
		zap.String("exchange_contract", contracts.Exchange.Hex()),
		zap.String("token", contracts.Token.Hex()),
		zap.String("resolution", contracts.Resolution.String()))

	return &configs, nil
}

// GetAccount fetches the account of the API key.
func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.get(ctx, "/account", nil, &account); err != nil {
		return nil, err
	}
	if account.ID == "" {
		return nil, apperrors.RemoteError(nil, "account not registered")
	}

	c.logger.Info("Fetched account",
		zap.String("account_id", account.ID),
		zap.String("position_id", account.PositionID()))

	return &account, nil
}

// GetAccountBalance fetches the equity and margin summary.
func (c *Client) GetAccountBalance(ctx context.Context) (*AccountBalance, error) {
	var balance AccountBalance
	if err := c.get(ctx, "/account-balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// Eth returns the chain client. It is available once Configs succeeded.
func (c *Client) Eth() (*ethereum.Client, error) {
	if c.ethKey == nil {
		return nil, apperrors.ClientInitError(nil, "client has no chain credentials")
	}
	if c.eth == nil {
		return nil, apperrors.GeneralError(errors.New("exchange configs not loaded"))
	}
	return c.eth, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	start := time.Now()
	path := "/v3" + endpoint
	var data string
	if q := encodeQuery(params); q != "" {
		path += "?" + q
		data = "&" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	timestamp := strconv.FormatInt(c.now().UnixMilli(), 10)
	api := c.cfg.Credentials.API
	req.Header.Set(HeaderSignature, Sign(api.Secret, timestamp, http.MethodGet, path, data))
	req.Header.Set(HeaderTimestamp, timestamp)
	req.Header.Set(HeaderAPIKey, api.Key)
	req.Header.Set(HeaderPassphrase, api.Passphrase)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "error").Inc()
		return apperrors.RemoteError(err, "GET "+endpoint+" failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "error").Inc()
		return apperrors.RemoteError(err, "GET "+endpoint+": read body")
	}

	c.logger.Debug("API request completed",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.APIRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		return apperrors.RemoteError(nil,
			fmt.Sprintf("GET %s: HTTP %d: %s", endpoint, resp.StatusCode, truncate(raw, 256)))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "invalid").Inc()
		return apperrors.RemoteError(err, "GET "+endpoint+": decode response")
	}
	if env.failed() {
		metrics.APIRequests.WithLabelValues(endpoint, "rejected").Inc()
		return apperrors.RemoteError(nil, fmt.Sprintf("GET %s: code %s: %s", endpoint, env.Code, env.Msg))
	}

	payload := raw
	if len(env.Data) > 0 && string(env.Data) != "null" {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "invalid").Inc()
		return apperrors.RemoteError(err, "GET "+endpoint+": decode payload")
	}

	metrics.APIRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
