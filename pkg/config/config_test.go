package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
)

var requiredEnv = map[string]string{
	"ETH_PRIVATE_KEY":               "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
	"APEX_API_KEY":                  "api-key",
	"APEX_SECRET":                   "api-secret",
	"APEX_PASSPHRASE":               "api-passphrase",
	"STARK_PUBLIC_KEY":              "0x1",
	"STARK_PUBLIC_KEY_Y_COORDINATE": "0x2",
	"STARK_PRIVATE_KEY":             "0x3",
}

var optionalEnv = []string{
	"IS_TESTNET", "ETH_RPC_URL", "ETH_GAS_LIMIT", "ETH_MAX_GAS_PRICE",
	"CONFIRMATION_TIMEOUT", "CONFIRMATION_POLL_INTERVAL",
	"DEPOSIT_AMOUNT", "ENSURE_ALLOWANCE", "REQUEST_TIMEOUT",
	"AUTO_SAVE_REPORTS", "REPORTS_DIR", "REPORT_FORMAT",
	"METRICS_TEXTFILE", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
}

// setEnv clears every variable the loader reads, then applies overrides.
func setEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	for key := range requiredEnv {
		t.Setenv(key, "")
	}
	for _, key := range optionalEnv {
		t.Setenv(key, "")
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}
}

func withRequired(extra map[string]string) map[string]string {
	env := make(map[string]string, len(requiredEnv)+len(extra))
	for k, v := range requiredEnv {
		env[k] = v
	}
	for k, v := range extra {
		env[k] = v
	}
	return env
}

func TestResolveNetwork(t *testing.T) {
	assert.Equal(t, TestNetwork, ResolveNetwork(true))
	assert.Equal(t, MainNetwork, ResolveNetwork(false))
	assert.Equal(t, int64(11155111), TestNetwork.ChainID().Int64())
}

func TestLoadDeposit_NetworkSelection(t *testing.T) {
	tests := []struct {
		name      string
		isTestnet string
		want      Network
	}{
		{name: "true selects testnet", isTestnet: "true", want: TestNetwork},
		{name: "false selects mainnet", isTestnet: "false", want: MainNetwork},
		{name: "unset selects mainnet", isTestnet: "", want: MainNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, withRequired(map[string]string{"IS_TESTNET": tt.isTestnet}))

			cfg, err := LoadDeposit()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Network)
			assert.Equal(t, tt.want.RPCURL, cfg.Ethereum.RPCURL)
		})
	}
}

func TestLoadDeposit_Defaults(t *testing.T) {
	setEnv(t, withRequired(nil))

	cfg, err := LoadDeposit()
	require.NoError(t, err)

	assert.True(t, cfg.Deposit.Amount.Equal(decimal.RequireFromString("0.1")))
	assert.False(t, cfg.Deposit.EnsureAllowance)
	assert.Equal(t, 120*time.Second, cfg.Ethereum.ConfirmationTimeout)
	assert.Equal(t, 3*time.Second, cfg.Ethereum.ConfirmationPollInterval)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.OutputPath)
	assert.Equal(t, "api-key", cfg.Credentials.API.Key)
	assert.Equal(t, "0x2", cfg.Credentials.Stark.PublicKeyYCoordinate)
}

func TestLoadDeposit_Overrides(t *testing.T) {
	setEnv(t, withRequired(map[string]string{
		"DEPOSIT_AMOUNT":       "25.5",
		"ENSURE_ALLOWANCE":     "true",
		"ETH_RPC_URL":          "http://localhost:8545",
		"CONFIRMATION_TIMEOUT": "5m",
		"ETH_MAX_GAS_PRICE":    "50000000000",
	}))

	cfg, err := LoadDeposit()
	require.NoError(t, err)

	assert.True(t, cfg.Deposit.Amount.Equal(decimal.RequireFromString("25.5")))
	assert.True(t, cfg.Deposit.EnsureAllowance)
	assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, 5*time.Minute, cfg.Ethereum.ConfirmationTimeout)
	assert.Equal(t, "50000000000", cfg.Ethereum.MaxGasPrice)
}

func TestLoadDeposit_MissingCredential(t *testing.T) {
	for key := range requiredEnv {
		t.Run(key, func(t *testing.T) {
			setEnv(t, withRequired(map[string]string{key: ""}))

			cfg, err := LoadDeposit()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadDeposit_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-1", "0.000", "abc"} {
		t.Run(amount, func(t *testing.T) {
			setEnv(t, withRequired(map[string]string{"DEPOSIT_AMOUNT": amount}))

			_, err := LoadDeposit()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
		})
	}
}

func TestLoadDeposit_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"IS_TESTNET":           "maybe",
		"CONFIRMATION_TIMEOUT": "soon",
		"ETH_MAX_GAS_PRICE":    "12.5",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			setEnv(t, withRequired(map[string]string{key: value}))

			_, err := LoadDeposit()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
		})
	}
}

func TestLoadBalance_OnlyNeedsAPICredentials(t *testing.T) {
	setEnv(t, map[string]string{
		"APEX_API_KEY":      "api-key",
		"APEX_SECRET":       "api-secret",
		"APEX_PASSPHRASE":   "api-passphrase",
		"AUTO_SAVE_REPORTS": "true",
		"REPORT_FORMAT":     "yaml",
	})

	cfg, err := LoadBalance()
	require.NoError(t, err)
	assert.True(t, cfg.Reports.AutoSave)
	assert.Equal(t, "yaml", cfg.Reports.Format)
	assert.Equal(t, "./reports", cfg.Reports.Dir)
}

func TestLoadBalance_RejectsUnknownFormat(t *testing.T) {
	setEnv(t, map[string]string{
		"APEX_API_KEY":    "api-key",
		"APEX_SECRET":     "api-secret",
		"APEX_PASSPHRASE": "api-passphrase",
		"REPORT_FORMAT":   "xml",
	})

	_, err := LoadBalance()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
	assert.Contains(t, err.Error(), "REPORT_FORMAT")
}

func TestCredentials_StringRedactsSecrets(t *testing.T) {
	creds := Credentials{
		API: APICredentials{Key: "abcdefgh", Secret: "topsecret", Passphrase: "pass"},
		Eth: EthCredentials{PrivateKey: "deadbeef"},
	}

	out := creds.String()
	assert.NotContains(t, out, "topsecret")
	assert.NotContains(t, out, "deadbeef")
	assert.NotContains(t, out, "abcdefgh")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)

	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console", OutputPath: "stderr"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
