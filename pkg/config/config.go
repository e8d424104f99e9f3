package config

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
)

// Network is one of the fixed exchange environments.
type Network struct {
	Name      string
	Endpoint  string
	NetworkID int64
	RPCURL    string
}

var (
	// MainNetwork is the production ApeX Omni environment.
	MainNetwork = Network{
		Name:      "mainnet",
		Endpoint:  "https://omni.apex.exchange/api",
		NetworkID: 1,
		RPCURL:    "https://ethereum-rpc.publicnode.com",
	}

	// TestNetwork is the ApeX Omni testnet environment.
	TestNetwork = Network{
		Name:      "testnet",
		Endpoint:  "https://testnet.omni.apex.exchange/api",
		NetworkID: 11155111,
		RPCURL:    "https://ethereum-sepolia-rpc.publicnode.com",
	}
)

// ResolveNetwork selects the network preset for the testnet flag.
func ResolveNetwork(isTestnet bool) Network {
	if isTestnet {
		return TestNetwork
	}
	return MainNetwork
}

// ChainID returns the network id as a chain id.
func (n Network) ChainID() *big.Int {
	return big.NewInt(n.NetworkID)
}

// Config represents the application configuration
type Config struct {
	IsTestnet   bool             `mapstructure:"is_testnet"`
	Credentials Credentials      `mapstructure:"credentials"`
	Ethereum    EthereumConfig   `mapstructure:"ethereum"`
	Deposit     DepositConfig    `mapstructure:"deposit"`
	HTTP        HTTPConfig       `mapstructure:"http"`
	Reports     ReportsConfig    `mapstructure:"reports"`
	Monitoring  MonitoringConfig `mapstructure:"monitoring"`
	Logging     LoggingConfig    `mapstructure:"logging"`

	// Network is resolved from IsTestnet during loading.
	Network Network `mapstructure:"-"`
}

// Credentials holds every secret the tool needs. Never log it.
type Credentials struct {
	API   APICredentials   `mapstructure:"api"`
	Eth   EthCredentials   `mapstructure:"eth"`
	Stark StarkCredentials `mapstructure:"stark"`
}

// APICredentials authenticate private exchange API calls
type APICredentials struct {
	Key        string `mapstructure:"key" env:"APEX_API_KEY" validate:"required"`
	Secret     string `mapstructure:"secret" env:"APEX_SECRET" validate:"required"`
	Passphrase string `mapstructure:"passphrase" env:"APEX_PASSPHRASE" validate:"required"`
}

// EthCredentials holds the L1 signing key
type EthCredentials struct {
	PrivateKey string `mapstructure:"private_key" env:"ETH_PRIVATE_KEY" validate:"required"`
}

// StarkCredentials holds the L2 key pair
type StarkCredentials struct {
	PublicKey            string `mapstructure:"public_key" env:"STARK_PUBLIC_KEY" validate:"required"`
	PublicKeyYCoordinate string `mapstructure:"public_key_y_coordinate" env:"STARK_PUBLIC_KEY_Y_COORDINATE" validate:"required"`
	PrivateKey           string `mapstructure:"private_key" env:"STARK_PRIVATE_KEY" validate:"required"`
}

// String keeps secrets out of logs and error messages.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{api_key=%s}", redact(c.API.Key))
}

// GoString keeps secrets out of %#v output.
func (c Credentials) GoString() string {
	return c.String()
}

func redact(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// EthereumConfig contains Ethereum client settings
type EthereumConfig struct {
	RPCURL                   string        `mapstructure:"rpc_url"`
	GasLimit                 uint64        `mapstructure:"gas_limit"`
	MaxGasPrice              string        `mapstructure:"max_gas_price"`
	ConfirmationTimeout      time.Duration `mapstructure:"confirmation_timeout" env:"CONFIRMATION_TIMEOUT" validate:"gt=0"`
	ConfirmationPollInterval time.Duration `mapstructure:"confirmation_poll_interval" env:"CONFIRMATION_POLL_INTERVAL" validate:"gt=0"`
}

// DepositConfig contains the parameters of the single deposit
type DepositConfig struct {
	RawAmount       string `mapstructure:"amount"`
	EnsureAllowance bool   `mapstructure:"ensure_allowance"`

	// Amount is parsed from RawAmount during loading.
	Amount decimal.Decimal `mapstructure:"-"`
}

// HTTPConfig contains exchange API client settings
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout" env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// ReportsConfig contains balance report settings
type ReportsConfig struct {
	AutoSave bool   `mapstructure:"auto_save"`
	Dir      string `mapstructure:"dir" env:"REPORTS_DIR" validate:"required"`
	Format   string `mapstructure:"format" env:"REPORT_FORMAT" validate:"oneof=json yaml"`
}

// MonitoringConfig contains metrics export settings
type MonitoringConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// envBindings maps configuration keys to environment variables.
var envBindings = map[string]string{
	"is_testnet": "IS_TESTNET",

	"credentials.api.key":                       "APEX_API_KEY",
	"credentials.api.secret":                    "APEX_SECRET",
	"credentials.api.passphrase":                "APEX_PASSPHRASE",
	"credentials.eth.private_key":               "ETH_PRIVATE_KEY",
	"credentials.stark.public_key":              "STARK_PUBLIC_KEY",
	"credentials.stark.public_key_y_coordinate": "STARK_PUBLIC_KEY_Y_COORDINATE",
	"credentials.stark.private_key":             "STARK_PRIVATE_KEY",

	"ethereum.rpc_url":                    "ETH_RPC_URL",
	"ethereum.gas_limit":                  "ETH_GAS_LIMIT",
	"ethereum.max_gas_price":              "ETH_MAX_GAS_PRICE",
	"ethereum.confirmation_timeout":       "CONFIRMATION_TIMEOUT",
	"ethereum.confirmation_poll_interval": "CONFIRMATION_POLL_INTERVAL",

	"deposit.amount":           "DEPOSIT_AMOUNT",
	"deposit.ensure_allowance": "ENSURE_ALLOWANCE",

	"http.request_timeout": "REQUEST_TIMEOUT",

	"reports.auto_save": "AUTO_SAVE_REPORTS",
	"reports.dir":       "REPORTS_DIR",
	"reports.format":    "REPORT_FORMAT",

	"monitoring.textfile_path": "METRICS_TEXTFILE",

	"logging.level":       "LOG_LEVEL",
	"logging.format":      "LOG_FORMAT",
	"logging.output_path": "LOG_OUTPUT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("is_testnet", false)

	// Ethereum defaults
	v.SetDefault("ethereum.gas_limit", 0)
	v.SetDefault("ethereum.confirmation_timeout", "120s")
	v.SetDefault("ethereum.confirmation_poll_interval", "3s")

	// Deposit defaults
	v.SetDefault("deposit.amount", "0.1")
	v.SetDefault("deposit.ensure_allowance", false)

	v.SetDefault("http.request_timeout", "30s")

	// Report defaults
	v.SetDefault("reports.auto_save", false)
	v.SetDefault("reports.dir", "./reports")
	v.SetDefault("reports.format", "json")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
}

// LoadDeposit loads the deposit tool configuration from environment variables.
// Every credential is required and the deposit amount must be positive.
func LoadDeposit() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := validateStruct(&cfg.Credentials); err != nil {
		return nil, err
	}

	amount, err := ParseAmount(cfg.Deposit.RawAmount)
	if err != nil {
		return nil, err
	}
	cfg.Deposit.Amount = amount

	if cfg.Ethereum.MaxGasPrice != "" {
		if _, ok := new(big.Int).SetString(cfg.Ethereum.MaxGasPrice, 10); !ok {
			return nil, apperrors.ConfigurationError(nil,
				fmt.Sprintf("ETH_MAX_GAS_PRICE must be an integer amount of wei, got %q", cfg.Ethereum.MaxGasPrice))
		}
	}

	return cfg, nil
}

// LoadBalance loads the balance report configuration from environment variables.
// Only the API credentials are required.
func LoadBalance() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := validateStruct(&cfg.Credentials.API); err != nil {
		return nil, err
	}
	if err := validateStruct(&cfg.Reports); err != nil {
		return nil, err
	}

	return cfg, nil
}

func load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, apperrors.ConfigurationError(err, "bind "+env)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to parse environment")
	}

	cfg.Network = ResolveNetwork(cfg.IsTestnet)
	if cfg.Ethereum.RPCURL == "" {
		cfg.Ethereum.RPCURL = cfg.Network.RPCURL
	}

	if err := validateStruct(&cfg.Ethereum); err != nil {
		return nil, err
	}
	if err := validateStruct(&cfg.HTTP); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseAmount parses a deposit amount and rejects zero or negative values.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperrors.ConfigurationError(err, fmt.Sprintf("DEPOSIT_AMOUNT %q is not a decimal", raw))
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.ConfigurationError(nil,
			fmt.Sprintf("DEPOSIT_AMOUNT must be positive, got %s", amount.String()))
	}
	return amount, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ConfigurationError(err, "config validation failed")
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing required environment variables: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	return apperrors.ConfigurationError(nil, strings.Join(parts, "; "))
}
