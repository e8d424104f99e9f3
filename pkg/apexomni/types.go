package apexomni

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/apex-omni-deposit/pkg/ethereum"
)

// Numeric is a JSON value the API sends either as a number or as a string.
type Numeric string

// UnmarshalJSON accepts 123, "123" and null.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = Numeric(num.String())
	return nil
}

// Int64 parses the value as a base 10 integer.
func (n Numeric) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// envelope is the outer shape of every API response
type envelope struct {
	Code Numeric         `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (e *envelope) failed() bool {
	return e.Code != "" && e.Code != "0" && e.Code != "200"
}

// Configs is the subset of GET /v3/symbols used for deposits.
type Configs struct {
	ContractConfig ContractConfig `json:"contractConfig"`
}

// ContractConfig describes the perpetual (StarkEx) side of the exchange.
type ContractConfig struct {
	Currencies []Currency   `json:"currency"`
	Global     GlobalConfig `json:"global"`
	MultiChain MultiChain   `json:"multiChain"`
}

// Currency is a collateral asset known to StarkEx.
type Currency struct {
	ID                string  `json:"id"`
	StarkExAssetID    string  `json:"starkExAssetId"`
	StarkExResolution Numeric `json:"starkExResolution"`
}

// GlobalConfig holds exchange wide settings.
type GlobalConfig struct {
	CollateralCurrencyID string `json:"starkExCollateralCurrencyId"`
	ContractAddress      string `json:"starkExContractAddress"`
}

// MultiChain lists the chains deposits are accepted from.
type MultiChain struct {
	Chains []ChainConfig `json:"chains"`
}

// ChainConfig lists the tokens of one chain.
type ChainConfig struct {
	ChainID Numeric      `json:"chainId"`
	Tokens  []ChainToken `json:"tokens"`
}

// ChainToken is an ERC-20 token accepted for deposit.
type ChainToken struct {
	Token        string  `json:"token"`
	TokenAddress string  `json:"tokenAddress"`
	Decimals     Numeric `json:"decimals"`
}

// ExchangeContracts resolves the collateral token and exchange contract for networkID.
func (c *Configs) ExchangeContracts(networkID int64) (ethereum.ExchangeContracts, error) {
	var out ethereum.ExchangeContracts
	cc := c.ContractConfig

	if !common.IsHexAddress(cc.Global.ContractAddress) {
		return out, fmt.Errorf("invalid exchange contract address %q", cc.Global.ContractAddress)
	}
	out.Exchange = common.HexToAddress(cc.Global.ContractAddress)

	collateral := cc.Global.CollateralCurrencyID
	if collateral == "" {
		return out, fmt.Errorf("collateral currency not configured")
	}

	currency, ok := findCurrency(cc.Currencies, collateral)
	if !ok {
		return out, fmt.Errorf("collateral currency %s not listed", collateral)
	}
	assetType, ok := new(big.Int).SetString(strings.TrimPrefix(currency.StarkExAssetID, "0x"), 16)
	if !ok {
		return out, fmt.Errorf("invalid asset id %q for %s", currency.StarkExAssetID, collateral)
	}
	out.AssetType = assetType

	resolution, err := decimal.NewFromString(string(currency.StarkExResolution))
	if err != nil {
		return out, fmt.Errorf("invalid resolution %q for %s: %w", currency.StarkExResolution, collateral, err)
	}
	out.Resolution = resolution

	token, ok := findChainToken(cc.MultiChain.Chains, networkID, collateral)
	if !ok {
		return out, fmt.Errorf("no %s token configured for chain %d", collateral, networkID)
	}
	if !common.IsHexAddress(token.TokenAddress) {
		return out, fmt.Errorf("invalid token address %q", token.TokenAddress)
	}
	out.Token = common.HexToAddress(token.TokenAddress)

	decimals, err := token.Decimals.Int64()
	if err != nil {
		return out, fmt.Errorf("invalid token decimals %q: %w", token.Decimals, err)
	}
	out.TokenDecimals = int32(decimals)

	return out, nil
}

func findCurrency(currencies []Currency, id string) (Currency, bool) {
	for _, c := range currencies {
		if c.ID == id {
			return c, true
		}
	}
	return Currency{}, false
}

func findChainToken(chains []ChainConfig, networkID int64, symbol string) (ChainToken, bool) {
	for _, chain := range chains {
		id, err := chain.ChainID.Int64()
		if err != nil || id != networkID {
			continue
		}
		for _, t := range chain.Tokens {
			if t.Token == symbol {
				return t, true
			}
		}
	}
	return ChainToken{}, false
}

// Account is the registered exchange account (GET /v3/account).
type Account struct {
	ID              string           `json:"id"`
	RawPositionID   Numeric          `json:"positionId"`
	EthereumAddress string           `json:"ethereumAddress"`
	L2Key           string           `json:"l2Key"`
	SpotWallets     []SpotWallet     `json:"spotWallets"`
	ContractWallets []ContractWallet `json:"contractWallets"`
	Positions       []Position       `json:"positions"`
}

// PositionID is the StarkEx vault deposits are credited to.
// Accounts that carry no explicit position id use their account id.
func (a *Account) PositionID() string {
	if a.RawPositionID != "" {
		return string(a.RawPositionID)
	}
	return a.ID
}

// SpotWallet is one token balance of the spot (omni) account.
type SpotWallet struct {
	TokenID               string          `json:"tokenId"`
	Balance               decimal.Decimal `json:"balance"`
	PendingDepositAmount  decimal.Decimal `json:"pendingDepositAmount"`
	PendingWithdrawAmount decimal.Decimal `json:"pendingWithdrawAmount"`
}

// ContractWallet is one asset balance of the perpetual account.
type ContractWallet struct {
	Asset                 string          `json:"asset"`
	Balance               decimal.Decimal `json:"balance"`
	PendingDepositAmount  decimal.Decimal `json:"pendingDepositAmount"`
	PendingWithdrawAmount decimal.Decimal `json:"pendingWithdrawAmount"`
}

// Position is an open perpetual position.
type Position struct {
	Symbol     string          `json:"symbol"`
	Side       string          `json:"side"`
	Size       decimal.Decimal `json:"size"`
	EntryPrice decimal.Decimal `json:"entryPrice"`
}

// AccountBalance is the equity summary (GET /v3/account-balance).
type AccountBalance struct {
	TotalEquityValue  decimal.Decimal `json:"totalEquityValue"`
	AvailableBalance  decimal.Decimal `json:"availableBalance"`
	InitialMargin     decimal.Decimal `json:"initialMargin"`
	MaintenanceMargin decimal.Decimal `json:"maintenanceMargin"`
}
