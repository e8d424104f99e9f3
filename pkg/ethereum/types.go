package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ExchangeContracts describes the collateral token and the StarkEx
// contract it is deposited into, as published by the exchange configs.
type ExchangeContracts struct {
	Exchange      common.Address
	Token         common.Address
	TokenDecimals int32
	// AssetType is the StarkEx asset id of the collateral
	AssetType *big.Int
	// Resolution is the number of quantums per whole token
	Resolution decimal.Decimal
}

func (ec *ExchangeContracts) validate() error {
	switch {
	case ec.Exchange == (common.Address{}):
		return errors.New("exchange contract address is required")
	case ec.Token == (common.Address{}):
		return errors.New("token contract address is required")
	case ec.TokenDecimals < 0:
		return fmt.Errorf("invalid token decimals %d", ec.TokenDecimals)
	case ec.AssetType == nil || ec.AssetType.Sign() <= 0:
		return errors.New("asset type is required")
	case !ec.Resolution.IsPositive():
		return errors.New("asset resolution must be positive")
	}
	return nil
}

// Quantize converts a token amount into StarkEx quantums.
// Amounts finer than one quantum are rejected rather than rounded.
func (ec *ExchangeContracts) Quantize(amount decimal.Decimal) (*big.Int, error) {
	q := amount.Mul(ec.Resolution)
	if !q.IsInteger() {
		return nil, fmt.Errorf("amount %s is not a multiple of the asset quantum (resolution %s)",
			amount.String(), ec.Resolution.String())
	}
	if !q.IsPositive() {
		return nil, fmt.Errorf("amount %s quantizes to zero", amount.String())
	}
	return q.BigInt(), nil
}

// ToBaseUnits converts a token amount into the token's smallest unit, rounding up
func (ec *ExchangeContracts) ToBaseUnits(amount decimal.Decimal) *big.Int {
	return amount.Shift(ec.TokenDecimals).Ceil().BigInt()
}
