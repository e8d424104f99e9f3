package apexomni

import (
	"context"
	"errors"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var errNoChain = errors.New("no chain in tests")

// nopBackend satisfies ethereum.Backend without a node; binding contracts
// never touches it.
type nopBackend struct {
	closed bool
}

func (b *nopBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, errNoChain
}

func (b *nopBackend) CallContract(context.Context, goethereum.CallMsg, *big.Int) ([]byte, error) {
	return nil, errNoChain
}

func (b *nopBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return nil, errNoChain
}

func (b *nopBackend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return nil, errNoChain
}

func (b *nopBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, errNoChain
}

func (b *nopBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return nil, errNoChain
}

func (b *nopBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return nil, errNoChain
}

func (b *nopBackend) EstimateGas(context.Context, goethereum.CallMsg) (uint64, error) {
	return 0, errNoChain
}

func (b *nopBackend) SendTransaction(context.Context, *types.Transaction) error {
	return errNoChain
}

func (b *nopBackend) FilterLogs(context.Context, goethereum.FilterQuery) ([]types.Log, error) {
	return nil, errNoChain
}

func (b *nopBackend) SubscribeFilterLogs(context.Context, goethereum.FilterQuery, chan<- types.Log) (goethereum.Subscription, error) {
	return nil, errNoChain
}

func (b *nopBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, errNoChain
}

func (b *nopBackend) Close() {
	b.closed = true
}
