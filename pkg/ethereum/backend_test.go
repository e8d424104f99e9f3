package ethereum

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/apex-omni-deposit/pkg/ethereum/contracts"
)

// fakeBackend is an in-memory chain that records sent transactions
type fakeBackend struct {
	mu sync.Mutex

	allowance *big.Int
	gasPrice  *big.Int
	nonce     uint64
	sendErr   error

	sent         []*types.Transaction
	receipts     map[common.Hash]*types.Receipt
	receiptCalls int
	closed       bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		allowance: big.NewInt(0),
		gasPrice:  big.NewInt(2_000_000_000),
		nonce:     7,
		receipts:  make(map[common.Hash]*types.Receipt),
	}
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) CallContract(_ context.Context, call goethereum.CallMsg, _ *big.Int) ([]byte, error) {
	parsed, err := contracts.ERC20MetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	allowance := parsed.Methods["allowance"]
	if len(call.Data) < 4 || !bytes.Equal(call.Data[:4], allowance.ID) {
		return nil, errors.New("unexpected call")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return allowance.Outputs.Pack(f.allowance)
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(100), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonce, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return f.gasPrice, nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(context.Context, goethereum.CallMsg) (uint64, error) {
	return 90_000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	f.nonce++
	return nil
}

func (f *fakeBackend) FilterLogs(context.Context, goethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (f *fakeBackend) SubscribeFilterLogs(context.Context, goethereum.FilterQuery, chan<- types.Log) (goethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptCalls++
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, goethereum.NotFound
}

func (f *fakeBackend) Close() {
	f.closed = true
}

func (f *fakeBackend) setReceipt(txHash common.Hash, status uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts[txHash] = &types.Receipt{
		TxHash:      txHash,
		Status:      status,
		BlockNumber: big.NewInt(101),
		GasUsed:     60_000,
	}
}

func (f *fakeBackend) sentTxs() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*types.Transaction(nil), f.sent...)
}
