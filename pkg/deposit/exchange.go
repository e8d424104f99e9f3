package deposit

import (
	"github.com/chainsafe/apex-omni-deposit/pkg/apexomni"
)

type apexExchange struct {
	*apexomni.Client
}

// NewExchange adapts an exchange client for the runner.
func NewExchange(c *apexomni.Client) ExchangeClient {
	return apexExchange{Client: c}
}

func (a apexExchange) Chain() (ChainClient, error) {
	eth, err := a.Eth()
	if err != nil {
		return nil, err
	}
	return eth, nil
}
