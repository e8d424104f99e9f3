package apexomni

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/apex-omni-deposit/pkg/ethereum"
)

// Option configures exchange client settings using
// the functional options pattern.
type Option func(*settings)

// settings holds internal configurable dependencies
// used during exchange client initialization.
type settings struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
	now        func() time.Time

	backend ethereum.Backend // optional override, primarily for tests
}

// WithLogger sets a custom logger for the exchange client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient sets a custom HTTP client for API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithBaseURL overrides the API endpoint of the configured network.
func WithBaseURL(u string) Option {
	return func(s *settings) { s.baseURL = u }
}

// WithClock overrides the clock used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithChainBackend uses backend instead of dialing the configured RPC URL.
func WithChainBackend(b ethereum.Backend) Option {
	return func(s *settings) { s.backend = b }
}

// applyOptions applies the provided options and returns the resulting settings.
// Defaults are applied before user-defined options.
func applyOptions(opts []Option) settings {
	s := settings{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
