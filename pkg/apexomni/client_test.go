package apexomni

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/apex-omni-deposit/pkg/app/errors"
	"github.com/chainsafe/apex-omni-deposit/pkg/config"
	"github.com/chainsafe/apex-omni-deposit/pkg/keys"
)

const (
	testStarkPrivateKey = "0x3c1e9550e66958296d11b60f8e8e7a7ad990d07fa65d5f7652c4a6c87d4e3cc"
	testEthPrivateKey   = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testTimestamp       = int64(1700000000000)

	testExchangeAddress = "0x1111111111111111111111111111111111111111"
	testTokenAddress    = "0x2222222222222222222222222222222222222222"
	testMainnetToken    = "0x3333333333333333333333333333333333333333"
)

const configsJSON = `{
  "data": {
    "contractConfig": {
      "currency": [
        {"id": "USDC", "starkExAssetId": "0x1", "starkExResolution": "1000"},
        {"id": "USDT", "starkExAssetId": "0x2ce625e94458d39dd0bf3b45a843544dd4a14b8169045a3a3d15aa564b936c5", "starkExResolution": 1000000}
      ],
      "global": {
        "starkExCollateralCurrencyId": "USDT",
        "starkExContractAddress": "` + testExchangeAddress + `"
      },
      "multiChain": {
        "chains": [
          {"chainId": "1", "tokens": [{"token": "USDT", "tokenAddress": "` + testMainnetToken + `", "decimals": "6"}]},
          {"chainId": 11155111, "tokens": [
            {"token": "USDC", "tokenAddress": "0x4444444444444444444444444444444444444444", "decimals": 6},
            {"token": "USDT", "tokenAddress": "` + testTokenAddress + `", "decimals": 6}
          ]}
        ]
      }
    }
  },
  "timeCost": 1234
}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	x, y, err := keys.DeriveStarkPublicKey(testStarkPrivateKey)
	require.NoError(t, err)

	return &config.Config{
		IsTestnet: true,
		Network:   config.TestNetwork,
		Credentials: config.Credentials{
			API: config.APICredentials{Key: "test-key", Secret: "test-secret", Passphrase: "test-pass"},
			Eth: config.EthCredentials{PrivateKey: testEthPrivateKey},
			Stark: config.StarkCredentials{
				PublicKey:            x,
				PublicKeyYCoordinate: y,
				PrivateKey:           testStarkPrivateKey,
			},
		},
		Ethereum: config.EthereumConfig{
			RPCURL:                   "http://127.0.0.1:8545",
			ConfirmationTimeout:      time.Second,
			ConfirmationPollInterval: 10 * time.Millisecond,
		},
		HTTP: config.HTTPConfig{RequestTimeout: 5 * time.Second},
	}
}

// newTestServer serves routes under /api and rejects requests whose
// signature does not match the test credentials.
func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			path := strings.TrimPrefix(req.URL.RequestURI(), "/api")
			var data string
			if req.URL.RawQuery != "" {
				data = "&" + req.URL.RawQuery
			}
			want := Sign("test-secret", req.Header.Get(HeaderTimestamp), req.Method, path, data)
			if req.Header.Get(HeaderSignature) != want ||
				req.Header.Get(HeaderAPIKey) != "test-key" ||
				req.Header.Get(HeaderPassphrase) != "test-pass" {
				http.Error(w, `{"code":401,"msg":"bad signature"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	for path, body := range routes {
		body := body
		r.Get("/api"+path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, cfg *config.Config, srv *httptest.Server) (*Client, *nopBackend) {
	t.Helper()
	backend := &nopBackend{}
	client, err := NewClient(cfg,
		WithBaseURL(srv.URL+"/api"),
		WithHTTPClient(srv.Client()),
		WithChainBackend(backend),
		WithClock(func() time.Time { return time.UnixMilli(testTimestamp) }),
	)
	require.NoError(t, err)
	return client, backend
}

func TestSign(t *testing.T) {
	sig := Sign("secret", "1700000000000", "GET", "/v3/account", "")
	raw, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.Equal(t, sig, Sign("secret", "1700000000000", "GET", "/v3/account", ""))
	assert.NotEqual(t, sig, Sign("secret", "1700000000001", "GET", "/v3/account", ""))
	assert.NotEqual(t, sig, Sign("secret", "1700000000000", "GET", "/v3/account-balance", ""))
	assert.NotEqual(t, sig, Sign("other", "1700000000000", "GET", "/v3/account", ""))
}

func TestEncodeQuery(t *testing.T) {
	assert.Equal(t, "", encodeQuery(nil))
	assert.Equal(t, "a=1&b=2", encodeQuery(map[string]string{"b": "2", "a": "1", "c": ""}))
}

func TestClient_SignedRequest(t *testing.T) {
	var gotTimestamp string
	r := chi.NewRouter()
	r.Get("/api/v3/account-balance", func(w http.ResponseWriter, req *http.Request) {
		gotTimestamp = req.Header.Get(HeaderTimestamp)
		_, _ = w.Write([]byte(`{"data":{"totalEquityValue":"10.5","availableBalance":"7","initialMargin":"1","maintenanceMargin":"0.5"}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, _ := newTestClient(t, testConfig(t), srv)
	balance, err := client.GetAccountBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", gotTimestamp)
	assert.True(t, balance.TotalEquityValue.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, balance.MaintenanceMargin.Equal(decimal.RequireFromString("0.5")))
}

func TestClient_GetWithQuery(t *testing.T) {
	var gotQuery string
	r := chi.NewRouter()
	r.Get("/api/v3/account", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		want := Sign("test-secret", req.Header.Get(HeaderTimestamp), http.MethodGet,
			"/v3/account?a=1&b=2", "&a=1&b=2")
		if req.Header.Get(HeaderSignature) != want {
			http.Error(w, "bad signature", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":"9"}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, _ := newTestClient(t, testConfig(t), srv)
	var account Account
	require.NoError(t, client.get(context.Background(), "/account", map[string]string{"b": "2", "a": "1"}, &account))
	assert.Equal(t, "a=1&b=2", gotQuery)
	assert.Equal(t, "9", account.ID)
}

func TestClient_Configs(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/v3/symbols": configsJSON})
	client, _ := newTestClient(t, testConfig(t), srv)

	_, err := client.Eth()
	require.Error(t, err, "chain client must not be available before configs")

	configs, err := client.Configs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USDT", configs.ContractConfig.Global.CollateralCurrencyID)

	contracts, err := configs.ExchangeContracts(config.TestNetwork.NetworkID)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testExchangeAddress), contracts.Exchange)
	assert.Equal(t, common.HexToAddress(testTokenAddress), contracts.Token)
	assert.Equal(t, int32(6), contracts.TokenDecimals)
	assert.True(t, contracts.Resolution.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "2ce625e94458d39dd0bf3b45a843544dd4a14b8169045a3a3d15aa564b936c5", contracts.AssetType.Text(16))

	eth, err := client.Eth()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testExchangeAddress), eth.GetExchangeContract())
}

func TestClient_ConfigsMainnetToken(t *testing.T) {
	var configs Configs
	require.NoError(t, json.Unmarshal([]byte(configsJSON), &struct {
		Data *Configs `json:"data"`
	}{Data: &configs}))

	contracts, err := configs.ExchangeContracts(config.MainNetwork.NetworkID)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testMainnetToken), contracts.Token)

	_, err = configs.ExchangeContracts(42161)
	assert.Error(t, err)
}

func TestClient_ConfigsWithoutDepositSettings(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/v3/symbols": `{"data":{"contractConfig":{"global":{"starkExContractAddress":"` + testExchangeAddress + `"}}}}`,
	})
	client, _ := newTestClient(t, testConfig(t), srv)

	_, err := client.Configs(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryRemote), "got %v", err)
}

func TestClient_GetAccount(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		positionID string
		spot       int
	}{
		{
			name:       "position id from account id",
			body:       `{"data":{"id":"584674","ethereumAddress":"0xabc","spotWallets":[{"tokenId":"140","balance":"12.5","pendingDepositAmount":"0","pendingWithdrawAmount":"0"}]}}`,
			positionID: "584674",
			spot:       1,
		},
		{
			name:       "explicit position id",
			body:       `{"data":{"id":"584674","positionId":12}}`,
			positionID: "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, map[string]string{"/v3/account": tt.body})
			client, _ := newTestClient(t, testConfig(t), srv)

			account, err := client.GetAccount(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.positionID, account.PositionID())
			assert.Len(t, account.SpotWallets, tt.spot)
		})
	}
}

func TestClient_RemoteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not registered", status: http.StatusOK, body: `{"code":0,"data":null}`},
		{name: "error code", status: http.StatusOK, body: `{"code":20016,"msg":"api key invalid"}`},
		{name: "http error", status: http.StatusInternalServerError, body: `oops`},
		{name: "malformed", status: http.StatusOK, body: `{"data":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/v3/account", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			srv := httptest.NewServer(r)
			defer srv.Close()

			client, _ := newTestClient(t, testConfig(t), srv)
			_, err := client.GetAccount(context.Background())
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryRemote), "got %v", err)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewAPIClient(testConfig(t), WithBaseURL(url+"/api"))
	require.NoError(t, err)
	_, err = client.GetAccountBalance(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryRemote))
}

func TestNewClient_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "malformed eth key", mutate: func(c *config.Config) { c.Credentials.Eth.PrivateKey = "0x1234" }},
		{name: "stark key mismatch", mutate: func(c *config.Config) { c.Credentials.Stark.PublicKey = "0x1" }},
		{name: "malformed stark key", mutate: func(c *config.Config) { c.Credentials.Stark.PrivateKey = "zz" }},
		{name: "bad endpoint", mutate: func(c *config.Config) { c.Network.Endpoint = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)
			_, err := NewClient(cfg, WithChainBackend(&nopBackend{}))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryClientInit), "got %v", err)
		})
	}
}

func TestAPIClient_NoChain(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/v3/symbols": configsJSON})
	client, err := NewAPIClient(testConfig(t),
		WithBaseURL(srv.URL+"/api"),
		WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = client.Configs(context.Background())
	require.NoError(t, err)

	_, err = client.Eth()
	assert.True(t, apperrors.Is(err, apperrors.CategoryClientInit))
}

func TestClient_Close(t *testing.T) {
	srv := newTestServer(t, nil)
	client, backend := newTestClient(t, testConfig(t), srv)
	client.Close()
	assert.True(t, backend.closed)
}

func TestNumeric(t *testing.T) {
	var v struct {
		A Numeric `json:"a"`
		B Numeric `json:"b"`
		C Numeric `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":11155111,"b":"42","c":null}`), &v))
	assert.Equal(t, Numeric("11155111"), v.A)
	assert.Equal(t, Numeric("42"), v.B)
	assert.Equal(t, Numeric(""), v.C)

	n, err := v.A.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(11155111), n)
}
