// Package report summarises account balances across the spot and
// perpetual wallets of an exchange account.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/apex-omni-deposit/pkg/apexomni"
)

// Output formats accepted by Save
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// stablecoinTokenIDs are the spot token ids valued 1:1 in USD
var stablecoinTokenIDs = map[string]bool{
	"1":   true,
	"17":  true,
	"140": true,
}

// WalletBalance is one wallet entry of the report
type WalletBalance struct {
	Balance         decimal.Decimal `json:"balance" yaml:"balance"`
	Available       decimal.Decimal `json:"available" yaml:"available"`
	PendingDeposit  decimal.Decimal `json:"pending_deposit" yaml:"pending_deposit"`
	PendingWithdraw decimal.Decimal `json:"pending_withdraw" yaml:"pending_withdraw"`
}

// PositionSummary is an open position with its notional value
type PositionSummary struct {
	Symbol     string          `json:"symbol" yaml:"symbol"`
	Side       string          `json:"side" yaml:"side"`
	Size       decimal.Decimal `json:"size" yaml:"size"`
	EntryPrice decimal.Decimal `json:"entry_price" yaml:"entry_price"`
	Value      decimal.Decimal `json:"value" yaml:"value"`
}

// Totals are the liquid asset sums computed from the wallets
type Totals struct {
	SpotTotal            decimal.Decimal `json:"spot_total" yaml:"spot_total"`
	ContractTotal        decimal.Decimal `json:"contract_total" yaml:"contract_total"`
	CombinedLiquidAssets decimal.Decimal `json:"combined_liquid_assets" yaml:"combined_liquid_assets"`
}

// Report is the balance summary of one account
type Report struct {
	Timestamp         time.Time                `json:"timestamp" yaml:"timestamp"`
	Network           string                   `json:"network,omitempty" yaml:"network,omitempty"`
	SpotBalances      map[string]WalletBalance `json:"spot_balances" yaml:"spot_balances"`
	ContractBalances  map[string]WalletBalance `json:"contract_balances" yaml:"contract_balances"`
	TotalEquity       decimal.Decimal          `json:"total_equity" yaml:"total_equity"`
	AvailableBalance  decimal.Decimal          `json:"available_balance" yaml:"available_balance"`
	InitialMargin     decimal.Decimal          `json:"initial_margin" yaml:"initial_margin"`
	MaintenanceMargin decimal.Decimal          `json:"maintenance_margin" yaml:"maintenance_margin"`
	Positions         []PositionSummary        `json:"positions_summary" yaml:"positions_summary"`
	Totals            Totals                   `json:"calculated_totals" yaml:"calculated_totals"`
}

// Build computes the report from the account and balance endpoints.
// Available funds of a wallet are balance - pending withdraw + pending deposit.
func Build(account *apexomni.Account, balance *apexomni.AccountBalance, now time.Time) *Report {
	r := &Report{
		Timestamp:        now,
		SpotBalances:     make(map[string]WalletBalance),
		ContractBalances: make(map[string]WalletBalance),
		Positions:        []PositionSummary{},
	}

	for _, w := range account.SpotWallets {
		wb := walletBalance(w.Balance, w.PendingDepositAmount, w.PendingWithdrawAmount)
		r.SpotBalances[orUnknown(w.TokenID)] = wb
		if stablecoinTokenIDs[w.TokenID] {
			r.Totals.SpotTotal = r.Totals.SpotTotal.Add(wb.Available)
		}
	}

	for _, w := range account.ContractWallets {
		wb := walletBalance(w.Balance, w.PendingDepositAmount, w.PendingWithdrawAmount)
		r.ContractBalances[orUnknown(w.Asset)] = wb
		r.Totals.ContractTotal = r.Totals.ContractTotal.Add(wb.Available)
	}

	for _, p := range account.Positions {
		if p.Size.IsZero() {
			continue
		}
		r.Positions = append(r.Positions, PositionSummary{
			Symbol:     orUnknown(p.Symbol),
			Side:       orUnknown(p.Side),
			Size:       p.Size,
			EntryPrice: p.EntryPrice,
			Value:      p.Size.Mul(p.EntryPrice),
		})
	}

	if balance != nil {
		r.TotalEquity = balance.TotalEquityValue
		r.AvailableBalance = balance.AvailableBalance
		r.InitialMargin = balance.InitialMargin
		r.MaintenanceMargin = balance.MaintenanceMargin
	}

	r.Totals.CombinedLiquidAssets = r.Totals.SpotTotal.Add(r.Totals.ContractTotal)
	return r
}

func walletBalance(balance, pendingDeposit, pendingWithdraw decimal.Decimal) WalletBalance {
	return WalletBalance{
		Balance:         balance,
		Available:       balance.Sub(pendingWithdraw).Add(pendingDeposit),
		PendingDeposit:  pendingDeposit,
		PendingWithdraw: pendingWithdraw,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// Print writes the human readable summary.
func Print(w io.Writer, r *Report) {
	line := strings.Repeat("=", 60)

	fmt.Fprintln(w, "\n=== SPOT ACCOUNT (OMNI) BALANCES ===")
	for _, token := range sortedKeys(r.SpotBalances) {
		b := r.SpotBalances[token]
		fmt.Fprintf(w, "  %s: %s (Available: %s)\n", token, b.Balance.StringFixed(6), b.Available.StringFixed(6))
	}

	fmt.Fprintln(w, "\n=== CONTRACT ACCOUNT (PERPETUAL) BALANCES ===")
	for _, asset := range sortedKeys(r.ContractBalances) {
		b := r.ContractBalances[asset]
		fmt.Fprintf(w, "  %s: %s (Available: %s)\n", asset, b.Balance.StringFixed(6), b.Available.StringFixed(6))
	}

	fmt.Fprintln(w, "\n=== OPEN POSITIONS ===")
	for _, p := range r.Positions {
		fmt.Fprintf(w, "  %s: %s %s @ %s\n", p.Symbol, p.Side, p.Size.String(), p.EntryPrice.String())
	}

	fmt.Fprintln(w, "\n"+line)
	fmt.Fprintln(w, "           APEX OMNI BALANCE SUMMARY")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total Account Equity:     %s\n", usd(r.TotalEquity))
	fmt.Fprintf(w, "Available Balance:        %s\n", usd(r.AvailableBalance))
	fmt.Fprintf(w, "Initial Margin Used:      %s\n", usd(r.InitialMargin))
	fmt.Fprintf(w, "Maintenance Margin:       %s\n", usd(r.MaintenanceMargin))

	fmt.Fprintln(w, "\nBREAKDOWN:")
	fmt.Fprintf(w, "Spot Account (Omni):      %s\n", usd(r.Totals.SpotTotal))
	fmt.Fprintf(w, "Contract Account (Perp):  %s\n", usd(r.Totals.ContractTotal))
	fmt.Fprintf(w, "Combined Liquid Assets:   %s\n", usd(r.Totals.CombinedLiquidAssets))

	fmt.Fprintf(w, "\nActive Positions:         %d\n", len(r.Positions))
	fmt.Fprintln(w, line)
}

// Save writes the report to dir as apex_balance_<unix>.<format> and
// returns the file path.
func Save(dir, format string, r *Report) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(r, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(r)
	default:
		return "", fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("apex_balance_%d.%s", r.Timestamp.Unix(), format))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func sortedKeys(m map[string]WalletBalance) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// usd formats d as $1,234.56
func usd(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	sign := ""
	if d.IsNegative() && !d.Round(2).IsZero() {
		sign = "-"
	}
	return sign + "$" + b.String() + "." + frac
}
