package monitor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LOCKhart07/wallet-balance-tracker/chains"
	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

func amount(t *testing.T, s string) config.Amount {
	t.Helper()
	var a config.Amount
	require.NoError(t, a.UnmarshalText([]byte(s)))
	return a
}

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func TestEvaluateBelowThreshold(t *testing.T) {
	result := chains.BalanceResult{
		Symbol:   chains.NativeSymbol,
		Decimals: 18,
		Balance:  bigInt(t, "500000000000000000"),
	}
	token := config.TokenConfig{
		Name:      "ETH",
		Address:   chains.ZeroAddress,
		Threshold: amount(t, "1000000000000000000"),
		Topup:     amount(t, "2000000000000000000"),
	}

	eval := Evaluate(result, token)
	require.True(t, eval.NeedsTopup)
	require.Equal(t, "ETH", eval.DisplaySymbol)
	require.Equal(t, "0.500000", eval.Balance.StringFixed(6))
	require.Equal(t, "1.000000", eval.Threshold.StringFixed(6))
	require.Equal(t, "BELOW threshold, suggested top-up = 2.000000", eval.Status)
	require.Contains(t, eval.StatusLine(), "🔴")
	require.Contains(t, eval.StatusLine(), "0.500000")
	require.Contains(t, eval.StatusLine(), "threshold=1.000000")
}

func TestEvaluateOK(t *testing.T) {
	result := chains.BalanceResult{Symbol: "USDC", Decimals: 6, Balance: big.NewInt(75000000)}
	token := config.TokenConfig{
		Name:      "USDC",
		Address:   "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		Threshold: amount(t, "50000000"),
		Topup:     amount(t, "100000000"),
	}

	eval := Evaluate(result, token)
	require.False(t, eval.NeedsTopup)
	require.Equal(t, StatusOK, eval.Status)
	require.Equal(t, "USDC", eval.DisplaySymbol)
	require.Equal(t, "75.000000", eval.Balance.StringFixed(6))
	require.Contains(t, eval.StatusLine(), "🟢 OK")
}

func TestEvaluateEqualToThresholdIsOK(t *testing.T) {
	result := chains.BalanceResult{Symbol: "USDC", Decimals: 6, Balance: big.NewInt(50000000)}
	token := config.TokenConfig{Name: "USDC", Threshold: amount(t, "50000000")}

	eval := Evaluate(result, token)
	require.False(t, eval.NeedsTopup)
	require.Equal(t, StatusOK, eval.Status)
}

func TestEvaluateKeepsFallbackSymbol(t *testing.T) {
	// non-native assets display the fetched or fallback symbol, not the
	// configured token name
	result := chains.BalanceResult{Symbol: chains.FallbackSymbol, Decimals: 18, Balance: big.NewInt(1)}
	token := config.TokenConfig{Name: "SOMETOKEN", Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"}

	eval := Evaluate(result, token)
	require.Equal(t, chains.FallbackSymbol, eval.DisplaySymbol)
}

func TestEvaluateZeroThreshold(t *testing.T) {
	result := chains.BalanceResult{Symbol: chains.NativeSymbol, Decimals: 18, Balance: big.NewInt(0)}
	token := config.TokenConfig{Name: "ETH", Address: chains.ZeroAddress}

	eval := Evaluate(result, token)
	require.False(t, eval.NeedsTopup)
	require.Equal(t, StatusOK, eval.Status)
}

func TestHumanUnitsRoundTrip(t *testing.T) {
	for _, decimals := range []uint8{0, 6, 18} {
		raw := bigInt(t, "123456789012345678")
		human := HumanUnits(raw, decimals)
		rescaled := human.Shift(int32(decimals))
		require.Equal(t, raw.String(), rescaled.String(), "decimals=%v", decimals)
	}
}

func TestHumanUnitsNil(t *testing.T) {
	require.Equal(t, "0.000000", HumanUnits(nil, 18).StringFixed(6))
}
