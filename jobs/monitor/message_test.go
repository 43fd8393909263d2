package monitor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

var messageWallet = config.WalletConfig{
	Name:      "ops-hot-wallet",
	ChainName: "base",
	Address:   "0x52908400098527886E0F7030069857D2E4169EE7",
}

func TestFormatMessageAlert(t *testing.T) {
	eval := Evaluation{
		DisplaySymbol: "ETH",
		Balance:       decimal.RequireFromString("0.5"),
		Threshold:     decimal.RequireFromString("1"),
		Topup:         decimal.RequireFromString("2"),
		NeedsTopup:    true,
	}
	expected := "⚠️ *Top-up Alert*\n" +
		"• Wallet: ops-hot-wallet\n" +
		"• Address: 0x52908400098527886E0F7030069857D2E4169EE7\n" +
		"• Chain: base\n" +
		"• Token: ETH\n" +
		"• Current Balance: 0.500000\n" +
		"• Threshold: 1.000000\n" +
		"• Suggested Top-up: 2.000000"
	require.Equal(t, expected, FormatMessage(messageWallet, eval, false))
}

func TestFormatMessageStatus(t *testing.T) {
	eval := Evaluation{
		DisplaySymbol: "USDC",
		Balance:       decimal.RequireFromString("75"),
		Threshold:     decimal.RequireFromString("50"),
		Topup:         decimal.RequireFromString("100"),
		NeedsTopup:    false,
	}
	expected := "ℹ️ *Wallet Status*\n" +
		"• Wallet: ops-hot-wallet\n" +
		"• Address: 0x52908400098527886E0F7030069857D2E4169EE7\n" +
		"• Chain: base\n" +
		"• Token: USDC\n" +
		"• Current Balance: 75.000000\n" +
		"• Threshold: 50.000000\n" +
		"• Suggested Top-up: 100.000000"
	require.Equal(t, expected, FormatMessage(messageWallet, eval, false))
}

func TestFormatMessageRequestFormatSuffix(t *testing.T) {
	// the suffix is reserved and currently empty
	eval := Evaluation{NeedsTopup: true}
	require.Equal(t, FormatMessage(messageWallet, eval, false), FormatMessage(messageWallet, eval, true))
}
