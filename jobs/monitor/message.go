package monitor

import (
	"fmt"
	"strings"

	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

const (
	alertHeader  = "⚠️ *Top-up Alert*"
	statusHeader = "ℹ️ *Wallet Status*"

	// requestFormatSuffix is appended when a sweep was requested through
	// the status command. Reserved, contributes no content today.
	requestFormatSuffix = ""
)

// FormatMessage renders the notification for one token check. Alerts and
// plain status reports share the body and differ only in the header.
func FormatMessage(wallet config.WalletConfig, eval Evaluation, withRequestFormat bool) string {
	header := statusHeader
	if eval.NeedsTopup {
		header = alertHeader
	}
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "\n• Wallet: %v", wallet.Name)
	fmt.Fprintf(&b, "\n• Address: %v", wallet.Address)
	fmt.Fprintf(&b, "\n• Chain: %v", wallet.ChainName)
	fmt.Fprintf(&b, "\n• Token: %v", eval.DisplaySymbol)
	fmt.Fprintf(&b, "\n• Current Balance: %v", eval.Balance.StringFixed(6))
	fmt.Fprintf(&b, "\n• Threshold: %v", eval.Threshold.StringFixed(6))
	fmt.Fprintf(&b, "\n• Suggested Top-up: %v", eval.Topup.StringFixed(6))
	if withRequestFormat {
		b.WriteString(requestFormatSuffix)
	}
	return b.String()
}
