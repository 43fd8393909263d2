package monitor

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/LOCKhart07/wallet-balance-tracker/chains"
	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

const StatusOK = "OK"

// Evaluation is the outcome of one token check, amounts in human units.
type Evaluation struct {
	DisplaySymbol string
	Balance       decimal.Decimal
	Threshold     decimal.Decimal
	Topup         decimal.Decimal
	NeedsTopup    bool
	Status        string
}

// HumanUnits converts a smallest-unit amount into human units.
func HumanUnits(amount *big.Int, decimals uint8) decimal.Decimal {
	if amount == nil {
		amount = new(big.Int)
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}

// Evaluate compares a fetched balance against the token's threshold.
// The comparison happens on smallest-unit integers, human values are
// derived with the fetched decimals. Native assets display the token
// name from the config instead of the NATIVE marker.
func Evaluate(result chains.BalanceResult, token config.TokenConfig) Evaluation {
	displaySymbol := result.Symbol
	if result.Symbol == chains.NativeSymbol {
		displaySymbol = token.Name
	}
	balance := result.Balance
	if balance == nil {
		balance = new(big.Int)
	}
	eval := Evaluation{
		DisplaySymbol: displaySymbol,
		Balance:       HumanUnits(balance, result.Decimals),
		Threshold:     HumanUnits(token.Threshold.BigInt(), result.Decimals),
		Topup:         HumanUnits(token.Topup.BigInt(), result.Decimals),
		NeedsTopup:    balance.Cmp(token.Threshold.BigInt()) < 0,
	}
	eval.Status = StatusOK
	if eval.NeedsTopup {
		eval.Status = fmt.Sprintf("BELOW threshold, suggested top-up = %v", eval.Topup.StringFixed(6))
	}
	return eval
}

// StatusLine renders the per-token diagnostic line.
func (e Evaluation) StatusLine() string {
	mark := "🟢"
	if e.NeedsTopup {
		mark = "🔴"
	}
	return fmt.Sprintf("%6s: %v (threshold=%v) %v %v",
		e.DisplaySymbol, e.Balance.StringFixed(6), e.Threshold.StringFixed(6), mark, e.Status)
}
