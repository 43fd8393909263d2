package chains

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// ZeroAddress selects a chain's native asset in token configs.
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// NativeSymbol marks a native-asset balance result.
	NativeSymbol = "NATIVE"

	// FallbackSymbol is used when an erc20 symbol() read fails.
	FallbackSymbol = "UNKNOWN"

	// DefaultDecimals is used for native assets and when an erc20
	// decimals() read fails.
	DefaultDecimals uint8 = 18
)

// IsNativeAsset reports whether the address denotes the native asset.
// Comparison happens on the parsed address, so case does not matter.
func IsNativeAsset(addressHex string) bool {
	return common.HexToAddress(addressHex) == common.Address{}
}

type TokenAmount struct {
	Amount   *big.Int
	Decimals uint8
}

// BalanceResult is one resolved balance query, amount in smallest units.
type BalanceResult struct {
	Symbol   string
	Decimals uint8
	Balance  *big.Int
}

// SymbolResult carries an erc20 symbol() read. Fallback marks that the
// on-chain read failed and Value holds FallbackSymbol.
type SymbolResult struct {
	Value    string
	Fallback bool
}

// DecimalsResult carries an erc20 decimals() read. Fallback marks that
// the on-chain read failed and Value holds DefaultDecimals.
type DecimalsResult struct {
	Value    uint8
	Fallback bool
}
