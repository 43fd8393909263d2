package chains

import (
	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

// BlockChain is the read-only handle for one configured chain.
type BlockChain interface {
	ChainName() string
	GetLatestHeight() (uint64, error)
	// GetBalance returns the native-asset balance of the address.
	GetBalance(addressHex string) (TokenAmount, error)
	// FetchBalance resolves symbol, decimals and balance for the token,
	// dispatching between the native asset and erc20 contracts.
	FetchBalance(walletHex string, token config.TokenConfig) (BalanceResult, error)
}
