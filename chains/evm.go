package chains

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

const callTimeout = 30 * time.Second

type Evm struct {
	chainName string
	rpcUrl    string
	ethClient *ethclient.Client
}

var _ BlockChain = (*Evm)(nil)

func NewEvmCli(cfg config.ChainConfig) (*Evm, error) {
	rpcClient, err := rpc.DialContext(context.Background(), cfg.RpcUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %v rpc", cfg.ChainName)
	}
	return &Evm{
		chainName: cfg.ChainName,
		rpcUrl:    cfg.RpcUrl,
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}

func (eth *Evm) ChainName() string {
	return eth.chainName
}

func (eth *Evm) GetLatestHeight() (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return eth.ethClient.BlockNumber(ctx)
}

func (eth *Evm) GetBalance(addressHex string) (TokenAmount, error) {
	var amount TokenAmount
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	balance, err := eth.ethClient.BalanceAt(ctx, common.HexToAddress(addressHex), nil)
	if err != nil {
		return amount, errors.Wrapf(err, "get %v balance of %v", eth.chainName, addressHex)
	}
	amount.Amount = balance
	amount.Decimals = DefaultDecimals
	return amount, nil
}

// FetchBalance resolves one token check. Metadata read failures fall back
// to defaults, a failed balance read is returned as an error.
func (eth *Evm) FetchBalance(walletHex string, token config.TokenConfig) (BalanceResult, error) {
	if IsNativeAsset(token.Address) {
		amount, err := eth.GetBalance(walletHex)
		if err != nil {
			return BalanceResult{}, err
		}
		return BalanceResult{
			Symbol:   NativeSymbol,
			Decimals: amount.Decimals,
			Balance:  amount.Amount,
		}, nil
	}
	query := eth.newErc20Query(token.Address)
	symbol := query.Symbol()
	decimals := query.Decimals()
	balance, err := query.BalanceOf(walletHex)
	if err != nil {
		log.Err(err).
			Str("chain", eth.chainName).
			Str("token", token.Address).
			Str("wallet", walletHex).
			Msg("fail to query erc20 balance")
		return BalanceResult{}, errors.Wrapf(err, "get %v balance of %v on %v", token.Name, walletHex, eth.chainName)
	}
	return BalanceResult{
		Symbol:   symbol.Value,
		Decimals: decimals.Value,
		Balance:  balance,
	}, nil
}
