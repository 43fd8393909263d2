package chains

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// Minimal erc20 fragment, enough for balance monitoring.
const erc20ABIJson = `[
	{"name":"symbol","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"name":"decimals","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

var erc20ABI = mustParseABI(erc20ABIJson)

func mustParseABI(abiJson string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(abiJson))
	if err != nil {
		panic(fmt.Errorf("parse erc20 abi error:%v", err))
	}
	return parsed
}

type erc20Query struct {
	chainName  string
	addressHex string
	contract   *bind.BoundContract
}

func (eth *Evm) newErc20Query(addressHex string) *erc20Query {
	address := common.HexToAddress(addressHex)
	return &erc20Query{
		chainName:  eth.chainName,
		addressHex: addressHex,
		contract:   bind.NewBoundContract(address, erc20ABI, eth.ethClient, eth.ethClient, eth.ethClient),
	}
}

// Symbol reads symbol(), falling back to FallbackSymbol on any failure.
func (q *erc20Query) Symbol() SymbolResult {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	var out []interface{}
	if err := q.contract.Call(&bind.CallOpts{Context: ctx}, &out, "symbol"); err != nil {
		log.Err(err).
			Str("chain", q.chainName).
			Str("token", q.addressHex).
			Msg("fail to read erc20 symbol, using fallback")
		return SymbolResult{Value: FallbackSymbol, Fallback: true}
	}
	symbol := *abi.ConvertType(out[0], new(string)).(*string)
	return SymbolResult{Value: symbol}
}

// Decimals reads decimals(), falling back to DefaultDecimals on any failure.
func (q *erc20Query) Decimals() DecimalsResult {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	var out []interface{}
	if err := q.contract.Call(&bind.CallOpts{Context: ctx}, &out, "decimals"); err != nil {
		log.Err(err).
			Str("chain", q.chainName).
			Str("token", q.addressHex).
			Msg("fail to read erc20 decimals, using fallback")
		return DecimalsResult{Value: DefaultDecimals, Fallback: true}
	}
	decimals := *abi.ConvertType(out[0], new(uint8)).(*uint8)
	return DecimalsResult{Value: decimals}
}

func (q *erc20Query) BalanceOf(walletHex string) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	var out []interface{}
	if err := q.contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", common.HexToAddress(walletHex)); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
