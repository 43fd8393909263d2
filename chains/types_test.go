package chains

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestIsNativeAsset(t *testing.T) {
	require.True(t, IsNativeAsset(ZeroAddress))
	require.True(t, IsNativeAsset("0X0000000000000000000000000000000000000000"))
	require.False(t, IsNativeAsset("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"))
	require.False(t, IsNativeAsset("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"))
}

func TestErc20ABISelectors(t *testing.T) {
	require.Equal(t, "0x95d89b41", hexutil.Encode(erc20ABI.Methods["symbol"].ID))
	require.Equal(t, "0x313ce567", hexutil.Encode(erc20ABI.Methods["decimals"].ID))
	require.Equal(t, "0x70a08231", hexutil.Encode(erc20ABI.Methods["balanceOf"].ID))
}
