package cmd

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedTestTx returns a signed EIP-1559 transaction and its hex encoding.
func signedTestTx(t *testing.T) (*types.Transaction, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	to := common.HexToAddress("0x742d35Cc6634C0532925a3b8D4C9db96C4b4d8b6")
	chainID := big.NewInt(11155111)
	tx := types.MustSignNewTx(key, types.LatestSignerForChainID(chainID), &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     3,
		GasTipCap: big.NewInt(1_000_000_000),
		GasFeeCap: big.NewInt(2_000_000_000),
		Gas:       21000,
		To:        &to,
		Value:     big.NewInt(100_000_000_000_000_000),
	})

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return tx, hexutil.Encode(raw)
}

func TestDecodeRawTx(t *testing.T) {
	t.Parallel()

	want, rawHex := signedTestTx(t)

	t.Run("with 0x prefix", func(t *testing.T) {
		t.Parallel()

		got, err := decodeRawTx(rawHex)
		require.NoError(t, err)
		assert.Equal(t, want.Hash(), got.Hash())
		assert.Equal(t, uint64(3), got.Nonce())
		assert.Equal(t, want.To(), got.To())
	})

	t.Run("without prefix", func(t *testing.T) {
		t.Parallel()

		got, err := decodeRawTx(strings.TrimPrefix(rawHex, "0x"))
		require.NoError(t, err)
		assert.Equal(t, want.Hash(), got.Hash())
	})

	t.Run("not hex", func(t *testing.T) {
		t.Parallel()

		_, err := decodeRawTx("0xzz")
		assert.Error(t, err)
	})

	t.Run("hex but not a transaction", func(t *testing.T) {
		t.Parallel()

		_, err := decodeRawTx("0xdeadbeef")
		assert.Error(t, err)
	})
}
