package teranode

import (
	"testing"

	as "github.com/aerospike/aerospike-client-go/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedBackend_SpendThenUnspend(t *testing.T) {
	backend := NewEmbeddedBackend()
	client := NewClient(backend)

	key, err := as.NewKey("test", "utxos", "tx-1")
	require.NoError(t, err)

	utxoHash := make([]byte, 32)
	utxoHash[0] = 0x01
	backend.Seed(key, map[string]any{
		"utxos": []any{utxoHash},
	})

	spendingData := make([]byte, 36)
	spendingData[0] = 0xAA

	resp, err := client.Spend(key, 0, utxoHash, spendingData, false, false, 100, 10)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "OK", resp["status"])

	resp, err = client.Unspend(key, 0, utxoHash, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, "OK", resp["status"])
}

func TestEmbeddedBackend_UnknownKeyIsTxNotFound(t *testing.T) {
	backend := NewEmbeddedBackend()
	client := NewClient(backend)

	key, err := as.NewKey("test", "utxos", "never-seeded")
	require.NoError(t, err)

	resp, err := client.SetLocked(key, true)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", resp["status"])
	assert.Equal(t, "TX_NOT_FOUND", resp["errorCode"])
}

func TestEmbeddedBackend_FreezeUnfreeze(t *testing.T) {
	backend := NewEmbeddedBackend()
	client := NewClient(backend)

	key, err := as.NewKey("test", "utxos", "tx-2")
	require.NoError(t, err)

	utxoHash := make([]byte, 32)
	utxoHash[0] = 0x02
	backend.Seed(key, map[string]any{
		"utxos": []any{utxoHash},
	})

	resp, err := client.Freeze(key, 0, utxoHash)
	require.NoError(t, err)
	assert.Equal(t, "OK", resp["status"])

	resp, err = client.Unfreeze(key, 0, utxoHash)
	require.NoError(t, err)
	assert.Equal(t, "OK", resp["status"])
}

func TestEmbeddedBackend_SpendMulti(t *testing.T) {
	backend := NewEmbeddedBackend()
	client := NewClient(backend)

	key, err := as.NewKey("test", "utxos", "tx-3")
	require.NoError(t, err)

	h0 := make([]byte, 32)
	h0[0] = 0x11
	h1 := make([]byte, 32)
	h1[0] = 0x22
	backend.Seed(key, map[string]any{
		"utxos": []any{h0, h1},
	})

	sd0 := make([]byte, 36)
	sd0[0] = 0xA0
	sd1 := make([]byte, 36)
	sd1[0] = 0xA1

	spends := []map[string]any{
		{"offset": int64(0), "utxoHash": h0, "spendingData": sd0},
		{"offset": int64(1), "utxoHash": h1, "spendingData": sd1},
	}

	resp, err := client.SpendMulti(key, spends, false, false, 100, 10)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "OK", resp["status"])
}
