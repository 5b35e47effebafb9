package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("UTXO_AEROSPIKE_NAMESPACE")
	os.Unsetenv("UTXO_AEROSPIKE_SET")
	os.Unsetenv("UTXO_UDF_PACKAGE")
	os.Unsetenv("UTXO_BLOCK_HEIGHT_RETENTION")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", s.AerospikeNamespace)
	assert.Equal(t, "utxos", s.AerospikeSet)
	assert.Equal(t, "teranode", s.UDFPackage)
	assert.Equal(t, int64(288), s.DefaultBlockHeightRetention)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("UTXO_AEROSPIKE_NAMESPACE", "mainnet")
	t.Setenv("UTXO_AEROSPIKE_SET", "utxoset")
	t.Setenv("UTXO_UDF_PACKAGE", "customudf")
	t.Setenv("UTXO_BLOCK_HEIGHT_RETENTION", "500")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mainnet", s.AerospikeNamespace)
	assert.Equal(t, "utxoset", s.AerospikeSet)
	assert.Equal(t, "customudf", s.UDFPackage)
	assert.Equal(t, int64(500), s.DefaultBlockHeightRetention)
}

func TestLoad_InvalidRetention(t *testing.T) {
	t.Setenv("UTXO_BLOCK_HEIGHT_RETENTION", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
