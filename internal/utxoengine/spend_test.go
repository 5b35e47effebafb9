package utxoengine

import (
	"testing"

	"github.com/bsv-blockchain/teranode-utxo-engine/internal/utxoengine/mockrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hash(b byte) []byte {
	h := make([]byte, hashLen)
	for i := range h {
		h[i] = b
	}
	return h
}

func spendingData(b byte) []byte {
	s := make([]byte, spendingDataLen)
	for i := range s {
		s[i] = b
	}
	return s
}

func fn(name string) *string { return &name }

func TestSpend_Plain(t *testing.T) {
	h0, h1, h2 := hash(0x01), hash(0x02), hash(0x03)
	rec := mockrecord.NewWithBins(map[string]any{
		"utxos": []any{h0, h1, h2},
	})
	host := &mockrecord.Host{}

	ok, val := ApplyRecord(rec, fn("spend"), []any{
		int64(0), h0, spendingData(0xEE), false, false, int64(1000), int64(100),
	}, host)
	require.True(t, ok)
	resp := val.(map[string]any)
	assert.Equal(t, "OK", resp["status"])

	utxos, _ := asList(rec.Get(binUTXOs))
	got := utxos[0].([]byte)
	assert.Len(t, got, spentLen)
	assert.Equal(t, asInt64Default(rec.Get(binSpentUTXOs), -1), int64(1))
	assert.Nil(t, rec.Get(binDeleteAtHeight))
	assert.Equal(t, 1, host.Commits)
}

func TestSpend_CoinbaseImmature(t *testing.T) {
	h0 := hash(0x01)
	rec := mockrecord.NewWithBins(map[string]any{
		"utxos":          []any{h0, hash(0x02), hash(0x03)},
		"spendingHeight": int64(2000),
	})
	host := &mockrecord.Host{}

	ok, val := ApplyRecord(rec, fn("spend"), []any{
		int64(0), h0, spendingData(0xEE), false, false, int64(1000), int64(100),
	}, host)
	require.True(t, ok)
	resp := val.(map[string]any)
	assert.Equal(t, "ERROR", resp["status"])
	assert.Equal(t, string(CodeCoinbaseImmature), resp["errorCode"])
	assert.Contains(t, resp["message"], "2000")
	assert.Contains(t, resp["message"], "1000")

	utxos, _ := asList(rec.Get(binUTXOs))
	assert.Equal(t, h0, utxos[0])
}

func TestSpend_DoubleSpendDifferentData(t *testing.T) {
	h0 := hash(0x01)
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{h0}})
	host := &mockrecord.Host{}

	s1 := spendingData(0x11)
	ok, _ := ApplyRecord(rec, fn("spend"), []any{int64(0), h0, s1, false, false, int64(1000), int64(100)}, host)
	require.True(t, ok)

	s2 := spendingData(0x22)
	ok, val := ApplyRecord(rec, fn("spend"), []any{int64(0), h0, s2, false, false, int64(1000), int64(100)}, host)
	require.True(t, ok)
	resp := val.(map[string]any)
	assert.Equal(t, "ERROR", resp["status"])
	errs := resp["errors"].(map[any]any)
	item := errs[int64(0)].(map[string]any)
	assert.Equal(t, string(CodeSpent), item["errorCode"])
	assert.Equal(t, spendingDataHex(s1), item["spendingData"])
}

func TestSpend_Idempotent(t *testing.T) {
	h0 := hash(0x01)
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{h0}})
	host := &mockrecord.Host{}
	s := spendingData(0x11)

	args := []any{int64(0), h0, s, false, false, int64(1000), int64(100)}
	ok, val := ApplyRecord(rec, fn("spend"), args, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])

	ok, val = ApplyRecord(rec, fn("spend"), args, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])
	assert.Equal(t, int64(1), asInt64Default(rec.Get(binSpentUTXOs), -1))
}

func TestSpendUnspendRoundTrip(t *testing.T) {
	h0 := hash(0x01)
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{h0}})
	host := &mockrecord.Host{}
	s := spendingData(0x11)

	ok, _ := ApplyRecord(rec, fn("spend"), []any{int64(0), h0, s, false, false, int64(1000), int64(100)}, host)
	require.True(t, ok)

	ok, val := ApplyRecord(rec, fn("unspend"), []any{int64(0), h0, int64(1000), int64(100)}, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])

	utxos, _ := asList(rec.Get(binUTXOs))
	assert.Equal(t, h0, utxos[0])
	assert.Equal(t, int64(0), asInt64Default(rec.Get(binSpentUTXOs), -1))
}

func TestFrozenUntilAfterReassign(t *testing.T) {
	h0 := hash(0x01)
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{h0}})
	host := &mockrecord.Host{}

	ok, _ := ApplyRecord(rec, fn("freeze"), []any{int64(0), h0}, host)
	require.True(t, ok)

	newHash := hash(0x02)
	ok, val := ApplyRecord(rec, fn("reassign"), []any{int64(0), h0, newHash, int64(500), int64(10)}, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])

	ok, val = ApplyRecord(rec, fn("spend"), []any{int64(0), newHash, spendingData(0x33), false, false, int64(500), int64(100)}, host)
	require.True(t, ok)
	resp := val.(map[string]any)
	assert.Equal(t, "ERROR", resp["status"])
	errs := resp["errors"].(map[any]any)
	assert.Equal(t, string(CodeFrozenUntil), errs[int64(0)].(map[string]any)["errorCode"])

	ok, val = ApplyRecord(rec, fn("spend"), []any{int64(0), newHash, spendingData(0x33), false, false, int64(600), int64(100)}, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])
}

func TestFreezeUnfreezeRoundTrip(t *testing.T) {
	h0 := hash(0x01)
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{h0}})
	host := &mockrecord.Host{}

	ok, _ := ApplyRecord(rec, fn("freeze"), []any{int64(0), h0}, host)
	require.True(t, ok)
	ok, _ = ApplyRecord(rec, fn("unfreeze"), []any{int64(0), h0}, host)
	require.True(t, ok)

	utxos, _ := asList(rec.Get(binUTXOs))
	assert.Equal(t, h0, utxos[0])

	ok, val := ApplyRecord(rec, fn("freeze"), []any{int64(0), h0}, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])
}

func TestMasterRecordDAHCycle(t *testing.T) {
	h0, h1, h2 := hash(0x01), hash(0x02), hash(0x03)
	rec := mockrecord.NewWithBins(map[string]any{
		"utxos":          []any{h0, h1, h2},
		"totalExtraRecs": int64(0),
		"external":       true,
		"blockIDs":       []any{int64(7)},
		"recordUtxos":    int64(3),
	})
	host := &mockrecord.Host{}

	spend := func(offset int64, h []byte) map[string]any {
		ok, val := ApplyRecord(rec, fn("spend"), []any{offset, h, spendingData(0x10 + byte(offset)), false, false, int64(1000), int64(100)}, host)
		require.True(t, ok)
		return val.(map[string]any)
	}

	spend(0, h0)
	spend(1, h1)
	resp := spend(2, h2)

	assert.Equal(t, "OK", resp["status"])
	assert.Equal(t, SignalDAHSet, resp["signal"])
	assert.Equal(t, int64(1100), rec.Get(binDeleteAtHeight))
}

func TestSetMinedIdempotent(t *testing.T) {
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{hash(0x01)}})
	host := &mockrecord.Host{}

	args := []any{int64(12345), int64(500), int64(1), int64(1000), int64(100), true, false}
	ok, _ := ApplyRecord(rec, fn("setMined"), args, host)
	require.True(t, ok)
	ok, _ = ApplyRecord(rec, fn("setMined"), args, host)
	require.True(t, ok)

	blockIDs, _ := asList(rec.Get(binBlockIDs))
	blockHeights, _ := asList(rec.Get(binBlockHeights))
	subtreeIdxs, _ := asList(rec.Get(binSubtreeIdxs))
	assert.Equal(t, []any{int64(12345)}, blockIDs)
	assert.Equal(t, []any{int64(500)}, blockHeights)
	assert.Equal(t, []any{int64(1)}, subtreeIdxs)
	assert.Nil(t, rec.Get(binUnminedSince))
}

func TestIncrementSpentExtraRecsBoundaries(t *testing.T) {
	rec := mockrecord.NewWithBins(map[string]any{"totalExtraRecs": int64(3)})
	host := &mockrecord.Host{}

	ok, val := ApplyRecord(rec, fn("incrementSpentExtraRecs"), []any{int64(3), int64(1000), int64(0)}, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])

	ok, val = ApplyRecord(rec, fn("incrementSpentExtraRecs"), []any{int64(1), int64(1000), int64(0)}, host)
	require.True(t, ok)
	assert.Equal(t, "ERROR", val.(map[string]any)["status"])

	ok, val = ApplyRecord(rec, fn("incrementSpentExtraRecs"), []any{int64(-3), int64(1000), int64(0)}, host)
	require.True(t, ok)
	assert.Equal(t, "OK", val.(map[string]any)["status"])

	ok, val = ApplyRecord(rec, fn("incrementSpentExtraRecs"), []any{int64(-1), int64(1000), int64(0)}, host)
	require.True(t, ok)
	assert.Equal(t, "ERROR", val.(map[string]any)["status"])
}

func TestDispatch_UnknownFunction(t *testing.T) {
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{hash(1)}})
	host := &mockrecord.Host{}
	ok, val := ApplyRecord(rec, fn("notAFunction"), nil, host)
	assert.False(t, ok)
	assert.Contains(t, val.(string), "unknown function")
}

func TestDispatch_NilFunctionName(t *testing.T) {
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{hash(1)}})
	host := &mockrecord.Host{}
	ok, val := ApplyRecord(rec, nil, nil, host)
	assert.False(t, ok)
	assert.Equal(t, "function name required", val)
}

func TestDispatch_EmptyRecord(t *testing.T) {
	rec := mockrecord.New()
	host := &mockrecord.Host{}
	ok, val := ApplyRecord(rec, fn("spend"), nil, host)
	assert.True(t, ok)
	assert.Equal(t, string(CodeTxNotFound), val.(map[string]any)["errorCode"])
}

func TestDispatch_NilHost(t *testing.T) {
	rec := mockrecord.NewWithBins(map[string]any{"utxos": []any{hash(1)}})
	ok, val := ApplyRecord(rec, fn("spend"), nil, nil)
	assert.True(t, ok)
	assert.Equal(t, string(CodeInvalidParameter), val.(map[string]any)["errorCode"])
}
