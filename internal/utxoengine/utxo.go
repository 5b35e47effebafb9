package utxoengine

import (
	"bytes"
	"encoding/hex"
)

const (
	hashLen         = 32
	spendingDataLen = 36
	unspentLen      = hashLen
	spentLen        = hashLen + spendingDataLen
)

var frozenPattern = bytes.Repeat([]byte{0xFF}, spendingDataLen)

func isFrozenSpendingData(spendingData []byte) bool {
	return len(spendingData) == spendingDataLen && bytes.Equal(spendingData, frozenPattern)
}

// validated is the borrowed result of getAndValidate: utxo points at the
// list element itself, spendingData is a sub-slice of it (nil when the
// element is the 32-byte unspent form). Callers must consume spendingData
// before replacing the list element at offset.
type validated struct {
	utxo         []byte
	spendingData []byte
}

// getAndValidate implements §4.2: look up utxos[offset], check its shape,
// and confirm its hash prefix matches expectedHash.
func getAndValidate(utxos []any, offset int64, expectedHash []byte) (validated, *EngineError) {
	if len(expectedHash) != hashLen {
		return validated{}, errUTXOInvalidSize()
	}
	if offset < 0 || offset >= int64(len(utxos)) {
		return validated{}, errUTXONotFound(offset)
	}
	raw := utxos[offset]
	if raw == nil {
		return validated{}, errUTXONotFound(offset)
	}
	b, ok := asBytes(raw)
	if !ok || (len(b) != unspentLen && len(b) != spentLen) {
		return validated{}, errUTXOInvalidSize()
	}
	if !bytes.Equal(b[:hashLen], expectedHash) {
		return validated{}, errUTXOHashMismatch()
	}
	if len(b) == unspentLen {
		return validated{utxo: b}, nil
	}
	return validated{utxo: b, spendingData: b[hashLen:spentLen]}, nil
}

// spendingDataHex renders the 72-character hex form of §6: the 32-byte
// consuming txid byte-reversed, followed by the 4-byte vin index as-is.
func spendingDataHex(spendingData []byte) string {
	if len(spendingData) != spendingDataLen {
		return ""
	}
	reversed := make([]byte, hashLen)
	for i := 0; i < hashLen; i++ {
		reversed[i] = spendingData[hashLen-1-i]
	}
	return hex.EncodeToString(reversed) + hex.EncodeToString(spendingData[hashLen:])
}

// childTxIDHex is the first 64 characters of spendingDataHex: the key used
// to look up deletedChildren.
func childTxIDHex(spendingData []byte) string {
	full := spendingDataHex(spendingData)
	if len(full) < 64 {
		return full
	}
	return full[:64]
}

type spendOutcome int

const (
	spendOK spendOutcome = iota
	spendSkip
)

// spendSingleUTXO implements §4.3. utxos is mutated in place on spendOK.
func spendSingleUTXO(
	utxos []any,
	deletedChildren map[any]any,
	utxoSpendableIn map[any]any,
	offset int64,
	utxoHash, spendingData []byte,
	currentBlockHeight int64,
) (spendOutcome, *EngineError) {
	v, eerr := getAndValidate(utxos, offset, utxoHash)
	if eerr != nil {
		return 0, eerr
	}

	if utxoSpendableIn != nil {
		if raw, ok := intKey(utxoSpendableIn, offset); ok {
			if h, ok := asInt64(raw); ok && h >= currentBlockHeight {
				return 0, errFrozenUntil(h)
			}
		}
	}

	if v.spendingData != nil {
		switch {
		case isFrozenSpendingData(v.spendingData):
			return 0, errFrozen()
		case bytes.Equal(v.spendingData, spendingData):
			if deletedChildren != nil {
				if _, found := deletedChildren[childTxIDHex(v.spendingData)]; found {
					return 0, errInvalidSpend(v.spendingData)
				}
			}
			return spendSkip, nil
		default:
			return 0, errSpent(v.spendingData)
		}
	}

	newUTXO := make([]byte, 0, spentLen)
	newUTXO = append(newUTXO, utxoHash...)
	newUTXO = append(newUTXO, spendingData...)
	utxos[offset] = newUTXO
	return spendOK, nil
}
