package utxoengine

import "fmt"

// Code is one of the seventeen stable error identifiers callers match on.
// Messages are for logs only and may change wording over time.
type Code string

const (
	CodeTxNotFound         Code = "TX_NOT_FOUND"
	CodeConflicting        Code = "CONFLICTING"
	CodeLocked             Code = "LOCKED"
	CodeCreating           Code = "CREATING"
	CodeFrozen             Code = "FROZEN"
	CodeAlreadyFrozen      Code = "ALREADY_FROZEN"
	CodeFrozenUntil        Code = "FROZEN_UNTIL"
	CodeCoinbaseImmature   Code = "COINBASE_IMMATURE"
	CodeSpent              Code = "SPENT"
	CodeInvalidSpend       Code = "INVALID_SPEND"
	CodeUTXOsNotFound      Code = "UTXOS_NOT_FOUND"
	CodeUTXONotFound       Code = "UTXO_NOT_FOUND"
	CodeUTXOInvalidSize    Code = "UTXO_INVALID_SIZE"
	CodeUTXOHashMismatch   Code = "UTXO_HASH_MISMATCH"
	CodeUTXONotFrozen      Code = "UTXO_NOT_FROZEN"
	CodeInvalidParameter   Code = "INVALID_PARAMETER"
	CodeUpdateFailed       Code = "UPDATE_FAILED"
)

// EngineError is the typed error every handler path terminates in instead
// of panicking. Callers match on Code; Message is human-readable only.
type EngineError struct {
	Code         Code
	Message      string
	SpendingData []byte // set for SPENT / INVALID_SPEND only
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newErr(code Code, format string, args ...any) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func errInvalidParameter(format string, args ...any) *EngineError {
	return newErr(CodeInvalidParameter, format, args...)
}

func errTxNotFound() *EngineError {
	return newErr(CodeTxNotFound, "transaction not found")
}

func errConflicting() *EngineError {
	return newErr(CodeConflicting, "transaction is conflicting")
}

func errLocked() *EngineError {
	return newErr(CodeLocked, "transaction is locked")
}

func errCreating() *EngineError {
	return newErr(CodeCreating, "transaction is still being created")
}

func errFrozen() *EngineError {
	return newErr(CodeFrozen, "UTXO is frozen")
}

func errAlreadyFrozen() *EngineError {
	return newErr(CodeAlreadyFrozen, "UTXO is already frozen")
}

func errFrozenUntil(height int64) *EngineError {
	return newErr(CodeFrozenUntil, "UTXO is not spendable until block %d", height)
}

func errCoinbaseImmature(spendingHeight, currentHeight int64) *EngineError {
	return newErr(CodeCoinbaseImmature, "coinbase not spendable until block %d, current block is %d", spendingHeight, currentHeight)
}

func errSpent(spendingData []byte) *EngineError {
	e := newErr(CodeSpent, "UTXO already spent")
	e.SpendingData = spendingData
	return e
}

func errInvalidSpend(spendingData []byte) *EngineError {
	e := newErr(CodeInvalidSpend, "UTXO spent by a deleted child transaction")
	e.SpendingData = spendingData
	return e
}

func errUTXOsNotFound() *EngineError {
	return newErr(CodeUTXOsNotFound, "utxos bin not found or not a list")
}

func errUTXONotFound(offset int64) *EngineError {
	return newErr(CodeUTXONotFound, "no utxo at offset %d", offset)
}

func errUTXOInvalidSize() *EngineError {
	return newErr(CodeUTXOInvalidSize, "utxo is not bytes of length 32 or 68")
}

func errUTXOHashMismatch() *EngineError {
	return newErr(CodeUTXOHashMismatch, "utxo hash does not match expected hash")
}

func errUTXONotFrozen() *EngineError {
	return newErr(CodeUTXONotFrozen, "utxo is not frozen")
}

func errUpdateFailed(cause error) *EngineError {
	return newErr(CodeUpdateFailed, "commit failed: %v", cause)
}
