package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Balance errors
	ErrInvalidBalance = errors.New("balance must be a finite, non-negative decimal")

	// Processing errors
	ErrDuplicateTransact = errors.New("duplicate transaction id")
	ErrAccountLocked     = errors.New("client account is locked")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoClient          = errors.New("client does not exist")
	ErrWrongClient       = errors.New("referenced transaction belongs to a different client")
	ErrWrongTransState   = errors.New("referenced transaction is in the wrong state")
	ErrReferNoneExisting = errors.New("referenced transaction does not exist")
	ErrShouldBeDeposit   = errors.New("referenced transaction is not a deposit")
	ErrBalanceInvariant  = errors.New("held funds do not cover a disputed deposit")

	// Input errors
	ErrMalformedRecord  = errors.New("malformed record")
	ErrUnknownTxType    = errors.New("unknown transaction type")
	ErrAmountNegative   = errors.New("amount is negative")
	ErrMissingAmount    = errors.New("amount is required")
	ErrUnexpectedAmount = errors.New("amount is not allowed")
	ErrInvalidClientID  = errors.New("invalid client id")
	ErrInvalidTxID      = errors.New("invalid transaction id")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
	ErrAmountTooPrecise = errors.New("amount has too many decimal places")

	// Environment errors, fatal for a run
	ErrInvalidHeader = errors.New("input must start with the header: type, client, tx, amount")
	ErrInputFile     = errors.New("cannot open input file")
	ErrSerialize     = errors.New("cannot serialize accounts")
)

// TransactionError is a rejected transaction together with the reason it was rejected.
// A rejected transaction leaves no trace in accounts or the ledger.
type TransactionError struct {
	Err error
	Tx  Transaction
}

// NewTransactionError wraps err with the transaction that caused it.
func NewTransactionError(err error, tx Transaction) *TransactionError {
	return &TransactionError{Err: err, Tx: tx}
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: %s; the transaction was ignored", e.Err, e.Tx)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ParseError describes an input row that could not become a Transaction.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("invalid record")
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if len(e.Record) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Record, ", "))
	}
	fmt.Fprintf(&b, ": %v; the record was ignored", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reason returns a short stable label for err, suitable for metrics and log fields.
func Reason(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return "parse"
	}

	switch {
	case errors.Is(err, ErrBalanceInvariant):
		return "balance_invariant"
	case errors.Is(err, ErrDuplicateTransact):
		return "duplicate_transact"
	case errors.Is(err, ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNoClient):
		return "no_client"
	case errors.Is(err, ErrWrongClient):
		return "wrong_client"
	case errors.Is(err, ErrWrongTransState):
		return "wrong_trans_state"
	case errors.Is(err, ErrReferNoneExisting):
		return "refer_none_existing"
	case errors.Is(err, ErrShouldBeDeposit):
		return "should_be_deposit"
	case errors.Is(err, ErrInvalidBalance):
		return "invalid_balance"
	}

	return "unknown"
}
