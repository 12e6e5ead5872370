package domain

import (
	"fmt"
	"strings"
)

// TxID identifies a transaction. Dispute, resolve and chargeback reuse it to
// reference the deposit they act on.
type TxID uint32

type TxType string

const (
	TxTypeDeposit    TxType = "deposit"
	TxTypeWithdrawal TxType = "withdrawal"
	TxTypeDispute    TxType = "dispute"
	TxTypeResolve    TxType = "resolve"
	TxTypeChargeback TxType = "chargeback"
)

// TxTypes lists every supported transaction type.
var TxTypes = []TxType{TxTypeDeposit, TxTypeWithdrawal, TxTypeDispute, TxTypeResolve, TxTypeChargeback}

// ParseTxType maps a type name to a TxType. Matching ignores case and surrounding space.
func ParseTxType(s string) (TxType, error) {
	t := TxType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TxTypeDeposit, TxTypeWithdrawal, TxTypeDispute, TxTypeResolve, TxTypeChargeback:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTxType, s)
}

// CarriesAmount reports whether transactions of this type move an explicit amount.
func (t TxType) CarriesAmount() bool {
	return t == TxTypeDeposit || t == TxTypeWithdrawal
}

type TxState string

const (
	TxStateNew         TxState = "new"
	TxStateSuccess     TxState = "success"
	TxStateDisputed    TxState = "disputed"
	TxStateChargedBack TxState = "charged_back"
)

// Transaction is one input event. Only State changes after construction, and
// only the engine changes it.
type Transaction struct {
	Type   TxType
	Client ClientID
	ID     TxID
	Amount Balance
	State  TxState
}

// NewDeposit creates a deposit of amount into client's account.
func NewDeposit(client ClientID, id TxID, amount Balance) Transaction {
	return Transaction{Type: TxTypeDeposit, Client: client, ID: id, Amount: amount, State: TxStateNew}
}

// NewWithdrawal creates a withdrawal of amount from client's account.
func NewWithdrawal(client ClientID, id TxID, amount Balance) Transaction {
	return Transaction{Type: TxTypeWithdrawal, Client: client, ID: id, Amount: amount, State: TxStateNew}
}

// NewDispute, NewResolve and NewChargeback create amount-less transactions
// whose ID refers to an earlier deposit.
func NewDispute(client ClientID, ref TxID) Transaction {
	return Transaction{Type: TxTypeDispute, Client: client, ID: ref, State: TxStateNew}
}

func NewResolve(client ClientID, ref TxID) Transaction {
	return Transaction{Type: TxTypeResolve, Client: client, ID: ref, State: TxStateNew}
}

func NewChargeback(client ClientID, ref TxID) Transaction {
	return Transaction{Type: TxTypeChargeback, Client: client, ID: ref, State: TxStateNew}
}

// HasAmount reports whether the transaction carries an amount.
func (t Transaction) HasAmount() bool {
	return t.Type.CarriesAmount()
}

// String describes t for error lines and logs.
func (t Transaction) String() string {
	if t.HasAmount() {
		return fmt.Sprintf("transaction type: %s(%s), client: %d, tx: %d", t.Type, t.Amount, t.Client, t.ID)
	}
	return fmt.Sprintf("transaction type: %s, client: %d, tx: %d", t.Type, t.Client, t.ID)
}
