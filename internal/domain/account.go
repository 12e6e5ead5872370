package domain

import "fmt"

// ClientID identifies a client account.
type ClientID uint16

// Account holds a client's funds. Available and held are never negative; the
// total is always derived from them.
type Account struct {
	ID        ClientID
	Available Balance
	Held      Balance
	Locked    bool
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(id ClientID) *Account {
	return &Account{ID: id}
}

// Lock freezes the account. There is no way back.
func (a *Account) Lock() {
	a.Locked = true
}

// IsLocked reports whether a chargeback has frozen the account.
func (a *Account) IsLocked() bool {
	return a.Locked
}

// Total returns available + held.
func (a *Account) Total() Balance {
	total, err := a.Available.Add(a.Held)
	if err != nil {
		// Both operands are validated non-negative decimals.
		panic(fmt.Sprintf("account %d: total of %s and %s: %v", a.ID, a.Available, a.Held, err))
	}
	return total
}

// SetBalances replaces available and held in one step.
func (a *Account) SetBalances(available, held Balance) {
	a.Available = available
	a.Held = held
}
