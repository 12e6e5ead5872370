package domain

// Ledger keeps every successfully applied deposit and withdrawal, keyed by
// transaction id. It is the only source for dispute lookups.
type Ledger struct {
	entries map[TxID]*Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[TxID]*Transaction)}
}

// Get returns the stored transaction for id. The pointer may be used to update its state.
func (l *Ledger) Get(id TxID) (*Transaction, bool) {
	tx, ok := l.entries[id]
	return tx, ok
}

// Contains reports whether a transaction with id was applied.
func (l *Ledger) Contains(id TxID) bool {
	_, ok := l.entries[id]
	return ok
}

// Insert stores a copy of tx. An id is stored at most once.
func (l *Ledger) Insert(tx Transaction) error {
	if l.Contains(tx.ID) {
		return ErrDuplicateTransact
	}
	l.entries[tx.ID] = &tx
	return nil
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.entries)
}
