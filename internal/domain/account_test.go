package domain

import (
	"testing"
)

func TestNewAccount(t *testing.T) {
	acc := NewAccount(7)

	if acc.ID != 7 {
		t.Errorf("expected id 7, got %d", acc.ID)
	}
	if !acc.Available.IsZero() || !acc.Held.IsZero() || !acc.Total().IsZero() {
		t.Errorf("expected zero balances, got %+v", acc)
	}
	if acc.IsLocked() {
		t.Error("expected new account to be unlocked")
	}
}

func TestAccount_Total(t *testing.T) {
	tests := []struct {
		name      string
		available string
		held      string
		expected  string
	}{
		{name: "available only", available: "1.5", held: "0", expected: "1.5"},
		{name: "held only", available: "0", held: "3.2", expected: "3.2"},
		{name: "both", available: "0.66", held: "0.3333", expected: "0.9933"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccount(1)
			acc.SetBalances(MustBalance(tt.available), MustBalance(tt.held))

			if total := acc.Total(); !total.Equal(MustBalance(tt.expected)) {
				t.Errorf("expected total %s, got %s", tt.expected, total)
			}
		})
	}
}

func TestAccount_LockIsIdempotent(t *testing.T) {
	acc := NewAccount(1)

	acc.Lock()
	acc.Lock()

	if !acc.IsLocked() {
		t.Error("expected account to be locked")
	}
}
