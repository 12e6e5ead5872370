package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

var _ usecase.Recorder = (*Metrics)(nil)

func TestNewRegistersMetrics(t *testing.T) {
	m := New()

	if m.TransactionsApplied == nil || m.TransactionsRejected == nil || m.RunDuration == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.TransactionApplied(domain.TxTypeDeposit)

	metricFamilies, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestNewUsesIndependentRegistries(t *testing.T) {
	first, second := New(), New()

	first.AccountOpened()

	if got := testutil.ToFloat64(second.AccountsOpened); got != 0 {
		t.Fatalf("expected fresh registry per run, got %v", got)
	}
}

func TestRecorderCounts(t *testing.T) {
	m := New()

	m.TransactionApplied(domain.TxTypeDeposit)
	m.TransactionApplied(domain.TxTypeDeposit)
	m.TransactionApplied(domain.TxTypeChargeback)
	m.TransactionRejected("account_locked")
	m.AccountOpened()
	m.AccountLocked()

	if got := testutil.ToFloat64(m.TransactionsApplied.WithLabelValues("deposit")); got != 2 {
		t.Errorf("expected 2 deposits, got %v", got)
	}
	if got := testutil.ToFloat64(m.TransactionsApplied.WithLabelValues("chargeback")); got != 1 {
		t.Errorf("expected 1 chargeback, got %v", got)
	}
	if got := testutil.ToFloat64(m.TransactionsRejected.WithLabelValues("account_locked")); got != 1 {
		t.Errorf("expected 1 rejection, got %v", got)
	}
	if got := testutil.ToFloat64(m.AccountsLocked); got != 1 {
		t.Errorf("expected 1 locked account, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.TransactionRejected("no_client")

	path := filepath.Join(t.TempDir(), "txengine.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("failed to write metrics: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}

	if !strings.Contains(string(content), `txengine_transactions_rejected_total{reason="no_client"} 1`) {
		t.Fatalf("expected rejection counter in output, got:\n%s", content)
	}
}
