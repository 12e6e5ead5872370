package usecase

import (
	"github.com/iho/txengine/internal/domain"
)

// Recorder observes engine outcomes, typically to export metrics.
type Recorder interface {
	TransactionApplied(txType domain.TxType)
	TransactionRejected(reason string)
	AccountOpened()
	AccountLocked()
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) TransactionApplied(domain.TxType) {}
func (NopRecorder) TransactionRejected(string)       {}
func (NopRecorder) AccountOpened()                   {}
func (NopRecorder) AccountLocked()                   {}
