package usecase

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/domain"
)

// Engine applies transactions to client accounts. It owns the accounts, the
// ledger and the error list for the lifetime of a run.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	accounts  map[domain.ClientID]*domain.Account
	ledger    *domain.Ledger
	errors    []error
	processed int
	logger    zerolog.Logger
	recorder  Recorder
}

// NewEngine creates an engine with no accounts. A nil recorder discards outcomes.
func NewEngine(logger zerolog.Logger, recorder Recorder) *Engine {
	if recorder == nil {
		recorder = NopRecorder{}
	}

	return &Engine{
		accounts: make(map[domain.ClientID]*domain.Account),
		ledger:   domain.NewLedger(),
		logger:   logger,
		recorder: recorder,
	}
}

// Process consumes records in order and returns every error collected so far.
// Rejected transactions leave accounts and the ledger untouched; processing
// always continues until records is exhausted.
func (e *Engine) Process(records iter.Seq2[domain.Transaction, error]) []error {
	for tx, err := range records {
		e.processed++

		if err != nil {
			e.reject(asParseError(err))
			continue
		}

		e.apply(tx)
	}

	return e.errors
}

func (e *Engine) apply(tx domain.Transaction) {
	account, isNew, err := e.accountFor(tx)
	if err != nil {
		e.reject(domain.NewTransactionError(err, tx))
		return
	}

	if account.IsLocked() {
		e.reject(domain.NewTransactionError(domain.ErrAccountLocked, tx))
		return
	}

	switch tx.Type {
	case domain.TxTypeDeposit:
		err = e.deposit(account, tx)
	case domain.TxTypeWithdrawal:
		err = e.withdraw(account, tx)
	case domain.TxTypeDispute:
		err = e.dispute(account, tx)
	case domain.TxTypeResolve, domain.TxTypeChargeback:
		err = e.resolution(account, tx)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownTxType, tx.Type)
	}

	if err != nil {
		e.reject(domain.NewTransactionError(err, tx))
		return
	}

	if isNew {
		e.accounts[account.ID] = account
		e.recorder.AccountOpened()
	}

	e.recorder.TransactionApplied(tx.Type)
	e.logger.Debug().
		Str("type", string(tx.Type)).
		Uint16("client", uint16(tx.Client)).
		Uint32("tx", uint32(tx.ID)).
		Msg("transaction applied")
}

// accountFor returns the target account. A deposit for an unknown client gets a
// fresh account that is only registered once the deposit succeeds.
func (e *Engine) accountFor(tx domain.Transaction) (*domain.Account, bool, error) {
	if account, ok := e.accounts[tx.Client]; ok {
		return account, false, nil
	}

	if tx.Type == domain.TxTypeDeposit {
		return domain.NewAccount(tx.Client), true, nil
	}

	return nil, false, domain.ErrNoClient
}

// deposit credits available funds.
func (e *Engine) deposit(account *domain.Account, tx domain.Transaction) error {
	if e.ledger.Contains(tx.ID) {
		return domain.ErrDuplicateTransact
	}

	available, err := account.Available.Add(tx.Amount)
	if err != nil {
		return err
	}

	tx.State = domain.TxStateSuccess
	if err := e.ledger.Insert(tx); err != nil {
		return err
	}

	account.Available = available
	return nil
}

// withdraw debits available funds, which must cover the amount.
func (e *Engine) withdraw(account *domain.Account, tx domain.Transaction) error {
	if e.ledger.Contains(tx.ID) {
		return domain.ErrDuplicateTransact
	}

	if account.Available.LessThan(tx.Amount) {
		return domain.ErrInsufficientFunds
	}

	available, err := account.Available.Sub(tx.Amount)
	if err != nil {
		return err
	}

	tx.State = domain.TxStateSuccess
	if err := e.ledger.Insert(tx); err != nil {
		return err
	}

	account.Available = available
	return nil
}

// dispute moves the amount of a successful deposit from available to held.
// Funds that were already withdrawn cannot be disputed.
func (e *Engine) dispute(account *domain.Account, tx domain.Transaction) error {
	ref, err := e.referenced(account, tx)
	if err != nil {
		return err
	}

	if ref.State != domain.TxStateSuccess {
		return fmt.Errorf("%w: %s, want %s", domain.ErrWrongTransState, ref.State, domain.TxStateSuccess)
	}

	if account.Available.LessThan(ref.Amount) {
		return domain.ErrInsufficientFunds
	}

	available, err := account.Available.Sub(ref.Amount)
	if err != nil {
		return err
	}

	held, err := account.Held.Add(ref.Amount)
	if err != nil {
		return err
	}

	account.SetBalances(available, held)
	ref.State = domain.TxStateDisputed
	return nil
}

// resolution settles a disputed deposit. A resolve releases the held funds back
// to available; a chargeback removes them and locks the account.
func (e *Engine) resolution(account *domain.Account, tx domain.Transaction) error {
	ref, err := e.referenced(account, tx)
	if err != nil {
		return err
	}

	if ref.State != domain.TxStateDisputed {
		return fmt.Errorf("%w: %s, want %s", domain.ErrWrongTransState, ref.State, domain.TxStateDisputed)
	}

	// Only a dispute puts a deposit in the disputed state, and it moved the
	// amount to held.
	if account.Held.LessThan(ref.Amount) {
		return fmt.Errorf("%w: held %s, disputed %s: %w",
			domain.ErrBalanceInvariant, account.Held, ref.Amount, domain.ErrInsufficientFunds)
	}

	held, err := account.Held.Sub(ref.Amount)
	if err != nil {
		return err
	}

	if tx.Type == domain.TxTypeResolve {
		available, err := account.Available.Add(ref.Amount)
		if err != nil {
			return err
		}

		account.SetBalances(available, held)
		ref.State = domain.TxStateSuccess
		return nil
	}

	account.Held = held
	ref.State = domain.TxStateChargedBack
	account.Lock()
	e.recorder.AccountLocked()
	e.logger.Info().Uint16("client", uint16(account.ID)).Uint32("tx", uint32(tx.ID)).Msg("account locked after chargeback")
	return nil
}

// referenced looks up the deposit a dispute, resolve or chargeback points at.
func (e *Engine) referenced(account *domain.Account, tx domain.Transaction) (*domain.Transaction, error) {
	ref, ok := e.ledger.Get(tx.ID)
	if !ok {
		return nil, domain.ErrReferNoneExisting
	}

	if ref.Client != account.ID {
		return nil, domain.ErrWrongClient
	}

	if ref.Type != domain.TxTypeDeposit {
		return nil, domain.ErrShouldBeDeposit
	}

	return ref, nil
}

func (e *Engine) reject(err error) {
	e.errors = append(e.errors, err)

	reason := domain.Reason(err)
	e.recorder.TransactionRejected(reason)

	if errors.Is(err, domain.ErrBalanceInvariant) {
		e.logger.Error().Err(err).Str("reason", reason).Msg("balance invariant violated")
		return
	}

	e.logger.Debug().Err(err).Str("reason", reason).Msg("transaction rejected")
}

func asParseError(err error) error {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &domain.ParseError{Err: err}
}

// Accounts returns the live account map. Changes to the accounts are visible to the engine.
func (e *Engine) Accounts() map[domain.ClientID]*domain.Account {
	return e.accounts
}

// Account returns the account for id, if it exists.
func (e *Engine) Account(id domain.ClientID) (*domain.Account, bool) {
	account, ok := e.accounts[id]
	return account, ok
}

// Snapshot returns copies of all accounts ordered by client id.
func (e *Engine) Snapshot() []domain.Account {
	out := make([]domain.Account, 0, len(e.accounts))
	for _, account := range e.accounts {
		out = append(out, *account)
	}

	slices.SortFunc(out, func(a, b domain.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// Ledger returns the applied deposits and withdrawals.
func (e *Engine) Ledger() *domain.Ledger {
	return e.ledger
}

// Errors returns the errors collected so far, in input order.
func (e *Engine) Errors() []error {
	return e.errors
}

// Processed returns how many input items have been consumed.
func (e *Engine) Processed() int {
	return e.processed
}
