package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/txengine/internal/domain"
)

var inputHeader = []string{"type", "client", "tx", "amount"}

// Reader decodes transactions from CSV input of the form:
//
//	type,       client, tx, amount
//	deposit,    1,      1,  1.0
//	withdrawal, 1,      2,  0.5
//	dispute,    1,      1,
//
// Surrounding whitespace in fields is ignored. The amount column may be left
// empty or omitted for dispute, resolve and chargeback rows.
type Reader struct {
	csv *csv.Reader
}

// NewReader consumes the header line from r and returns a reader positioned at
// the first record.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: input is empty", domain.ErrInvalidHeader)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidHeader, err)
		}

		fields := trimFields(record)
		if isBlank(fields) {
			continue
		}

		for i := range fields {
			fields[i] = strings.ToLower(fields[i])
		}
		if !slices.Equal(fields, inputHeader) {
			return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidHeader, strings.Join(fields, ", "))
		}

		return &Reader{csv: cr}, nil
	}
}

// OpenFile opens path and reads its header. The caller closes the returned file.
func OpenFile(path string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", domain.ErrInputFile, path, err)
	}

	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, f, nil
}

// All yields the remaining records lazily, one transaction or one error per row.
// Rows that cannot be decoded yield a *domain.ParseError and reading goes on.
// A failing underlying reader yields a final error and ends the sequence.
func (r *Reader) All() iter.Seq2[domain.Transaction, error] {
	return func(yield func(domain.Transaction, error) bool) {
		for {
			record, err := r.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				var csvErr *csv.ParseError
				if !errors.As(err, &csvErr) {
					yield(domain.Transaction{}, fmt.Errorf("read input: %w", err))
					return
				}

				parseErr := &domain.ParseError{
					Line: csvErr.Line,
					Err:  fmt.Errorf("%w: %v", domain.ErrMalformedRecord, csvErr.Err),
				}
				if !yield(domain.Transaction{}, parseErr) {
					return
				}
				continue
			}

			fields := trimFields(record)
			if isBlank(fields) {
				continue
			}

			tx, err := decodeRecord(fields)
			if err != nil {
				line, _ := r.csv.FieldPos(0)
				err = &domain.ParseError{Line: line, Record: fields, Err: err}
			}

			if !yield(tx, err) {
				return
			}
		}
	}
}

func decodeRecord(fields []string) (domain.Transaction, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return domain.Transaction{}, fmt.Errorf("%w: expected 3 or 4 fields, got %d", domain.ErrMalformedRecord, len(fields))
	}

	txType, err := domain.ParseTxType(fields[0])
	if err != nil {
		return domain.Transaction{}, err
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrInvalidClientID, fields[1])
	}

	id, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrInvalidTxID, fields[2])
	}

	var rawAmount string
	if len(fields) == 4 {
		rawAmount = fields[3]
	}

	clientID, txID := domain.ClientID(client), domain.TxID(id)

	if !txType.CarriesAmount() {
		if rawAmount != "" {
			return domain.Transaction{}, fmt.Errorf("%w: %s carries no amount, got %q", domain.ErrUnexpectedAmount, txType, rawAmount)
		}

		switch txType {
		case domain.TxTypeDispute:
			return domain.NewDispute(clientID, txID), nil
		case domain.TxTypeResolve:
			return domain.NewResolve(clientID, txID), nil
		default:
			return domain.NewChargeback(clientID, txID), nil
		}
	}

	if rawAmount == "" {
		return domain.Transaction{}, fmt.Errorf("%w: for %s", domain.ErrMissingAmount, txType)
	}

	d, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, rawAmount)
	}
	if err := domain.ValidateAmount(d); err != nil {
		if errors.Is(err, domain.ErrAmountNegative) {
			return domain.Transaction{}, fmt.Errorf("%w: %s", err, rawAmount)
		}
		return domain.Transaction{}, fmt.Errorf("%w %q: %w", domain.ErrInvalidAmount, rawAmount, err)
	}

	amount, err := domain.NewBalance(d)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %w", domain.ErrInvalidAmount, err)
	}

	if txType == domain.TxTypeDeposit {
		return domain.NewDeposit(clientID, txID, amount), nil
	}
	return domain.NewWithdrawal(clientID, txID, amount), nil
}

func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
