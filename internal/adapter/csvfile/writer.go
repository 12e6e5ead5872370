package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iho/txengine/internal/domain"
)

var outputHeader = []string{"client", "available", "held", "total", "locked"}

// WriteAccounts renders accounts as CSV rows, one per account, in the given order.
func WriteAccounts(w io.Writer, accounts []domain.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outputHeader); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSerialize, err)
	}

	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.ID), 10),
			account.Available.String(),
			account.Held.String(),
			account.Total().String(),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSerialize, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSerialize, err)
	}

	return nil
}
