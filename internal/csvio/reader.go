package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// ErrMalformedRow marks a row the caller can safely skip. Anything else
// returned by Next (other than io.EOF) means the input stream itself is
// broken and the run cannot continue.
var ErrMalformedRow = errors.New("malformed row")

// Reader decodes transaction rows from CSV input with a
// `type,client,tx,amount` header. The format is forgiving: fields may carry
// surrounding whitespace and dispute-family rows may omit the amount column
// entirely.
type Reader struct {
	csv        *csv.Reader
	headerDone bool
}

// NewReader wraps r in a transaction decoder.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next returns the next transaction. io.EOF signals the end of the input;
// errors wrapping ErrMalformedRow mark a single bad row.
func (r *Reader) Next() (models.Transaction, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return models.Transaction{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
			}
			return models.Transaction{}, err
		}
		if !r.headerDone {
			r.headerDone = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "type") {
				continue
			}
		}
		return parseRow(row)
	}
}

func parseRow(row []string) (models.Transaction, error) {
	if len(row) < 3 || len(row) > 4 {
		return models.Transaction{}, fmt.Errorf("%w: %d fields", ErrMalformedRow, len(row))
	}

	kind := models.TransactionType(strings.ToLower(strings.TrimSpace(row[0])))
	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: client %q", ErrMalformedRow, row[1])
	}
	txID, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: tx %q", ErrMalformedRow, row[2])
	}

	tx := models.Transaction{
		Type:   kind,
		Client: models.ClientID(client),
		Tx:     models.TransactionID(txID),
	}

	amountField := ""
	if len(row) == 4 {
		amountField = strings.TrimSpace(row[3])
	}

	switch kind {
	case models.TypeDeposit, models.TypeWithdrawal:
		if amountField == "" {
			return models.Transaction{}, fmt.Errorf("%w: %s without amount", ErrMalformedRow, kind)
		}
		amount, err := decimal.NewFromString(amountField)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("%w: amount %q", ErrMalformedRow, amountField)
		}
		tx.Amount = &amount
	case models.TypeDispute, models.TypeResolve, models.TypeChargeback:
		if amountField != "" {
			return models.Transaction{}, fmt.Errorf("%w: %s carries an amount", ErrMalformedRow, kind)
		}
	default:
		return models.Transaction{}, fmt.Errorf("%w: unknown type %q", ErrMalformedRow, row[0])
	}
	return tx, nil
}
