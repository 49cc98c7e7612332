package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// Format controls the CSV flattening convention: the field delimiter and
// the decimal mark used for monetary values.
type Format struct {
	Separator   rune
	DecimalMark string
}

// DefaultFormat is the institution's own export convention.
var DefaultFormat = Format{Separator: ';', DecimalMark: ","}

const dateFormat = "2006-01-02"

const (
	numFields  = 8
	colDate    = 0
	colDesc    = 1
	colDoc     = 2
	colCredit  = 3
	colDebit   = 4
	colBalance = 5
	colValue   = 6
	colSource  = 7
)

var headerFields = []string{
	"date", "description", "document", "credit", "debit", "balance", "value", "source_file",
}

var decoratedFields = append(append([]string{}, headerFields...),
	"year", "month", "year_month", "month_name", "type", "credit_abs", "debit_abs",
	"category", "ma3_balance", "ma3_flow", "trend", "anomaly",
)

// Write writes the consolidated ledger (including header) in the given
// format.
func Write(w io.Writer, txns []model.Transaction, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.Separator
	defer cw.Flush()

	if err := cw.Write(headerFields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write(marshalTransaction(t, f)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteDecorated writes the analytics-ready ledger with every derived
// field attached.
func WriteDecorated(w io.Writer, txns []model.Transaction, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.Separator
	defer cw.Flush()

	if err := cw.Write(decoratedFields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		row := marshalTransaction(t, f)
		row = append(row,
			strconv.Itoa(t.Year),
			strconv.Itoa(t.Month),
			t.YearMonth,
			t.MonthName,
			t.Type,
			f.amount(t.CreditAbs),
			f.amount(t.DebitAbs),
			t.Category,
			f.amount(t.MA3Balance),
			f.amount(t.MA3Flow),
			t.Trend,
			t.Anomaly,
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Read reads a consolidated ledger written by Write.
func Read(r io.Reader, f Format) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.Separator
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := unmarshalTransaction(rec, f)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteFile writes the ledger atomically: the output appears complete or
// not at all, even when the destination is locked by another process.
func WriteFile(path string, txns []model.Transaction, f Format) error {
	return writeAtomic(path, func(w io.Writer) error {
		return Write(w, txns, f)
	})
}

// WriteDecoratedFile is the atomic file form of WriteDecorated.
func WriteDecoratedFile(path string, txns []model.Transaction, f Format) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteDecorated(w, txns, f)
	})
}

// ReadFile reads a ledger CSV from disk. A missing file yields an empty
// ledger.
func ReadFile(path string, f Format) ([]model.Transaction, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer file.Close()

	txns, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func marshalTransaction(t model.Transaction, f Format) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.Format(dateFormat)
	row[colDesc] = t.Description
	row[colDoc] = t.Document
	row[colCredit] = f.amount(t.Credit)
	row[colDebit] = f.amount(t.Debit)
	row[colBalance] = f.amount(t.Balance)
	row[colValue] = f.amount(t.Value)
	row[colSource] = t.SourceFile
	return row
}

func unmarshalTransaction(record []string, f Format) (model.Transaction, error) {
	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var t model.Transaction
	t.Date = date
	t.Description = record[colDesc]
	t.Document = record[colDoc]
	t.SourceFile = record[colSource]

	for _, field := range []struct {
		name string
		dst  *decimal.Decimal
		raw  string
	}{
		{"credit", &t.Credit, record[colCredit]},
		{"debit", &t.Debit, record[colDebit]},
		{"balance", &t.Balance, record[colBalance]},
		{"value", &t.Value, record[colValue]},
	} {
		d, err := f.parseAmount(field.raw)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing %s %q: %w", field.name, field.raw, err)
		}
		*field.dst = d
	}

	return t, nil
}

func (f Format) amount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", f.DecimalMark, 1)
}

func (f Format) parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, f.DecimalMark, ".", 1))
}
