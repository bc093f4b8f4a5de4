package collector

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// ErrNoRecords is returned when a source yields no usable rows.
var ErrNoRecords = errors.New("no valid price records")

// Header aliases recognised for each column, compared case-insensitively.
var (
	dateHeaders     = []string{"date", "data", "ds"}
	priceHeaders    = []string{"price", "prezzo", "unit_price"}
	quantityHeaders = []string{"quantity", "quantita", "qty"}
	itemHeaders     = []string{"item", "articolo", "product", "code"}
)

// CSVSource reads purchase records from a delimited file with a header row.
// Price and quantity accept either '.' or ',' as decimal separator.
type CSVSource struct {
	Path      string
	Delimiter rune
	Log       zerolog.Logger
}

// NewCSVSource creates a CSV source. A zero delimiter means ','.
func NewCSVSource(path string, delimiter rune, log zerolog.Logger) *CSVSource {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVSource{Path: path, Delimiter: delimiter, Log: log}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Load opens the file and parses it.
func (s *CSVSource) Load(ctx context.Context) ([]model.PriceRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()
	return s.Read(ctx, f)
}

type columns struct {
	date, price, quantity, item int
}

func findColumns(header []string) (columns, error) {
	cols := columns{date: -1, price: -1, quantity: -1, item: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.Trim(h, "\"\ufeff")))
		switch {
		case cols.date == -1 && contains(dateHeaders, h):
			cols.date = i
		case cols.price == -1 && contains(priceHeaders, h):
			cols.price = i
		case cols.quantity == -1 && contains(quantityHeaders, h):
			cols.quantity = i
		case cols.item == -1 && contains(itemHeaders, h):
			cols.item = i
		}
	}
	if cols.date == -1 || cols.price == -1 {
		return cols, fmt.Errorf("header must contain date and price columns, got %v", header)
	}
	return cols, nil
}

// Read parses records from r. Rows with an empty date or an unreadable
// price are skipped with a warning; a row with an unreadable quantity
// keeps its price and drops the quantity.
func (s *CSVSource) Read(ctx context.Context, r io.Reader) ([]model.PriceRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoRecords
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.PriceRecord
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.Log.Warn().Err(err).Int("line", line).Msg("skipping malformed row")
			continue
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			s.Log.Warn().Err(err).Int("line", line).Msg("skipping row")
			continue
		}
		if cols.quantity >= 0 && cols.quantity < len(row) && rec.Quantity == nil && strings.TrimSpace(row[cols.quantity]) != "" {
			s.Log.Warn().Int("line", line).Str("quantity", row[cols.quantity]).Msg("unreadable quantity dropped")
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func parseRow(row []string, cols columns) (model.PriceRecord, error) {
	var rec model.PriceRecord
	if cols.date >= len(row) || cols.price >= len(row) {
		return rec, fmt.Errorf("row has %d fields", len(row))
	}
	rec.Date = strings.TrimSpace(row[cols.date])
	if rec.Date == "" {
		return rec, errors.New("empty date")
	}
	price, err := ParseAmount(row[cols.price])
	if err != nil {
		return rec, fmt.Errorf("price: %w", err)
	}
	rec.Price = price

	if cols.quantity >= 0 && cols.quantity < len(row) {
		if q, err := ParseAmount(row[cols.quantity]); err == nil {
			rec.Quantity = &q
		}
	}
	if cols.item >= 0 && cols.item < len(row) {
		rec.Item = strings.TrimSpace(row[cols.item])
	}
	return rec, nil
}

// ParseAmount reads a decimal number written with '.' or ',' as decimal
// separator. When both appear, the last one is the decimal separator.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot > comma && comma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
