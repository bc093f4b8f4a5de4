package collector

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{"12,5", 12.5},
		{" 7 ", 7},
		{"1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"0,10", 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	for _, bad := range []string{"", "abc", "1,2,x"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}

func TestCSVSource_Read(t *testing.T) {
	input := `Date;Price;Quantity;Item
01/01/2024;10,5;100;Bolts
02/01/2024;11;;Bolts
03/01/2024;n/a;5;Bolts
;12;1;Nuts
04/01/2024;9,75;abc;Nuts
`
	src := NewCSVSource("inline", ';', zerolog.Nop())
	recs, err := src.Read(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "01/01/2024", recs[0].Date)
	assert.Equal(t, 10.5, recs[0].Price)
	require.NotNil(t, recs[0].Quantity)
	assert.Equal(t, 100.0, *recs[0].Quantity)
	assert.Equal(t, "Bolts", recs[0].Item)

	assert.Nil(t, recs[1].Quantity)
	assert.Equal(t, "Nuts", recs[2].Item)
	assert.Equal(t, 9.75, recs[2].Price)
	assert.Nil(t, recs[2].Quantity)
}

func TestCSVSource_HeaderWithoutItem(t *testing.T) {
	src := NewCSVSource("inline", 0, zerolog.Nop())
	recs, err := src.Read(context.Background(), strings.NewReader("date,price\n2024-01-01,5\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Item)
	assert.Nil(t, recs[0].Quantity)
}

func TestCSVSource_Errors(t *testing.T) {
	src := NewCSVSource("inline", ',', zerolog.Nop())

	_, err := src.Read(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = src.Read(context.Background(), strings.NewReader("date,amount\n2024-01-01,5\n"))
	assert.Error(t, err)

	_, err = src.Read(context.Background(), strings.NewReader("date,price\n2024-01-01,x\n"))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestCSVSource_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,price,item\n2024-01-01,5,A\n2024-01-02,6,A\n"), 0o644))

	recs, err := NewCSVSource(path, ',', zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), ',', zerolog.Nop()).Load(context.Background())
	assert.Error(t, err)
}

func TestCollector_Collect(t *testing.T) {
	nan := math.NaN()
	q := 3.0
	src := &MockSource{Records: []model.PriceRecord{
		{Date: "2024-01-01", Price: 10, Quantity: &q},
		{Date: "2024-01-02", Price: -1},
		{Date: "2024-01-03", Price: math.Inf(1)},
		{Date: "2024-01-04", Price: 12, Quantity: &nan},
	}}
	c := NewCollector(src, zerolog.Nop())

	recs, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, 10.0, recs[0].Price)
	// only non-finite prices are filtered; a negative one is passed through
	assert.Equal(t, -1.0, recs[1].Price)
	assert.Nil(t, recs[2].Quantity)
	// source records are untouched
	assert.NotNil(t, src.Records[3].Quantity)
}

func TestCollector_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCollector(&MockSource{Err: boom}, zerolog.Nop()).Collect(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewCollector(&MockSource{Records: []model.PriceRecord{{Date: "x", Price: math.NaN()}}}, zerolog.Nop()).Collect(context.Background())
	assert.ErrorIs(t, err, ErrNoRecords)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewCollector(&MockSource{}, zerolog.Nop()).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
