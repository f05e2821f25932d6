package units

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "one unit", amount: "1", want: "1000000000000000000"},
		{name: "zero", amount: "0", want: "0"},
		{name: "zero with fraction", amount: "0.000", want: "0"},
		{name: "fraction", amount: "0.01", want: "10000000000000000"},
		{name: "leading point", amount: ".5", want: "500000000000000000"},
		{name: "trailing point", amount: "2.", want: "2000000000000000000"},
		{name: "smallest unit", amount: "0.000000000000000001", want: "1"},
		{name: "whitespace", amount: " 3.25 ", want: "3250000000000000000"},
		{name: "negative", amount: "-1.5", want: "-1500000000000000000"},
		{name: "large", amount: "123456789.123456789", want: "123456789123456789000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBaseUnits(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestToBaseUnits_Errors(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "empty", amount: "", wantErr: ErrEmptyAmount},
		{name: "blank", amount: "   ", wantErr: ErrEmptyAmount},
		{name: "only point", amount: ".", wantErr: ErrInvalidAmount},
		{name: "letters", amount: "1e18", wantErr: ErrInvalidAmount},
		{name: "two points", amount: "1.2.3", wantErr: ErrInvalidAmount},
		{name: "too precise", amount: "0.0000000000000000001", wantErr: ErrTooPrecise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBaseUnits(tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromBaseUnits_OneUnitHex(t *testing.T) {
	value, err := hexutil.DecodeBig("0xde0b6b3a7640000")
	require.NoError(t, err)

	assert.Equal(t, float64(1), FromBaseUnits(value))
	assert.Equal(t, float64(0), FromBaseUnits(nil))
}

func TestRoundTrip(t *testing.T) {
	amounts := map[string]float64{
		"1":          1,
		"0":          0,
		"0.5":        0.5,
		"0.01":       0.01,
		"12.345":     12.345,
		"1000000":    1000000,
		"0.00000001": 0.00000001,
	}

	for amount, want := range amounts {
		value, err := ToBaseUnits(amount)
		require.NoError(t, err, amount)
		assert.InDelta(t, want, FromBaseUnits(value), 1e-12, amount)
		assert.Equal(t, amount, Format(value), amount)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(nil))
	assert.Equal(t, "0", Format(big.NewInt(0)))
	assert.Equal(t, "0.000000000000000001", Format(big.NewInt(1)))
	assert.Equal(t, "-1.5", Format(big.NewInt(-1500000000000000000)))
}
