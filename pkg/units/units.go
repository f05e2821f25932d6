// Package units converts between human readable native-token amounts and base units.
// The native token uses 18 decimals, so one unit is 10^18 base units.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// Decimals is the number of fractional digits of the native token.
const Decimals = 18

var (
	ErrEmptyAmount   = errors.New("empty amount")
	ErrInvalidAmount = errors.New("invalid decimal amount")
	ErrTooPrecise    = errors.New("fractional component exceeds decimals")
)

var baseUnit = new(big.Float).SetInt(big.NewInt(params.Ether))

// ToBaseUnits converts a decimal amount string such as "1.5" into base units without
// going through floating point.
// Example: ToBaseUnits("0.01") = 10000000000000000
func ToBaseUnits(amount string) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, ErrEmptyAmount
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if hasPoint && strings.Contains(frac, ".") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if len(frac) > Decimals {
		return nil, fmt.Errorf("%w: %q", ErrTooPrecise, amount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	digits := strings.TrimLeft(whole+frac+strings.Repeat("0", Decimals-len(frac)), "0")
	value := new(big.Int)
	if digits != "" {
		if _, ok := value.SetString(digits, 10); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
		}
	}

	if negative {
		value.Neg(value)
	}
	return value, nil
}

// FromBaseUnits rescales a base-unit amount into a float by dividing by 10^18.
// Precision beyond float64 is lost; use Format for exact display.
func FromBaseUnits(value *big.Int) float64 {
	if value == nil {
		return 0
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(value), baseUnit).Float64()
	return f
}

// Format renders a base-unit amount as an exact decimal string with trailing zeros removed.
// Example: Format(1500000000000000000) = "1.5"
func Format(value *big.Int) string {
	if value == nil {
		return "0"
	}
	sign := ""
	abs := new(big.Int).Set(value)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	s := abs.String()
	for len(s) <= Decimals {
		s = "0" + s
	}
	pos := len(s) - Decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")
	if frac == "" {
		return sign + whole
	}
	return sign + whole + "." + frac
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
