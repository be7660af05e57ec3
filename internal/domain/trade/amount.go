package trade

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount resolves a loosely typed money value: numbers, numeric strings,
// decimals and big-number objects of the form {"value": "12.50"}.
// Present reports whether the value counts as set: a non-empty string or a
// non-zero number. Unparseable strings are present but worth zero.
func Amount(v interface{}) (value decimal.Decimal, present bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case string:
		if t == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero, true
		}
		return d, true
	case float64:
		return nonZero(decimal.NewFromFloat(t))
	case float32:
		return nonZero(decimal.NewFromFloat32(t))
	case int:
		return nonZero(decimal.NewFromInt(int64(t)))
	case int64:
		return nonZero(decimal.NewFromInt(t))
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, false
		}
		return nonZero(d)
	case decimal.Decimal:
		return nonZero(t)
	case decimal.NullDecimal:
		if !t.Valid {
			return decimal.Zero, false
		}
		return nonZero(t.Decimal)
	case map[string]interface{}:
		return Amount(t["value"])
	default:
		d, err := decimal.NewFromString(fmt.Sprint(t))
		if err != nil {
			return decimal.Zero, false
		}
		return nonZero(d)
	}
}

// FirstAmount returns the first present value in candidates, or zero
func FirstAmount(candidates ...interface{}) decimal.Decimal {
	for _, c := range candidates {
		if d, ok := Amount(c); ok {
			return d
		}
	}
	return decimal.Zero
}

func nonZero(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, false
	}
	return d, true
}
