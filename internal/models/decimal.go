package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalSpec mirrors a NUMERIC(MaxDigits, Places) column.
type DecimalSpec struct {
	MaxDigits int32
	Places    int32
}

var (
	StockQuantitySpec       = DecimalSpec{MaxDigits: 7, Places: 2}
	UnitPriceSpec           = DecimalSpec{MaxDigits: 5, Places: 2}
	MenuItemPriceSpec       = DecimalSpec{MaxDigits: 4, Places: 2}
	RequirementQuantitySpec = DecimalSpec{MaxDigits: 6, Places: 2}
)

// Check returns an error describing why d does not fit the column.
func (s DecimalSpec) Check(d decimal.Decimal) error {
	if !d.Equal(d.Round(s.Places)) {
		return fmt.Errorf("ensure that there are no more than %d decimal places", s.Places)
	}
	whole := d.Truncate(0).Abs()
	if !whole.IsZero() && int32(len(whole.String())) > s.MaxDigits-s.Places {
		return fmt.Errorf("ensure that there are no more than %d digits before the decimal point", s.MaxDigits-s.Places)
	}
	return nil
}

// Max returns the largest value the column can hold, e.g. 99.99 for (4, 2).
func (s DecimalSpec) Max() decimal.Decimal {
	return decimal.New(1, s.MaxDigits-s.Places).Sub(decimal.New(1, -s.Places))
}
