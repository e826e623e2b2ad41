package positions

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns 'value' in currency 'cur'. A float that is not finite is zero.
func M[T float64 | decimal.Decimal](value T, cur string) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: cur}
	case float64:
		return Money{value: finite(v), cur: cur}
	}
	return Money{cur: cur}
}

// EUR returns 'v' euros. Portfolios reviewed here are reported in euro.
func EUR(v float64) Money { return M(v, "EUR") }

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency conventions, rounded to the currency fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}


// Float returns the closest float64 to the amount.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)).InexactFloat64())
	return w.MarshalJSON()
}
