package domain

// Currency identifies the denomination of a monetary amount. Amounts in
// different currencies are never summed together; aggregates report one
// figure per currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyMVR Currency = "MVR"
	CurrencyEUR Currency = "EUR"
)

// IsValid returns true if the currency is one of the supported denominations.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyMVR, CurrencyEUR:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}
