package domain

import "github.com/shopspring/decimal"

// CartLine is one product in the cart. The product fields are captured at
// first add and do not refresh against the catalog afterwards.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the discounted unit price times the quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}
