// Package totals computes the subtotal/tax/discount/total breakdown shown on
// the cart, checkout and order confirmation views. Every view goes through
// this package so the numbers match end to end.
package totals

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat sales tax applied to the subtotal.
var DefaultTaxRate = decimal.RequireFromString("0.08")

type Calculator struct {
	TaxRate decimal.Decimal
}

func NewCalculator(taxRate decimal.Decimal) Calculator {
	return Calculator{TaxRate: taxRate}
}

func (c Calculator) Compute(cart domain.Cart, discount decimal.Decimal) domain.Totals {
	return Compute(cart.Items, discount, c.TaxRate)
}

// Compute is a pure function of its inputs. Shipping is always free and the
// total never drops below zero.
func Compute(items []domain.CartItem, discount, taxRate decimal.Decimal) domain.Totals {
	subtotal := domain.Cart{Items: items}.Subtotal()
	tax := domain.Round2(subtotal.Mul(taxRate))
	shipping := decimal.Zero

	total := subtotal.Add(tax).Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
