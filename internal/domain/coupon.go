package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a read-only discount rule. A zero MinPurchase or MaxDiscount
// means the limit is not set; a zero ExpiryDate means the coupon never expires.
type Coupon struct {
	Code         string
	DiscountType DiscountType
	Value        decimal.Decimal
	MinPurchase  decimal.Decimal
	MaxDiscount  decimal.Decimal
	ExpiryDate   time.Time
}

type CouponResult struct {
	Code     string
	Valid    bool
	Discount decimal.Decimal
	Message  string
}
