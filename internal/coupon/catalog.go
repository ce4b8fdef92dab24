package coupon

import (
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the storefront's built-in coupon rules.
func DefaultCatalog() []domain.Coupon {
	return []domain.Coupon{
		{
			Code:         "WELCOME10",
			DiscountType: domain.DiscountPercentage,
			Value:        decimal.NewFromInt(10),
			MinPurchase:  decimal.NewFromInt(50),
		},
		{
			Code:         "SAVE20",
			DiscountType: domain.DiscountPercentage,
			Value:        decimal.NewFromInt(20),
			MinPurchase:  decimal.NewFromInt(100),
			MaxDiscount:  decimal.NewFromInt(50),
		},
		{
			Code:         "FLAT25",
			DiscountType: domain.DiscountFixed,
			Value:        decimal.NewFromInt(25),
			MinPurchase:  decimal.NewFromInt(150),
		},
		{
			Code:         "SUMMER30",
			DiscountType: domain.DiscountPercentage,
			Value:        decimal.NewFromInt(30),
			MinPurchase:  decimal.NewFromInt(200),
			MaxDiscount:  decimal.NewFromInt(75),
			ExpiryDate:   time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}
