package coupon_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/coupon"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	beforeSummerEnd = time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	afterSummerEnd  = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		subtotal     string
		now          time.Time
		wantValid    bool
		wantDiscount string
		wantMessage  string
	}{
		{
			name:        "below minimum purchase: invalid",
			code:        "SAVE20",
			subtotal:    "50",
			now:         afterSummerEnd,
			wantMessage: "Minimum purchase of $100 required",
		},
		{
			name:         "percentage under cap: ok",
			code:         "SAVE20",
			subtotal:     "150",
			now:          afterSummerEnd,
			wantValid:    true,
			wantDiscount: "30.00",
			wantMessage:  "Coupon applied successfully! You saved $30.00",
		},
		{
			name:         "percentage capped at max discount: ok",
			code:         "SAVE20",
			subtotal:     "1000",
			now:          afterSummerEnd,
			wantValid:    true,
			wantDiscount: "50.00",
			wantMessage:  "Coupon applied successfully! You saved $50.00",
		},
		{
			name:         "fixed discount: ok",
			code:         "FLAT25",
			subtotal:     "200",
			now:          afterSummerEnd,
			wantValid:    true,
			wantDiscount: "25.00",
			wantMessage:  "Coupon applied successfully! You saved $25.00",
		},
		{
			name:         "code is case insensitive: ok",
			code:         "  welcome10 ",
			subtotal:     "55.55",
			now:          afterSummerEnd,
			wantValid:    true,
			wantDiscount: "5.56",
			wantMessage:  "Coupon applied successfully! You saved $5.56",
		},
		{
			name:         "subtotal equal to minimum: ok",
			code:         "WELCOME10",
			subtotal:     "50",
			now:          afterSummerEnd,
			wantValid:    true,
			wantDiscount: "5.00",
			wantMessage:  "Coupon applied successfully! You saved $5.00",
		},
		{
			name:        "unknown code: invalid",
			code:        "FREESTUFF",
			subtotal:    "500",
			now:         afterSummerEnd,
			wantMessage: "Invalid coupon code",
		},
		{
			name:        "blank code: invalid",
			code:        "   ",
			subtotal:    "500",
			now:         afterSummerEnd,
			wantMessage: "Please enter a coupon code",
		},
		{
			name:        "expired coupon: invalid",
			code:        "SUMMER30",
			subtotal:    "1000",
			now:         afterSummerEnd,
			wantMessage: "Coupon has expired",
		},
		{
			name:         "coupon before expiry: ok",
			code:         "SUMMER30",
			subtotal:     "1000",
			now:          beforeSummerEnd,
			wantValid:    true,
			wantDiscount: "75.00",
			wantMessage:  "Coupon applied successfully! You saved $75.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := coupon.NewEvaluator(coupon.DefaultCatalog(), coupon.WithClock(fixedClock(tt.now)))

			got := e.Validate(tt.code, decimal.RequireFromString(tt.subtotal))

			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantMessage, got.Message)
			if tt.wantValid {
				assert.Equal(t, tt.wantDiscount, got.Discount.StringFixed(2))
			} else {
				assert.True(t, got.Discount.IsZero())
			}
		})
	}
}

func TestValidateExpiredIgnoresSubtotal(t *testing.T) {
	e := coupon.NewEvaluator(coupon.DefaultCatalog(), coupon.WithClock(fixedClock(afterSummerEnd)))

	for range 20 {
		subtotal := decimal.NewFromFloat(gofakeit.Price(0, 100000))

		got := e.Validate("SUMMER30", subtotal)
		assert.False(t, got.Valid)
		assert.Equal(t, coupon.MsgExpired, got.Message)
	}
}

func TestValidateFixedMayExceedSubtotal(t *testing.T) {
	catalog := []domain.Coupon{{
		Code:         "BIGFIX",
		DiscountType: domain.DiscountFixed,
		Value:        decimal.NewFromInt(40),
	}}
	e := coupon.NewEvaluator(catalog)

	got := e.Validate("bigfix", decimal.NewFromInt(10))

	assert.True(t, got.Valid)
	assert.Equal(t, "40.00", got.Discount.StringFixed(2))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
