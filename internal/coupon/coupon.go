// Package coupon validates coupon codes against a static catalog and
// computes the discount they grant for a given subtotal.
package coupon

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	MsgEmptyCode   = "Please enter a coupon code"
	MsgInvalidCode = "Invalid coupon code"
	MsgExpired     = "Coupon has expired"
)

type Evaluator struct {
	coupons map[string]domain.Coupon
	now     func() time.Time
	logger  *zap.Logger
}

type Option func(*Evaluator)

func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// NewEvaluator indexes the catalog by normalized code. When two coupons
// normalize to the same code the first one wins.
func NewEvaluator(catalog []domain.Coupon, opts ...Option) *Evaluator {
	e := &Evaluator{
		coupons: make(map[string]domain.Coupon, len(catalog)),
		now:     time.Now,
		logger:  zap.NewNop(),
	}

	for _, c := range catalog {
		code := normalize(c.Code)
		if _, ok := e.coupons[code]; !ok {
			e.coupons[code] = c
		}
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Validate never fails: rejections come back as a result with Valid unset
// and a message fit for display.
func (e *Evaluator) Validate(code string, subtotal decimal.Decimal) domain.CouponResult {
	normalized := normalize(code)
	if normalized == "" {
		return rejected(normalized, MsgEmptyCode)
	}

	c, ok := e.coupons[normalized]
	if !ok {
		e.logger.Debug("unknown coupon", zap.String("code", normalized))
		return rejected(normalized, MsgInvalidCode)
	}

	if !c.ExpiryDate.IsZero() && e.now().After(c.ExpiryDate) {
		return rejected(normalized, MsgExpired)
	}

	if c.MinPurchase.IsPositive() && subtotal.LessThan(c.MinPurchase) {
		return rejected(normalized, fmt.Sprintf("Minimum purchase of $%s required", c.MinPurchase.String()))
	}

	discount := domain.Round2(discountFor(c, subtotal))

	e.logger.Debug("coupon accepted",
		zap.String("code", normalized),
		zap.String("subtotal", subtotal.String()),
		zap.String("discount", discount.StringFixed(2)))

	return domain.CouponResult{
		Code:     normalized,
		Valid:    true,
		Discount: discount,
		Message:  fmt.Sprintf("Coupon applied successfully! You saved $%s", discount.StringFixed(2)),
	}
}

// discountFor does not compare fixed discounts against the subtotal; the
// totals calculator clamps the final amount instead.
func discountFor(c domain.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	switch c.DiscountType {
	case domain.DiscountPercentage:
		amount := domain.PercentageOf(subtotal, c.Value)
		if c.MaxDiscount.IsPositive() && amount.GreaterThan(c.MaxDiscount) {
			amount = c.MaxDiscount
		}
		return amount
	case domain.DiscountFixed:
		return c.Value
	default:
		return decimal.Zero
	}
}

func rejected(code, message string) domain.CouponResult {
	return domain.CouponResult{
		Code:     code,
		Discount: decimal.Zero,
		Message:  message,
	}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
