// Package checkout drives one shopper's path from cart to placed order. A
// Session owns the shopper's cart and wishlist, remembers the last coupon that
// was applied successfully, and computes every total through one calculator.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/coupon"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/nikolayk812/storefront/internal/totals"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Session struct {
	ownerID  string
	cart     *store.Cart
	wishlist *store.Wishlist
	coupons  *coupon.Evaluator
	calc     totals.Calculator
	catalog  port.Catalog
	now      func() time.Time
	logger   *zap.Logger

	mu      sync.Mutex
	applied *domain.CouponResult
}

type Deps struct {
	Coupons    *coupon.Evaluator
	Calculator totals.Calculator
	Catalog    port.Catalog
	Now        func() time.Time
	Logger     *zap.Logger
}

func NewSession(ownerID string, deps Deps) *Session {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	opts := []store.Option{store.WithLogger(deps.Logger), store.WithClock(deps.Now)}

	return &Session{
		ownerID:  ownerID,
		cart:     store.NewCart(ownerID, opts...),
		wishlist: store.NewWishlist(ownerID, opts...),
		coupons:  deps.Coupons,
		calc:     deps.Calculator,
		catalog:  deps.Catalog,
		now:      deps.Now,
		logger:   deps.Logger.With(zap.String("owner_id", ownerID)),
	}
}

func (s *Session) OwnerID() string {
	return s.ownerID
}

func (s *Session) Cart() *store.Cart {
	return s.cart
}

func (s *Session) Wishlist() *store.Wishlist {
	return s.wishlist
}

// AddFromCatalog looks the product up once and adds it to the cart with the
// price the catalog reports right now.
func (s *Session) AddFromCatalog(ctx context.Context, productID, qty int) (domain.Product, error) {
	if qty < 1 || qty > domain.MaxQuantity {
		return domain.Product{}, fmt.Errorf("add product %d: %w", productID, domain.ErrInvalidQuantity)
	}

	product, err := s.lookup(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.cart.AddItem(product.CartItem(qty), qty); err != nil {
		return domain.Product{}, fmt.Errorf("cart.AddItem: %w", err)
	}

	return product, nil
}

// ToggleWishlist adds the product when absent and removes it when present.
// It reports whether the product is in the wishlist afterwards.
func (s *Session) ToggleWishlist(ctx context.Context, productID int) (bool, error) {
	if s.wishlist.Contains(productID) {
		s.wishlist.Remove(productID)
		return false, nil
	}

	product, err := s.lookup(ctx, productID)
	if err != nil {
		return false, err
	}

	s.wishlist.Add(product.WishlistItem())

	return true, nil
}

func (s *Session) lookup(ctx context.Context, productID int) (domain.Product, error) {
	if s.catalog == nil {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog.GetProduct: %w", err)
	}

	return product, nil
}

// ApplyCoupon validates code against the current subtotal. A valid coupon
// replaces the applied one; a rejected one leaves it in place.
func (s *Session) ApplyCoupon(code string) domain.CouponResult {
	result := s.coupons.Validate(code, s.cart.Total())

	if !result.Valid {
		s.logger.Info("coupon rejected", zap.String("code", result.Code), zap.String("reason", result.Message))
		return result
	}

	s.mu.Lock()
	s.applied = &result
	s.mu.Unlock()

	s.logger.Info("coupon applied", zap.String("code", result.Code), zap.String("discount", result.Discount.StringFixed(2)))

	return result
}

func (s *Session) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applied = nil
}

// AppliedCoupon returns the last successfully applied coupon. The discount is
// not re-validated when the cart changes afterwards.
func (s *Session) AppliedCoupon() (domain.CouponResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applied == nil {
		return domain.CouponResult{}, false
	}

	return *s.applied, true
}

// takeCoupon returns the applied coupon and clears it.
func (s *Session) takeCoupon() (domain.CouponResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applied == nil {
		return domain.CouponResult{}, false
	}
	applied := *s.applied
	s.applied = nil

	return applied, true
}

func (s *Session) discount() decimal.Decimal {
	if applied, ok := s.AppliedCoupon(); ok {
		return applied.Discount
	}
	return decimal.Zero
}

// Totals is what the cart and checkout views display.
func (s *Session) Totals() domain.Totals {
	_, t := s.Summary()
	return t
}

// Summary returns a cart snapshot together with the totals computed from
// that same snapshot.
func (s *Session) Summary() (domain.Cart, domain.Totals) {
	cart := s.cart.Snapshot()
	return cart, s.calc.Compute(cart, s.discount())
}

// PlaceOrder turns the current cart into an order, then empties the cart and
// drops the applied coupon. The order carries the same totals Totals reported
// for the same cart.
func (s *Session) PlaceOrder(ctx context.Context, customer domain.Customer) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	if err := ValidateCustomer(customer); err != nil {
		return domain.Order{}, err
	}

	cart := s.cart.Drain()
	if cart.IsEmpty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	applied, _ := s.takeCoupon()

	order := domain.Order{
		ID:       "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		OwnerID:  s.ownerID,
		Items:    cart.Items,
		Totals:   s.calc.Compute(cart, applied.Discount),
		Coupon:   applied.Code,
		Customer: customer,
		Status:   domain.OrderStatusPlaced,
		PlacedAt: s.now(),
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Totals.Total.StringFixed(2)))

	return order, nil
}
