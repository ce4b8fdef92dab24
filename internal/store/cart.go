// Package store holds the per-session cart and wishlist state. Mutations are
// applied under a lock and then announced synchronously to subscribers with a
// copy of the new state.
package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Cart struct {
	mu      sync.Mutex
	ownerID string
	items   []domain.CartItem
	now     func() time.Time
	logger  *zap.Logger

	observers observers[domain.Cart]
}

type Option func(*options)

type options struct {
	now    func() time.Time
	logger *zap.Logger
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewCart(ownerID string, opts ...Option) *Cart {
	o := newOptions(opts)

	return &Cart{
		ownerID: ownerID,
		now:     o.now,
		logger:  o.logger.With(zap.String("owner_id", ownerID)),
	}
}

func (c *Cart) OwnerID() string {
	return c.ownerID
}

// Subscribe registers fn to receive the cart after every change and returns
// a function that removes it.
func (c *Cart) Subscribe(fn func(domain.Cart)) func() {
	return c.observers.subscribe(fn)
}

// AddItem adds qty of the item to the cart. If the product is already in the
// cart the quantities accumulate and the original line, including the price
// captured when it was first added, is kept. A line never exceeds
// domain.MaxQuantity; an add that would push it past is rejected whole.
func (c *Cart) AddItem(item domain.CartItem, qty int) error {
	if qty < 1 || qty > domain.MaxQuantity {
		return fmt.Errorf("add product %d: %w", item.ProductID, domain.ErrInvalidQuantity)
	}

	c.mu.Lock()
	if i := c.indexOf(item.ProductID); i >= 0 {
		if c.items[i].Quantity > domain.MaxQuantity-qty {
			c.mu.Unlock()
			return fmt.Errorf("add product %d: %w", item.ProductID, domain.ErrInvalidQuantity)
		}
		c.items[i].Quantity += qty
	} else {
		item.Quantity = qty
		item.CreatedAt = c.now()
		c.items = append(c.items, item)
	}
	c.logger.Debug("item added", zap.Int("product_id", item.ProductID), zap.Int("quantity", qty))
	c.observers.publish(c.snapshotLocked(), c.mu.Unlock)

	return nil
}

// SetQuantity replaces the quantity of a line. Quantities below one or above
// domain.MaxQuantity and unknown products are ignored.
func (c *Cart) SetQuantity(productID, qty int) {
	if qty < 1 || qty > domain.MaxQuantity {
		c.logger.Debug("quantity out of range ignored", zap.Int("product_id", productID), zap.Int("quantity", qty))
		return
	}

	c.mu.Lock()
	i := c.indexOf(productID)
	if i < 0 || c.items[i].Quantity == qty {
		c.mu.Unlock()
		return
	}
	c.items[i].Quantity = qty
	c.logger.Debug("quantity set", zap.Int("product_id", productID), zap.Int("quantity", qty))
	c.observers.publish(c.snapshotLocked(), c.mu.Unlock)
}

func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	i := c.indexOf(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.logger.Debug("item removed", zap.Int("product_id", productID))
	c.observers.publish(c.snapshotLocked(), c.mu.Unlock)
}

// Drain empties the cart and returns what it held, in one step. Subscribers
// are notified once, with the empty cart, unless it was already empty.
func (c *Cart) Drain() domain.Cart {
	c.mu.Lock()
	drained := c.snapshotLocked()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return drained
	}
	c.items = nil
	c.logger.Debug("cart drained", zap.Int("items", len(drained.Items)))
	c.observers.publish(c.snapshotLocked(), c.mu.Unlock)

	return drained
}

func (c *Cart) Clear() {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return
	}
	c.items = nil
	c.logger.Debug("cart cleared")
	c.observers.publish(c.snapshotLocked(), c.mu.Unlock)
}

// Total is the cart subtotal: unit price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	return c.Snapshot().Subtotal()
}

func (c *Cart) Items() []domain.CartItem {
	return c.Snapshot().Items
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *Cart) Snapshot() domain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Restore replaces the cart contents with a previously saved snapshot
// without notifying subscribers. Lines with a quantity below one are dropped,
// repeated products are merged and quantities are capped at domain.MaxQuantity.
func (c *Cart) Restore(cart domain.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	for _, item := range cart.Items {
		if item.Quantity < 1 {
			continue
		}
		if i := c.indexOf(item.ProductID); i >= 0 {
			c.items[i].Quantity = min(c.items[i].Quantity+min(item.Quantity, domain.MaxQuantity), domain.MaxQuantity)
			continue
		}
		item.Quantity = min(item.Quantity, domain.MaxQuantity)
		c.items = append(c.items, item)
	}
}

func (c *Cart) indexOf(productID int) int {
	return slices.IndexFunc(c.items, func(item domain.CartItem) bool {
		return item.ProductID == productID
	})
}

func (c *Cart) snapshotLocked() domain.Cart {
	return domain.Cart{
		OwnerID: c.ownerID,
		Items:   slices.Clone(c.items),
	}
}
