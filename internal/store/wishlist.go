package store

import (
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

// Wishlist is a set of products keyed by product id, kept in insertion order.
type Wishlist struct {
	mu      sync.Mutex
	ownerID string
	items   []domain.WishlistItem
	now     func() time.Time
	logger  *zap.Logger

	observers observers[domain.Wishlist]
}

func NewWishlist(ownerID string, opts ...Option) *Wishlist {
	o := newOptions(opts)

	return &Wishlist{
		ownerID: ownerID,
		now:     o.now,
		logger:  o.logger.With(zap.String("owner_id", ownerID)),
	}
}

func (w *Wishlist) Subscribe(fn func(domain.Wishlist)) func() {
	return w.observers.subscribe(fn)
}

// Add is idempotent: adding a product that is already present changes nothing.
func (w *Wishlist) Add(item domain.WishlistItem) {
	w.mu.Lock()
	if w.indexOf(item.ProductID) >= 0 {
		w.mu.Unlock()
		return
	}
	item.CreatedAt = w.now()
	w.items = append(w.items, item)
	w.logger.Debug("wishlist item added", zap.Int("product_id", item.ProductID))
	w.observers.publish(w.snapshotLocked(), w.mu.Unlock)
}

func (w *Wishlist) Remove(productID int) {
	w.mu.Lock()
	i := w.indexOf(productID)
	if i < 0 {
		w.mu.Unlock()
		return
	}
	w.items = slices.Delete(w.items, i, i+1)
	w.logger.Debug("wishlist item removed", zap.Int("product_id", productID))
	w.observers.publish(w.snapshotLocked(), w.mu.Unlock)
}

func (w *Wishlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.indexOf(productID) >= 0
}

func (w *Wishlist) Clear() {
	w.mu.Lock()
	if len(w.items) == 0 {
		w.mu.Unlock()
		return
	}
	w.items = nil
	w.logger.Debug("wishlist cleared")
	w.observers.publish(w.snapshotLocked(), w.mu.Unlock)
}

func (w *Wishlist) Items() []domain.WishlistItem {
	return w.Snapshot().Items
}

func (w *Wishlist) Snapshot() domain.Wishlist {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.snapshotLocked()
}

// Restore replaces the wishlist contents without notifying subscribers.
func (w *Wishlist) Restore(wishlist domain.Wishlist) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	for _, item := range wishlist.Items {
		if w.indexOf(item.ProductID) >= 0 {
			continue
		}
		w.items = append(w.items, item)
	}
}

func (w *Wishlist) indexOf(productID int) int {
	return slices.IndexFunc(w.items, func(item domain.WishlistItem) bool {
		return item.ProductID == productID
	})
}

func (w *Wishlist) snapshotLocked() domain.Wishlist {
	return domain.Wishlist{
		OwnerID: w.ownerID,
		Items:   slices.Clone(w.items),
	}
}
