package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

const saveTimeout = 3 * time.Second

// Registry hands out one Session per owner. When repositories are set, a new
// session starts from the owner's saved cart and wishlist, and every later
// change is written back.
type Registry struct {
	deps      Deps
	carts     port.CartRepository
	wishlists port.WishlistRepository
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// sessionEntry lets one caller restore an owner's session without holding
// the registry lock while the others wait for that owner only.
type sessionEntry struct {
	once    sync.Once
	session *Session
	err     error
}

type RegistryOption func(*Registry)

func WithCartRepository(repo port.CartRepository) RegistryOption {
	return func(r *Registry) {
		r.carts = repo
	}
}

func WithWishlistRepository(repo port.WishlistRepository) RegistryOption {
	return func(r *Registry) {
		r.wishlists = repo
	}
}

func NewRegistry(deps Deps, opts ...RegistryOption) *Registry {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := &Registry{
		deps:     deps,
		logger:   deps.Logger,
		sessions: make(map[string]*sessionEntry),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Session returns the owner's session, creating and restoring it on first use.
// A failed restore is not remembered; the next call tries again.
func (r *Registry) Session(ctx context.Context, ownerID string) (*Session, error) {
	if ownerID == "" {
		return nil, domain.ErrOwnerIDEmpty
	}

	r.mu.Lock()
	e, ok := r.sessions[ownerID]
	if !ok {
		e = &sessionEntry{}
		r.sessions[ownerID] = e
	}
	r.mu.Unlock()

	e.once.Do(func() {
		s := NewSession(ownerID, r.deps)

		if err := r.restore(ctx, s); err != nil {
			e.err = fmt.Errorf("restore: %w", err)
			return
		}
		r.persist(s)

		e.session = s
		r.logger.Debug("session created", zap.String("owner_id", ownerID))
	})

	if e.err != nil {
		r.mu.Lock()
		if r.sessions[ownerID] == e {
			delete(r.sessions, ownerID)
		}
		r.mu.Unlock()

		return nil, e.err
	}

	return e.session, nil
}

// Drop forgets the owner's in-memory session. Saved snapshots are kept.
func (r *Registry) Drop(ownerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, ownerID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *Registry) restore(ctx context.Context, s *Session) error {
	if r.carts != nil {
		cart, err := r.carts.GetCart(ctx, s.ownerID)
		if err != nil {
			return fmt.Errorf("carts.GetCart: %w", err)
		}
		s.cart.Restore(cart)
	}

	if r.wishlists != nil {
		wishlist, err := r.wishlists.GetWishlist(ctx, s.ownerID)
		if err != nil {
			return fmt.Errorf("wishlists.GetWishlist: %w", err)
		}
		s.wishlist.Restore(wishlist)
	}

	return nil
}

// persist subscribes writers for the session's stores. Store operations never
// fail, so save errors are only logged.
func (r *Registry) persist(s *Session) {
	if r.carts != nil {
		s.cart.Subscribe(func(cart domain.Cart) {
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			defer cancel()

			if err := r.carts.SaveCart(ctx, cart); err != nil {
				r.logger.Error("cart snapshot not saved", zap.String("owner_id", cart.OwnerID), zap.Error(err))
			}
		})
	}

	if r.wishlists != nil {
		s.wishlist.Subscribe(func(wishlist domain.Wishlist) {
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			defer cancel()

			if err := r.wishlists.SaveWishlist(ctx, wishlist); err != nil {
				r.logger.Error("wishlist snapshot not saved", zap.String("owner_id", wishlist.OwnerID), zap.Error(err))
			}
		})
	}
}
