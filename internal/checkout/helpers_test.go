package checkout_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/coupon"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/totals"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var testNow = time.Date(2025, time.May, 10, 9, 30, 0, 0, time.UTC)

type fakeCatalog struct {
	products map[int]domain.Product
}

func newFakeCatalog(products ...domain.Product) *fakeCatalog {
	c := &fakeCatalog{products: make(map[int]domain.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *fakeCatalog) GetProduct(_ context.Context, id int) (domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

type memoryCartRepo struct {
	mu      sync.Mutex
	carts   map[string]domain.Cart
	saves   int
	failGet bool
	failSet bool

	// GetCart for blockOwner waits until release is closed.
	blockOwner string
	release    chan struct{}
	started    chan struct{}
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{carts: make(map[string]domain.Cart)}
}

func (r *memoryCartRepo) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID != "" && ownerID == r.blockOwner {
		close(r.started)
		<-r.release
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failGet {
		return domain.Cart{}, errors.New("connection refused")
	}
	cart := r.carts[ownerID]
	cart.OwnerID = ownerID
	return cart, nil
}

func (r *memoryCartRepo) SaveCart(_ context.Context, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failSet {
		return errors.New("connection refused")
	}
	r.saves++
	r.carts[cart.OwnerID] = cart
	return nil
}

func (r *memoryCartRepo) DeleteCart(_ context.Context, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.carts[ownerID]
	delete(r.carts, ownerID)
	return ok, nil
}

type memoryWishlistRepo struct {
	mu        sync.Mutex
	wishlists map[string]domain.Wishlist
}

func newMemoryWishlistRepo() *memoryWishlistRepo {
	return &memoryWishlistRepo{wishlists: make(map[string]domain.Wishlist)}
}

func (r *memoryWishlistRepo) GetWishlist(_ context.Context, ownerID string) (domain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.wishlists[ownerID]
	w.OwnerID = ownerID
	return w, nil
}

func (r *memoryWishlistRepo) SaveWishlist(_ context.Context, w domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wishlists[w.OwnerID] = w
	return nil
}

func product(id int, price string) domain.Product {
	return domain.Product{
		ID:       id,
		Title:    fmt.Sprintf("Product %d", id),
		Price:    domain.NewMoney(decimal.RequireFromString(price), currency.USD),
		Images:   []string{fmt.Sprintf("https://img.example/%d.png", id)},
		Category: domain.Category{ID: 1, Name: "Clothes"},
	}
}

func testDeps(catalog *fakeCatalog, logger *zap.Logger) checkout.Deps {
	now := func() time.Time { return testNow }

	return checkout.Deps{
		Coupons:    coupon.NewEvaluator(coupon.DefaultCatalog(), coupon.WithClock(now)),
		Calculator: totals.NewCalculator(totals.DefaultTaxRate),
		Catalog:    catalog,
		Now:        now,
		Logger:     logger,
	}
}

func validCustomer() domain.Customer {
	return domain.Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+44 20 0000 0000",
		Address:   "12 St James's Square",
		City:      "London",
		State:     "London",
		ZipCode:   "SW1Y 4JH",
		Country:   "GB",
	}
}
