package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_cart_items.up.sql",
			"../migrations/02_wishlist_items.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		ProductID: gofakeit.IntRange(1, 1_000_000),
		Title:     gofakeit.ProductName(),
		Price:     randomMoney(),
		ImageRef:  gofakeit.URL(),
		Category:  randomCategory(),
		Quantity:  gofakeit.IntRange(1, 20),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func randomWishlistItem() domain.WishlistItem {
	return domain.WishlistItem{
		ProductID: gofakeit.IntRange(1, 1_000_000),
		Title:     gofakeit.ProductName(),
		Price:     randomMoney(),
		ImageRef:  gofakeit.URL(),
		Category:  randomCategory(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func randomCategory() domain.Category {
	return domain.Category{
		ID:   gofakeit.IntRange(1, 50),
		Name: gofakeit.ProductCategory(),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

var compareOpts = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
	cmp.Comparer(func(x, y time.Time) bool {
		return x.Equal(y)
	}),
	cmpopts.EquateEmpty(),
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	diff := cmp.Diff(expected, actual, compareOpts)
	assert.Empty(t, diff)
}

func assertWishlist(t *testing.T, expected, actual domain.Wishlist) {
	t.Helper()

	diff := cmp.Diff(expected, actual, compareOpts)
	assert.Empty(t, diff)
}
