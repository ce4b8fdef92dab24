package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type cartRepositorySuite struct {
	suite.Suite

	repo port.CartRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *cartRepositorySuite) TestSaveCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		cart      domain.Cart
		wantError string
	}{
		{
			name: "save cart with items: ok",
			cart: domain.Cart{
				OwnerID: gofakeit.UUID(),
				Items:   []domain.CartItem{randomCartItem(), randomCartItem(), randomCartItem()},
			},
		},
		{
			name: "save empty cart: ok",
			cart: domain.Cart{OwnerID: gofakeit.UUID()},
		},
		{
			name:      "save cart with empty owner ID: error",
			cart:      domain.Cart{Items: []domain.CartItem{randomCartItem()}},
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveCart(ctx, tt.cart)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			cart, err := suite.repo.GetCart(ctx, tt.cart.OwnerID)
			require.NoError(t, err)

			assertCart(t, tt.cart, cart)
		})
	}
}

func (suite *cartRepositorySuite) TestSaveCartReplacesSnapshot() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	ownerID := gofakeit.UUID()

	first := domain.Cart{OwnerID: ownerID, Items: []domain.CartItem{randomCartItem(), randomCartItem()}}
	require.NoError(t, suite.repo.SaveCart(ctx, first))

	second := domain.Cart{OwnerID: ownerID, Items: []domain.CartItem{randomCartItem()}}
	require.NoError(t, suite.repo.SaveCart(ctx, second))

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assertCart(t, second, cart)
}

func (suite *cartRepositorySuite) TestDeleteCart() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		ownerID     string
		setupItems  []domain.CartItem
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing cart: ok",
			ownerID:     gofakeit.UUID(),
			setupItems:  []domain.CartItem{randomCartItem()},
			wantDeleted: true,
		},
		{
			name:        "delete empty cart: not found",
			ownerID:     gofakeit.UUID(),
			wantDeleted: false,
		},
		{
			name:      "delete with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			if len(tt.setupItems) > 0 {
				err := suite.repo.SaveCart(ctx, domain.Cart{OwnerID: tt.ownerID, Items: tt.setupItems})
				require.NoError(t, err)
			}

			deleted, err := suite.repo.DeleteCart(ctx, tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)

			cart, err := suite.repo.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)
			assert.Empty(t, cart.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestSaveCartWithTxRollback() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	ownerID := gofakeit.UUID()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txRepo := repository.NewCartWithTx(tx)
	err = txRepo.SaveCart(ctx, domain.Cart{OwnerID: ownerID, Items: []domain.CartItem{randomCartItem()}})
	require.NoError(t, err)

	inTx, err := txRepo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, inTx.Items, 1)

	require.NoError(t, tx.Rollback(ctx))

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func (suite *cartRepositorySuite) TestGetCartEmptyOwner() {
	_, err := suite.repo.GetCart(suite.T().Context(), "")
	suite.Require().ErrorIs(err, domain.ErrOwnerIDEmpty)
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_items CASCADE")
	suite.NoError(err)
}
