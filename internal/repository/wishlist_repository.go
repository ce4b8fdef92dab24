package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type wishlistRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewWishlist(pool *pgxpool.Pool) port.WishlistRepository {
	return &wishlistRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *wishlistRepository) GetWishlist(ctx context.Context, ownerID string) (domain.Wishlist, error) {
	if ownerID == "" {
		return domain.Wishlist{}, domain.ErrOwnerIDEmpty
	}

	rows, err := r.q.GetWishlist(ctx, ownerID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("q.GetWishlist: %w", err)
	}

	wishlist := domain.Wishlist{OwnerID: ownerID}
	for _, row := range rows {
		parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
		if err != nil {
			return domain.Wishlist{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
		}

		wishlist.Items = append(wishlist.Items, domain.WishlistItem{
			ProductID: int(row.ProductID),
			Title:     row.Title,
			Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			ImageRef:  row.ImageRef,
			Category:  domain.Category{ID: int(row.CategoryID), Name: row.CategoryName},
			CreatedAt: row.CreatedAt,
		})
	}

	return wishlist, nil
}

func (r *wishlistRepository) SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error {
	if wishlist.OwnerID == "" {
		return domain.ErrOwnerIDEmpty
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteWishlist(ctx, wishlist.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteWishlist: %w", err)
		}

		for i, item := range wishlist.Items {
			err := q.AddWishlistItem(ctx, db.AddWishlistItemParams{
				OwnerID:       wishlist.OwnerID,
				ProductID:     int32(item.ProductID),
				Title:         item.Title,
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
				ImageRef:      item.ImageRef,
				CategoryID:    int32(item.Category.ID),
				CategoryName:  item.Category.Name,
				Position:      int32(i),
				CreatedAt:     item.CreatedAt,
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.AddWishlistItem[%d]: %w", item.ProductID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}
