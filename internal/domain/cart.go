package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 9999

type Category struct {
	ID   int
	Name string
}

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem is one line of a cart. Price is captured when the product is
// added and never refreshed from the catalog afterwards.
type CartItem struct {
	ProductID int
	Title     string
	Price     Money
	ImageRef  string
	Category  Category
	Quantity  int

	CreatedAt time.Time
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity).Amount
}

// Subtotal is the sum of unit price times quantity over all items.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.LineTotal())
	}

	return sum
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

type Wishlist struct {
	OwnerID string
	Items   []WishlistItem
}

type WishlistItem struct {
	ProductID int
	Title     string
	Price     Money
	ImageRef  string
	Category  Category

	CreatedAt time.Time
}
