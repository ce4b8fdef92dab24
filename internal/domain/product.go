package domain

// Product is a catalog record as returned by the product API.
type Product struct {
	ID       int
	Title    string
	Price    Money
	Images   []string
	Category Category
}

// ImageRef is the first image of the product, or empty.
func (p Product) ImageRef() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

func (p Product) CartItem(qty int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		ImageRef:  p.ImageRef(),
		Category:  p.Category,
		Quantity:  qty,
	}
}

func (p Product) WishlistItem() WishlistItem {
	return WishlistItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		ImageRef:  p.ImageRef(),
		Category:  p.Category,
	}
}

type Profile struct {
	ID        string
	Name      string
	FirstName string
	LastName  string
	Email     string
}
