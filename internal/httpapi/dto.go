package httpapi

import (
	"github.com/nikolayk812/storefront/internal/domain"
)

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type cartItemResponse struct {
	ProductID int              `json:"product_id"`
	Title     string           `json:"title"`
	Price     string           `json:"price"`
	Currency  string           `json:"currency"`
	Image     string           `json:"image"`
	Category  categoryResponse `json:"category"`
	Quantity  int              `json:"quantity"`
	LineTotal string           `json:"line_total"`
}

type totalsResponse struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

type couponResponse struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Discount string `json:"discount"`
	Message  string `json:"message"`
}

type cartResponse struct {
	Items  []cartItemResponse `json:"items"`
	Totals totalsResponse     `json:"totals"`
	Coupon *couponResponse    `json:"coupon,omitempty"`
}

type wishlistItemResponse struct {
	ProductID int              `json:"product_id"`
	Title     string           `json:"title"`
	Price     string           `json:"price"`
	Currency  string           `json:"currency"`
	Image     string           `json:"image"`
	Category  categoryResponse `json:"category"`
}

type orderResponse struct {
	ID       string             `json:"id"`
	Status   string             `json:"status"`
	Items    []cartItemResponse `json:"items"`
	Totals   totalsResponse     `json:"totals"`
	Coupon   string             `json:"coupon,omitempty"`
	PlacedAt string             `json:"placed_at"`
}

type addItemRequest struct {
	ProductID int  `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// quantity defaults to one when the field is absent.
func (r addItemRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type couponRequest struct {
	Code string `json:"code"`
}

type checkoutRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Notes     string `json:"notes"`
}

func (r checkoutRequest) customer() domain.Customer {
	return domain.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   r.Country,
		Notes:     r.Notes,
	}
}

func mapCartItems(items []domain.CartItem) []cartItemResponse {
	out := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, cartItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price.Amount.StringFixed(2),
			Currency:  item.Price.Currency.String(),
			Image:     item.ImageRef,
			Category:  categoryResponse{ID: item.Category.ID, Name: item.Category.Name},
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}
	return out
}

func mapTotals(t domain.Totals) totalsResponse {
	return totalsResponse{
		Subtotal: t.Subtotal.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Shipping: t.Shipping.StringFixed(2),
		Discount: t.Discount.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}

func mapCoupon(r domain.CouponResult) couponResponse {
	return couponResponse{
		Code:     r.Code,
		Valid:    r.Valid,
		Discount: r.Discount.StringFixed(2),
		Message:  r.Message,
	}
}

func mapWishlistItems(items []domain.WishlistItem) []wishlistItemResponse {
	out := make([]wishlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, wishlistItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price.Amount.StringFixed(2),
			Currency:  item.Price.Currency.String(),
			Image:     item.ImageRef,
			Category:  categoryResponse{ID: item.Category.ID, Name: item.Category.Name},
		})
	}
	return out
}
