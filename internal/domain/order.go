package domain

import "time"

const OrderStatusPlaced = "Order Placed"

type Order struct {
	ID       string
	OwnerID  string
	Items    []CartItem
	Totals   Totals
	Coupon   string
	Customer Customer
	Status   string
	PlacedAt time.Time
}

// Customer holds the contact and shipping details collected at checkout.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Notes     string
}
