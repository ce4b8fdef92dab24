package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/checkout"
	"go.uber.org/zap"
)

func (h *Handler) GetCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, cartBody(s))
}

func (h *Handler) AddCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	qty := req.quantity()

	product, err := s.AddFromCatalog(c.Request.Context(), req.ProductID, qty)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info("product added to cart",
		zap.String(ownerIDKey, s.OwnerID()),
		zap.Int("product_id", product.ID),
		zap.Int("quantity", qty))

	c.JSON(http.StatusOK, cartBody(s))
}

// SetCartItemQuantity ignores quantities below one, like the store does.
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	s.Cart().SetQuantity(id, req.Quantity)

	c.JSON(http.StatusOK, cartBody(s))
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart().RemoveItem(id)

	c.JSON(http.StatusOK, cartBody(s))
}

func (h *Handler) ClearCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart().Clear()

	c.JSON(http.StatusOK, cartBody(s))
}

func (h *Handler) GetTotals(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, mapTotals(s.Totals()))
}

func (h *Handler) ApplyCoupon(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result := s.ApplyCoupon(req.Code)

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{
		"coupon": mapCoupon(result),
		"totals": mapTotals(s.Totals()),
	})
}

func (h *Handler) RemoveCoupon(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.RemoveCoupon()

	c.JSON(http.StatusOK, cartBody(s))
}

func (h *Handler) Checkout(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := s.PlaceOrder(c.Request.Context(), req.customer())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderResponse{
		ID:       order.ID,
		Status:   order.Status,
		Items:    mapCartItems(order.Items),
		Totals:   mapTotals(order.Totals),
		Coupon:   order.Coupon,
		PlacedAt: order.PlacedAt.UTC().Format(time.RFC3339),
	})
}

func cartBody(s *checkout.Session) cartResponse {
	cart, totals := s.Summary()

	body := cartResponse{
		Items:  mapCartItems(cart.Items),
		Totals: mapTotals(totals),
	}

	if applied, ok := s.AppliedCoupon(); ok {
		coupon := mapCoupon(applied)
		body.Coupon = &coupon
	}

	return body
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}

	return id, true
}
