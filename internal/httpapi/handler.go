// Package httpapi exposes the shopper's cart, wishlist and checkout over JSON.
package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

const ownerIDKey = "owner_id"

type Handler struct {
	sessions *checkout.Registry
	auth     port.Authenticator
	logger   *zap.Logger
}

func NewHandler(sessions *checkout.Registry, auth port.Authenticator, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		auth:     auth,
		logger:   logger,
	}
}

// API builds the router. All routes under prefix require a bearer token.
func API(prefix string, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(h.logger), gin.Recovery())
	r.GET("/ping", healthCheck)

	v1 := r.Group(prefix)
	v1.Use(h.authenticate)
	{
		v1.GET("/cart", h.GetCart)
		v1.POST("/cart/items", h.AddCartItem)
		v1.PUT("/cart/items/:id", h.SetCartItemQuantity)
		v1.DELETE("/cart/items/:id", h.RemoveCartItem)
		v1.DELETE("/cart", h.ClearCart)
		v1.GET("/cart/totals", h.GetTotals)
		v1.POST("/cart/coupon", h.ApplyCoupon)
		v1.DELETE("/cart/coupon", h.RemoveCoupon)
		v1.POST("/checkout", h.Checkout)

		v1.GET("/wishlist", h.GetWishlist)
		v1.POST("/wishlist/:id/toggle", h.ToggleWishlist)
		v1.DELETE("/wishlist/:id", h.RemoveWishlistItem)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) authenticate(c *gin.Context) {
	profile, err := h.auth.Authenticate(c.GetHeader("Authorization"))
	if err != nil {
		h.logger.Debug("request not authenticated", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Set(ownerIDKey, profile.ID)
	c.Next()
}

func (h *Handler) session(c *gin.Context) (*checkout.Session, bool) {
	s, err := h.sessions.Session(c.Request.Context(), c.GetString(ownerIDKey))
	if err != nil {
		h.logger.Error("session unavailable", zap.String(ownerIDKey, c.GetString(ownerIDKey)), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
		return nil, false
	}

	return s, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	var verr *checkout.ValidationError

	switch {
	case errors.As(err, &verr):
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			fields[f.Field] = f.Message
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid customer details", "fields": fields})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Quantity must be between 1 and %d", domain.MaxQuantity)})
	case errors.Is(err, domain.ErrProductNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
