package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetWishlist(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": mapWishlistItems(s.Wishlist().Items())})
}

func (h *Handler) ToggleWishlist(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}

	in, err := s.ToggleWishlist(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"in_wishlist": in,
		"items":       mapWishlistItems(s.Wishlist().Items()),
	})
}

func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Wishlist().Remove(id)

	c.JSON(http.StatusOK, gin.H{"items": mapWishlistItems(s.Wishlist().Items())})
}
