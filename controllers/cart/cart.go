package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nicolesequeira/simpleshop/cart"
	"github.com/nicolesequeira/simpleshop/middleware"
	"github.com/nicolesequeira/simpleshop/session"
)

type addItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

func getSession(c *gin.Context, sm *session.Manager) (*session.Session, bool) {
	s, err := sm.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog is not loaded yet"})
		return nil, false
	}
	return s, true
}

func cartPayload(s *session.Session) gin.H {
	return gin.H{
		"items":      s.Cart.Lines(),
		"total":      s.Cart.Total(),
		"item_count": s.Cart.ItemCount(),
	}
}

// GET /user/cart
func GetCart(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartPayload(s))
	}
}

// POST /user/cart
func AddCartItem(sm *session.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.Cart.Add(input.ProductID, s.View); err != nil {
			if errors.Is(err, cart.ErrUnknownProduct) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		hub.Broadcast(s.ID, s.Cart.ItemCount())
		c.JSON(http.StatusCreated, cartPayload(s))
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(sm *session.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		// Removing an id that is not in the cart is fine.
		if err := s.Cart.Remove(productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		hub.Broadcast(s.ID, s.Cart.ItemCount())
		c.JSON(http.StatusOK, cartPayload(s))
	}
}

// DELETE /user/cart
func ClearCart(sm *session.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		if err := s.Cart.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		hub.Broadcast(s.ID, 0)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /user/checkout
func Checkout(sm *session.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		total, err := s.Cart.Checkout()
		if err != nil {
			if errors.Is(err, cart.ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}

		hub.Broadcast(s.ID, 0)
		c.JSON(http.StatusOK, gin.H{
			"message": "Thank you for your purchase! This is a demo - no actual payment processed.",
			"total":   total,
		})
	}
}
