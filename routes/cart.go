package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/nicolesequeira/simpleshop/controllers/cart"
	"github.com/nicolesequeira/simpleshop/session"
)

func SetupCartRoutes(r *gin.Engine, sm *session.Manager, hub *cartControllers.Hub) {
	user := r.Group("/user")
	{
		user.GET("/cart", cartControllers.GetCart(sm))
		user.POST("/cart", cartControllers.AddCartItem(sm, hub))
		user.DELETE("/cart/:product_id", cartControllers.DeleteCartItem(sm, hub))
		user.DELETE("/cart", cartControllers.ClearCart(sm, hub))
		user.POST("/checkout", cartControllers.Checkout(sm, hub))
	}

	r.GET("/ws/cart", hub.CartWebSocketHandler())
}
