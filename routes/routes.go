package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/nicolesequeira/simpleshop/controllers/cart"
	"github.com/nicolesequeira/simpleshop/session"
)

// SetupRoutes is the single entry-point that wires up the shop and cart
// route groups.
func SetupRoutes(r *gin.Engine, sm *session.Manager, hub *cartControllers.Hub) {
	SetupShopRoutes(r, sm)

	SetupCartRoutes(r, sm, hub)
}
