package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/nicolesequeira/simpleshop/controllers/product"
	"github.com/nicolesequeira/simpleshop/session"
)

func SetupShopRoutes(r *gin.Engine, sm *session.Manager) {
	shop := r.Group("/shop")
	{
		shop.GET("/products", productcontroller.GetProducts(sm))
		shop.GET("/categories", productcontroller.GetCategories(sm))

		view := shop.Group("/view")
		{
			view.PUT("/category", productcontroller.SetCategory(sm))
			view.PUT("/search", productcontroller.SetSearchTerm(sm))
			view.PUT("/sort", productcontroller.SetSortMode(sm))
			view.PUT("/page", productcontroller.SetPage(sm))
		}
	}
}
