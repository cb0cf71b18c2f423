package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicolesequeira/simpleshop/catalog"
	"github.com/nicolesequeira/simpleshop/middleware"
	"github.com/nicolesequeira/simpleshop/session"
)

// listing is the payload the storefront renders a product page from.
func listing(s *session.Session) gin.H {
	v := s.View
	return gin.H{
		"products":    v.VisibleSlice(),
		"page":        v.Page(),
		"total_pages": v.TotalPages(),
		"count":       countLabel(s),
	}
}

// countLabel matches the "Showing X-Y of N products" line of the page.
func countLabel(s *session.Session) string {
	v := s.View
	total := v.MatchCount()
	if total == 0 {
		return "No products found"
	}

	start := (v.Page()-1)*catalog.PageSize + 1
	end := v.Page() * catalog.PageSize
	if end > total {
		end = total
	}

	if v.Category() == catalog.AllCategories {
		return fmt.Sprintf("Showing %d-%d of %d products", start, end, total)
	}
	return fmt.Sprintf("Showing %d-%d of %d products in %s", start, end, total, v.Category())
}

func getSession(c *gin.Context, sm *session.Manager) (*session.Session, bool) {
	s, err := sm.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog is not loaded yet"})
		return nil, false
	}
	return s, true
}

// GET /shop/products
func GetProducts(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, listing(s))
	}
}

// GET /shop/categories
func GetCategories(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": s.View.Categories()})
	}
}
