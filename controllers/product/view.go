package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicolesequeira/simpleshop/catalog"
	"github.com/nicolesequeira/simpleshop/session"
)

type categoryInput struct {
	Category string `json:"category" binding:"required"`
}

type searchInput struct {
	Term string `json:"term"`
}

type sortInput struct {
	Mode string `json:"mode" binding:"required"`
}

type pageInput struct {
	Page int `json:"page" binding:"required"`
}

// PUT /shop/view/category
func SetCategory(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.View.SetCategory(input.Category)
		c.JSON(http.StatusOK, listing(s))
	}
}

// PUT /shop/view/search
func SetSearchTerm(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		var input searchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.View.SetSearchTerm(input.Term)
		c.JSON(http.StatusOK, listing(s))
	}
}

// PUT /shop/view/sort
func SetSortMode(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		var input sortInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		mode, err := catalog.ParseSortMode(input.Mode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort mode"})
			return
		}

		s.View.SetSortMode(mode)
		c.JSON(http.StatusOK, listing(s))
	}
}

// PUT /shop/view/page
// Out-of-range pages are ignored, same as a disabled previous/next button.
func SetPage(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := getSession(c, sm)
		if !ok {
			return
		}

		var input pageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.View.SetPage(input.Page)
		c.JSON(http.StatusOK, listing(s))
	}
}
