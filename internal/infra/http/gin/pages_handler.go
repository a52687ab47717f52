package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/asghar-0017/aparntment-frontend/internal/app/content"
)

// PagesHandler serves the structured marketing page content.
type PagesHandler struct{}

func (h PagesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": content.Slugs()})
}

func (h PagesHandler) Get(c *gin.Context) {
	page, err := content.Lookup(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}
