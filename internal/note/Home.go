package note

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *NoteHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *NoteHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", nil)
}
