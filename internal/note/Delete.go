package note

import (
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteConfirm renders the confirmation page; the actual delete is a
// POST (or DELETE) to the same URL.
func (h *NoteHandler) DeleteConfirm(c *gin.Context) {
	note, ok := h.ownNote(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "delete.html", gin.H{"Note": note})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		notFound(c)
		return
	}

	deleted, err := h.svc.Notes.Delete(c, userID, c.Param("slug"))
	if err != nil {
		zap.L().Error("delete note failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}
	if !deleted {
		notFound(c)
		return
	}

	c.Redirect(http.StatusFound, "/done/")
}
