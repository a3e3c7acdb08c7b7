package note

import (
	"errors"
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/store"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *NoteHandler) Detail(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		notFound(c)
		return
	}

	note, err := h.svc.Notes.FindBySlug(c, userID, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		zap.L().Error("find note failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.HTML(http.StatusOK, "detail.html", gin.H{"Note": note})
}
