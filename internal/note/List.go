package note

import (
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// List 只返回当前用户自己的笔记
func (h *NoteHandler) List(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		notFound(c)
		return
	}

	notes, err := h.svc.Notes.ListByAuthor(c, userID)
	if err != nil {
		zap.L().Error("list notes failed", zap.Uint("user_id", userID), zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.HTML(http.StatusOK, "list.html", gin.H{
		"Username": utils.GetUsername(c),
		"Notes":    notes,
	})
}
