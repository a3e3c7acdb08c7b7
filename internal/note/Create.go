package note

import (
	"errors"
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/models"
	"github.com/StikhanovKonstantin/ya-note/internal/slugger"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"
	"github.com/StikhanovKonstantin/ya-note/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (h *NoteHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", formData{
		Heading: "Add note",
		Action:  "/add/",
	})
}

func (h *NoteHandler) Add(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		notFound(c)
		return
	}

	var form validators.NoteForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderAddForm(c, form, validators.RequiredField(missingField(form)))
		return
	}

	// slug 留空时从标题派生
	slug := slugger.Derive(form.Slug, form.Title)
	if fieldErr := validators.ValidateSlug(slug); fieldErr != nil {
		h.renderAddForm(c, form, fieldErr)
		return
	}

	taken, err := h.svc.Notes.SlugExists(c, slug, 0)
	if err != nil {
		zap.L().Error("slug lookup failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}
	if taken {
		h.renderAddForm(c, form, validators.DuplicateSlug(slug))
		return
	}

	note := models.Note{
		AuthorID: userID,
		Title:    form.Title,
		Text:     form.Text,
		Slug:     slug,
	}
	if err := h.svc.Notes.Create(c, &note); err != nil {
		// 并发下预检查可能漏掉，唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			h.renderAddForm(c, form, validators.DuplicateSlug(slug))
			return
		}
		zap.L().Error("create note failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.Redirect(http.StatusFound, "/done/")
}

func (h *NoteHandler) renderAddForm(c *gin.Context, form validators.NoteForm, fieldErr *validators.FieldError) {
	c.HTML(http.StatusOK, "form.html", formData{
		Heading: "Add note",
		Action:  "/add/",
		Title:   form.Title,
		Text:    form.Text,
		Slug:    form.Slug,
		Errors:  []*validators.FieldError{fieldErr},
	})
}

func missingField(form validators.NoteForm) string {
	if form.Title == "" {
		return "title"
	}
	return "text"
}
