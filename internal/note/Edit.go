package note

import (
	"errors"
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/models"
	"github.com/StikhanovKonstantin/ya-note/internal/slugger"
	"github.com/StikhanovKonstantin/ya-note/internal/store"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"
	"github.com/StikhanovKonstantin/ya-note/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (h *NoteHandler) EditForm(c *gin.Context) {
	note, ok := h.ownNote(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "form.html", formData{
		Heading: "Edit note",
		Action:  "/edit/" + note.Slug + "/",
		Title:   note.Title,
		Text:    note.Text,
		Slug:    note.Slug,
	})
}

func (h *NoteHandler) Edit(c *gin.Context) {
	note, ok := h.ownNote(c)
	if !ok {
		return
	}

	var form validators.NoteForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderEditForm(c, note, form, validators.RequiredField(missingField(form)))
		return
	}

	slug := slugger.Derive(form.Slug, form.Title)
	if fieldErr := validators.ValidateSlug(slug); fieldErr != nil {
		h.renderEditForm(c, note, form, fieldErr)
		return
	}

	// 唯一性检查要排除当前这条
	taken, err := h.svc.Notes.SlugExists(c, slug, note.ID)
	if err != nil {
		zap.L().Error("slug lookup failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}
	if taken {
		h.renderEditForm(c, note, form, validators.DuplicateSlug(slug))
		return
	}

	note.Title = form.Title
	note.Text = form.Text
	note.Slug = slug
	if err := h.svc.Notes.Update(c, note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			h.renderEditForm(c, note, form, validators.DuplicateSlug(slug))
			return
		}
		zap.L().Error("update note failed", zap.Uint("note_id", note.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.Redirect(http.StatusFound, "/done/")
}

// ownNote loads the note at :slug for the current user, replying 404
// when it does not exist or belongs to someone else.
func (h *NoteHandler) ownNote(c *gin.Context) (*models.Note, bool) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		notFound(c)
		return nil, false
	}

	note, err := h.svc.Notes.FindBySlug(c, userID, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return nil, false
		}
		zap.L().Error("find note failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return nil, false
	}
	return note, true
}

func (h *NoteHandler) renderEditForm(c *gin.Context, note *models.Note, form validators.NoteForm, fieldErr *validators.FieldError) {
	c.HTML(http.StatusOK, "form.html", formData{
		Heading: "Edit note",
		Action:  "/edit/" + note.Slug + "/",
		Title:   form.Title,
		Text:    form.Text,
		Slug:    form.Slug,
		Errors:  []*validators.FieldError{fieldErr},
	})
}
