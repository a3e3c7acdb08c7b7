package validators

import (
	"fmt"
	"regexp"

	"github.com/StikhanovKonstantin/ya-note/internal/slugger"
)

// NoteForm 新建/编辑共用一个表单
type NoteForm struct {
	Title string `form:"title" binding:"required"`
	Text  string `form:"text" binding:"required"`
	Slug  string `form:"slug"`
}

// FieldError is a validation failure tied to a single form field, the
// way the form re-render reports it.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// DuplicateSlug builds the error shown when the chosen slug is taken.
func DuplicateSlug(slug string) *FieldError {
	return &FieldError{
		Field:   "slug",
		Message: slug + " already exists, choose another",
	}
}

func RequiredField(field string) *FieldError {
	return &FieldError{
		Field:   field,
		Message: "this field is required",
	}
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidateSlug 校验最终写库的 slug：长度不超上限，只允许 slug 安全字符。
// 派生出来的 slug 天然合法，主要拦手填的。
func ValidateSlug(slug string) *FieldError {
	if len(slug) > slugger.MaxLength {
		return &FieldError{
			Field:   "slug",
			Message: fmt.Sprintf("slug must be at most %d characters", slugger.MaxLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &FieldError{
			Field:   "slug",
			Message: "slug may contain only letters, numbers, underscores or hyphens",
		}
	}
	return nil
}
