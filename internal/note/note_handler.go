package note

import (
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/svc"
	"github.com/StikhanovKonstantin/ya-note/internal/validators"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	svc *svc.ServiceContext
}

func NewNoteHandler(svc *svc.ServiceContext) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// formData 是 form.html 的渲染数据，新建和编辑共用
type formData struct {
	Heading string
	Action  string
	Title   string
	Text    string
	Slug    string
	Errors  []*validators.FieldError
}

// 故意用 404 而不是 403：不向非作者泄露笔记是否存在
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
	c.Abort()
}
