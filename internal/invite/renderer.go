package invite

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"time"

	"guestPass/internal/lib/logger/sl"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"formatDate": FormatDate,
	"formatTime": FormatTime,
	"dressCode":  DressCodeLabel,
	"daysUntil":  DaysUntil,
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	},
}

// Renderer selects one of the embedded layout variants and renders it with a
// normalized View. A failing variant is masked by a render of the default
// variant: the invitation page must always come out.
type Renderer struct {
	log  *slog.Logger
	tmpl *template.Template
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invitation templates: %w", err)
	}

	return &Renderer{log: log, tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, p Params) error {
	return r.render(w, p, time.Now())
}

func (r *Renderer) render(w io.Writer, p Params, now time.Time) error {
	view := Resolve(p, now)

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, view.Template+".html", view); err != nil {
		r.log.Error("invitation render failed, falling back to default layout",
			slog.String("template", view.Template), sl.Err(err))

		buf.Reset()
		view.Template = DefaultTemplate
		if err := r.tmpl.ExecuteTemplate(&buf, DefaultTemplate+".html", view); err != nil {
			return fmt.Errorf("failed to render invitation: %w", err)
		}
	}

	_, err := buf.WriteTo(w)
	return err
}
