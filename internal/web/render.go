// Package web renders the job board pages as HTML. ListPage and DetailPage
// implement the list and details view slots; a handler fills one through
// its view and then hands it to the Renderer.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is what the layout needs from every page model.
type Page interface {
	DocumentTitle() string
	IconsReady() bool
}

const (
	PageJobBoard   = "job_board.html"
	PageJobDetails = "job_details.html"
	PageForm       = "form.html"
)

type Renderer struct {
	SiteName string

	pages map[string]*template.Template
}

func New(siteName string) (*Renderer, error) {
	r := &Renderer{SiteName: siteName, pages: map[string]*template.Template{}}

	base, err := template.New("base").
		Funcs(template.FuncMap{"site": func() string { return r.SiteName }}).
		ParseFS(templateFS, "templates/layout.html", "templates/cards.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	for _, name := range []string{PageJobBoard, PageJobDetails, PageForm} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into w. Output is buffered so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// icons is embedded by pages to record RefreshIcons calls.
type icons struct {
	refreshed int
}

func (i *icons) RefreshIcons()    { i.refreshed++ }
func (i *icons) IconsReady() bool { return i.refreshed > 0 }
