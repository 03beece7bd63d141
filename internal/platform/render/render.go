// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render is the declarative rendering layer of the catalog UI.

Domain handlers build view-model structs (cards, details, selects) and hand
them to a [Renderer], which executes embedded html/template files. Every
entity field reaches the markup through html/template's contextual escaping;
nothing is concatenated into HTML by hand.

Templates:

  - page: full document (header, filter form, grid, optional detail overlay).
  - item_grid, boss_grid: count line plus the cards, the empty state or the error state.
  - item_detail, boss_detail: the body of the detail overlay.
*/
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/taibuivan/grimoire/internal/platform/ctxutil"
	"github.com/taibuivan/grimoire/internal/platform/i18n"
	"github.com/taibuivan/grimoire/pkg/slug"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// # View Models

// IconView is a resolved icon plus its accessible and fallback texts.
type IconView struct {
	Icon
	Alt      string
	Fallback string
}

// StatRow is one present stat in a detail view. Absent stats get no row.
type StatRow struct {
	LabelKey string
	Value    string
}

// Option is one entry of a select input.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Select is an enum filter or sort input.
type Select struct {
	Name     string
	LabelKey string
	Options  []Option
}

// Grid is the grid view: a count line and either cards, the empty state or
// the load-failure state.
type Grid struct {
	Lang     language.Tag
	Count    string
	Failed   bool
	ErrorKey string
	Empty    bool
	Cards    any
}

// Detail is the content of an open overlay.
type Detail struct {
	Lang      language.Tag
	Section   string
	CloseHref string
	View      any
}

// Page is a full catalog document for one section.
type Page struct {
	Lang      language.Tag
	Section   string
	Path      string
	Term      string
	SearchKey string
	Selects   []Select
	ResetHref string
	Grid      Grid
	Overlay   Overlay
	Detail    *Detail
}

// # Renderer

// Renderer executes the embedded templates.
type Renderer struct {
	templates *template.Template
	bundle    *i18n.Bundle
	logger    *slog.Logger
}

// New parses the embedded templates with the message bundle bound into the
// template functions.
func New(bundle *i18n.Bundle, logger *slog.Logger) (*Renderer, error) {
	funcMap := template.FuncMap{
		"t":     bundle.T,
		"tf":    bundle.Tf,
		"lower": strings.ToLower,
		"class": slug.From,
		"langAttr": func(tag language.Tag) string {
			base, _ := tag.Base()
			return base.String()
		},
	}

	templates, err := template.New("_root").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}

	return &Renderer{templates: templates, bundle: bundle, logger: logger}, nil
}

// Bundle returns the message bundle the templates translate with.
func (r *Renderer) Bundle() *i18n.Bundle { return r.bundle }

// Icon resolves value and attaches the alt text and the load-failure text.
func (r *Renderer) Icon(lang language.Tag, value, altKey string) IconView {
	icon := ResolveIcon(value)
	view := IconView{Icon: icon, Alt: r.bundle.T(lang, altKey)}
	if icon.Image {
		if icon.Remote {
			view.Fallback = r.bundle.T(lang, "icon.failed")
		} else {
			view.Fallback = r.bundle.Tf(lang, "icon.failed.path", value)
		}
	}
	return view
}

// Execute renders the named template into w.
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// HTML renders the named template into a buffer and writes it with status.
// On a template error only a bare 500 is written.
func (r *Renderer) HTML(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	var buffer bytes.Buffer
	if err := r.Execute(&buffer, name, data); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "template_render_failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// StaticHandler serves the embedded stylesheet. Mount it under a prefix
// with [http.StripPrefix].
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
