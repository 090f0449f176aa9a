package server

import (
	"html/template"
	"io"

	"cafepos/web"

	"github.com/labstack/echo/v4"
)

// TemplateRendererはhtml/templateをechoに繋ぐ薄いアダプタ
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: t}, nil
}

// Renderはテンプレート名（拡張子なし）で描画する
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name+".html", data)
}
