package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var viewsFS embed.FS

var formTmpl *template.Template

func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	formTmpl = tmpl
	return nil
}

// LoadTemplates parses the embedded signup form. Call during startup.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// FormPage is the email signup form. It has no dynamic content.
type FormPage struct{}

func (FormPage) Render(w io.Writer) error {
	if formTmpl == nil {
		return errors.New("signup template not loaded: call views.LoadTemplates during startup")
	}
	return formTmpl.ExecuteTemplate(w, "form", nil)
}
