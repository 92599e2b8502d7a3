package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"

	"kegerator-server/internal/modules/taps/types"
)

var tapsTmpl *template.Template

// loadTemplatesFromFS loads the tap templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	tapsTmpl = tmpl
	return nil
}

// LoadTemplates loads embedded tap templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// TapsPage is the kegerator status page for the three taps.
type TapsPage struct {
	Taps types.DisplaySet
}

func (p TapsPage) Render(w io.Writer) error {
	if tapsTmpl == nil {
		return errors.New("taps template not loaded: call views.LoadTemplates during startup")
	}
	return tapsTmpl.ExecuteTemplate(w, "taps", p.Taps)
}
