package http

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

// ErrTemplateNotFound is returned when a view has no template file.
var ErrTemplateNotFound = errors.New("view: template not found")

// ViewEngine renders html/template files from a directory.
type ViewEngine struct {
	dir string
	ext string
}

// NewViewEngine creates a ViewEngine.
// dir is the templates directory (e.g. "./views"), ext is the file extension (e.g. ".html").
func NewViewEngine(dir, ext string) *ViewEngine {
	return &ViewEngine{dir: dir, ext: ext}
}

// Path returns the file a view name resolves to.
//
//	engine.Path("shop/Order_input")  // views/shop/Order_input.html
func (ve *ViewEngine) Path(name string) string {
	return filepath.Join(ve.dir, filepath.FromSlash(name)+ve.ext)
}

// Exists returns true if the view has a template file.
func (ve *ViewEngine) Exists(name string) bool {
	info, err := os.Stat(ve.Path(name))
	return err == nil && !info.IsDir()
}

// Render executes the named template into w.
func (ve *ViewEngine) Render(w io.Writer, name string, data any) error {
	if !ve.Exists(name) {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.ParseFiles(ve.Path(name))
	if err != nil {
		return fmt.Errorf("view %s: %w", name, err)
	}
	return tmpl.Execute(w, data)
}
