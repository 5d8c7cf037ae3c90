// Package templates loads ad-creative HTML templates and turns them into the
// final document handed to the browser: design tokens and the shared
// stylesheet are inlined and {{TOKEN}} placeholders are substituted.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/sparkstudio/pkg/suggest"
)

const (
	templatesDir   = "templates"
	templateExt    = ".html"
	stylesheetFile = "design-system.css"
	tokensFile     = "design-tokens.json"
)

//go:embed assets
var embedded embed.FS

// TemplateNotFoundError is returned when a template name has no file in the store.
type TemplateNotFoundError struct {
	Name       string
	Path       string
	Available  []string
	Suggestion string
}

func (e *TemplateNotFoundError) Error() string {
	msg := fmt.Sprintf("Template not found: %s", e.Path)
	if len(e.Available) > 0 {
		msg += ". Available: " + strings.Join(e.Available, ", ")
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Store reads templates, the shared stylesheet and the design tokens from a
// directory tree laid out as:
//
//	<root>/design-system.css
//	<root>/design-tokens.json
//	<root>/templates/<name>.html
//
// Nothing is cached: every Load reads the files again.
type Store struct {
	fsys fs.FS
	root string // for error messages only
}

// NewStore creates a store over an arbitrary fs.FS.
func NewStore(fsys fs.FS, root string) *Store {
	return &Store{fsys: fsys, root: root}
}

// NewDirStore creates a store over a directory on disk.
func NewDirStore(dir string) *Store {
	return NewStore(os.DirFS(dir), dir)
}

// NewEmbeddedStore creates a store over the built-in template set.
func NewEmbeddedStore() *Store {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return NewStore(sub, "(built-in)")
}

// Root returns the store location used in messages.
func (s *Store) Root() string {
	return s.root
}

// Path returns the display path of a template.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, templatesDir, name+templateExt)
}

// Exists reports whether a template with the given name exists.
func (s *Store) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := fs.Stat(s.fsys, path.Join(templatesDir, name+templateExt))
	return err == nil && !info.IsDir()
}

// Check returns a *TemplateNotFoundError when the template does not exist.
func (s *Store) Check(name string) error {
	if s.Exists(name) {
		return nil
	}
	available := s.List()
	return &TemplateNotFoundError{
		Name:       name,
		Path:       s.Path(name),
		Available:  available,
		Suggestion: suggest.Closest(name, available),
	}
}

// List returns the names of all templates, sorted.
func (s *Store) List() []string {
	entries, err := fs.ReadDir(s.fsys, templatesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), templateExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), templateExt))
	}
	sort.Strings(names)
	return names
}

// Load reads the raw template HTML.
func (s *Store) Load(name string) (string, error) {
	if err := s.Check(name); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, path.Join(templatesDir, name+templateExt))
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return string(data), nil
}

// Stylesheet reads the shared design-system stylesheet.
func (s *Store) Stylesheet() (string, error) {
	data, err := fs.ReadFile(s.fsys, stylesheetFile)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", stylesheetFile, err)
	}
	return string(data), nil
}

// Tokens reads design-tokens.json. A missing file is not an error and
// yields an empty token set.
func (s *Store) Tokens() (Tokens, error) {
	data, err := fs.ReadFile(s.fsys, tokensFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Tokens{}, nil
	}
	if err != nil {
		return Tokens{}, fmt.Errorf("read %s: %w", tokensFile, err)
	}
	return ParseTokens(data)
}

// validName rejects names that would escape the templates directory.
func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && name != "." && name != ".."
}
