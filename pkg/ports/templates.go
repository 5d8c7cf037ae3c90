package ports

// TemplateStore provides read-only access to creative templates and their
// shared stylesheet.
type TemplateStore interface {
	// Check returns an error describing the available templates when name does not exist.
	Check(name string) error

	// Load reads the raw template HTML.
	Load(name string) (string, error)

	// Inline replaces the stylesheet link in html with the stylesheet and design tokens.
	Inline(html string) (string, error)

	// List returns all template names, sorted.
	List() []string
}
