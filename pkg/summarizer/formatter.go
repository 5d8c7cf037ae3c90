package summarizer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// Option configures a formatter.
type Option func(*options)

type options struct {
	translate func(string) string
	version   string
}

// WithTranslator sets the function used to translate labels.
func WithTranslator(t func(string) string) Option {
	return func(o *options) {
		o.translate = t
	}
}

// WithVersion adds the tool version to the report footer.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

func newOptions(opts []Option) options {
	o := options{translate: func(s string) string { return s }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewTextFormatter returns the console formatter.
func NewTextFormatter(opts ...Option) Formatter {
	o := newOptions(opts)
	t := o.translate

	return FormatFunc(func(s *Summary) string {
		var b strings.Builder

		fmt.Fprintf(&b, "%s: %d\n", t("Creatives"), len(s.Files))
		if s.Brief.Product != "" {
			fmt.Fprintf(&b, "%s: %s\n", t("Product"), s.Brief.Product)
		}
		if s.Brief.Angle != "" {
			fmt.Fprintf(&b, "%s: %s\n", t("Angle"), s.Brief.Angle)
		}
		if len(s.Sizes) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", t("Sizes"), strings.Join(s.Sizes, ", "))
		}
		if s.Dir != "" {
			fmt.Fprintf(&b, "%s: %s\n", t("Directory"), s.Dir)
		}

		width := 0
		for _, f := range s.Files {
			if n := len(filepath.Base(f.Path)); n > width {
				width = n
			}
		}
		for _, f := range s.Files {
			w, h := f.Dimensions()
			fmt.Fprintf(&b, "  %-*s  %4dx%-4d  %s\n", width, filepath.Base(f.Path), w, h, formatBytes(f.Bytes))
		}

		fmt.Fprintf(&b, "%s: %s", t("Total"), formatBytes(s.TotalBytes()))
		if s.Elapsed > 0 {
			fmt.Fprintf(&b, " (%s)", formatElapsed(s.Elapsed))
		}
		b.WriteString("\n")
		return b.String()
	})
}

// NewMarkdownFormatter returns a Markdown report formatter.
func NewMarkdownFormatter(opts ...Option) Formatter {
	o := newOptions(opts)
	t := o.translate

	return FormatFunc(func(s *Summary) string {
		var b strings.Builder

		fmt.Fprintf(&b, "# %s\n\n", t("Creative Batch Summary"))

		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
		row := func(label, value string) {
			if value != "" {
				fmt.Fprintf(&b, "| %s | %s |\n", t(label), escapeCell(value))
			}
		}
		row("Product", s.Brief.Product)
		row("Angle", s.Brief.Angle)
		row("Bullets", strings.Join(s.Brief.Bullets, " • "))
		row("Sizes", strings.Join(s.Sizes, ", "))
		row("Directory", s.Dir)
		row("Creatives", fmt.Sprintf("%d", len(s.Files)))
		row("Total Size", formatBytes(s.TotalBytes()))
		if s.Elapsed > 0 {
			row("Elapsed", formatElapsed(s.Elapsed))
		}

		if len(s.Files) > 0 {
			fmt.Fprintf(&b, "\n## %s\n\n", t("Files"))
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n|---|---|---|---|---|\n",
				t("Template"), t("Size"), t("Dimensions"), t("File"), t("Bytes"))
			for _, f := range s.Files {
				w, h := f.Dimensions()
				fmt.Fprintf(&b, "| %s | %s | %dx%d | %s | %s |\n",
					f.Template, f.Size, w, h, escapeCell(filepath.Base(f.Path)), formatBytes(f.Bytes))
			}
		}

		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
		if o.version != "" {
			fmt.Fprintf(&b, " · sparkstudio %s", o.version)
		}
		b.WriteString("\n")
		return b.String()
	})
}

// New returns the formatter for name ("text" or "markdown").
func New(name string, opts ...Option) (Formatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(opts...), nil
	case "markdown", "md":
		return NewMarkdownFormatter(opts...), nil
	default:
		return nil, fmt.Errorf("unknown summary format %q (use text or markdown)", name)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	case n < unit*unit*unit:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/(unit*unit*unit))
	}
}

func formatElapsed(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
