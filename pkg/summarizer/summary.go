// Package summarizer builds and formats the end-of-run report of a render
// batch.
package summarizer

import (
	"time"

	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/sizes"
)

// Summary describes one run.
type Summary struct {
	GeneratedAt time.Time

	Brief BriefInfo

	// Dir is the batch directory, empty for runs without one.
	Dir string

	// Sizes are the placement ids requested, in table order.
	Sizes []string

	Files []File

	Elapsed time.Duration
}

// BriefInfo is the marketing input of a batch.
type BriefInfo struct {
	Product string
	Angle   string
	Bullets []string
}

// File is one rendered creative.
type File struct {
	Template string
	Size     string
	Path     string
	Bytes    int64
}

// Dimensions returns the placement's pixel size, or 0x0 for an unknown id.
func (f File) Dimensions() (int, int) {
	s, err := sizes.Resolve(f.Size)
	if err != nil {
		return 0, 0
	}
	return s.Width, s.Height
}

// TotalBytes sums the file sizes.
func (s *Summary) TotalBytes() int64 {
	var n int64
	for _, f := range s.Files {
		n += f.Bytes
	}
	return n
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithBrief sets the brief.
func (b *Builder) WithBrief(product, angle string, bullets []string) *Builder {
	b.summary.Brief = BriefInfo{
		Product: product,
		Angle:   angle,
		Bullets: bullets,
	}
	return b
}

// WithDir sets the batch directory.
func (b *Builder) WithDir(dir string) *Builder {
	b.summary.Dir = dir
	return b
}

// WithSizes sets the requested size ids.
func (b *Builder) WithSizes(ids []string) *Builder {
	b.summary.Sizes = ids
	return b
}

// AddFile appends a rendered file. When fs is non-nil the byte size is read
// from it; a stat failure leaves Bytes at zero.
func (b *Builder) AddFile(fs ports.FileSystem, template, size, path string) *Builder {
	f := File{Template: template, Size: size, Path: path}
	if fs != nil {
		if n, err := fs.Size(path); err == nil {
			f.Bytes = n
		}
	}
	b.summary.Files = append(b.summary.Files, f)
	return b
}

// WithElapsed sets the wall time of the run.
func (b *Builder) WithElapsed(d time.Duration) *Builder {
	b.summary.Elapsed = d
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
