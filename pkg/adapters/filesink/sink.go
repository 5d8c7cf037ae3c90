// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"path/filepath"

	"github.com/user/sparkstudio/pkg/ports"
)

// Sink saves debug output to files under a base directory.
//
//	<baseDir>/<name>.html       resolved HTML handed to the browser
//	<baseDir>/<name>.vars.json  variable set used for the render
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveHTML writes <baseDir>/<name>.html.
func (s *Sink) SaveHTML(name string, html []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, name+".html"), html)
}

// SaveVars writes <baseDir>/<name>.vars.json.
func (s *Sink) SaveVars(name string, data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, name+".vars.json"), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
