package ports

// DebugSink abstracts debug output for intermediate results.
// It keeps the fully resolved HTML of a render so layout problems can be
// inspected in a regular browser.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveHTML saves the resolved HTML handed to the browser under name.
	SaveHTML(name string, html []byte) error

	// SaveVars saves the variable set used for a render as JSON.
	SaveVars(name string, data []byte) error
}
