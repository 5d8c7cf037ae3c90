// Package sizes holds the fixed table of ad placements and resolves size ids
// to viewport dimensions.
package sizes

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/user/sparkstudio/pkg/suggest"
)

// Size describes one ad placement viewport.
type Size struct {
	ID        string
	Width     int
	Height    int
	ClassName string
}

// All is the literal accepted by ParseList to select every size.
const All = "all"

var table = []Size{
	{ID: "ig-story", Width: 1080, Height: 1920, ClassName: "size-ig-story"},
	{ID: "ig-feed", Width: 1080, Height: 1080, ClassName: "size-ig-feed"},
	{ID: "twitter", Width: 1200, Height: 675, ClassName: "size-twitter"},
	{ID: "fb-ad", Width: 1200, Height: 628, ClassName: "size-fb-ad"},
}

// sizeClassPattern matches any size class a template may carry.
var sizeClassPattern = regexp.MustCompile(`size-(ig-story|ig-feed|twitter|fb-ad)`)

// UnknownSizeError is returned when a size id is not in the table.
type UnknownSizeError struct {
	ID         string
	Suggestion string
	// Batch adds the "--sizes all" hint used by the batch generator.
	Batch bool
}

func (e *UnknownSizeError) Error() string {
	var b strings.Builder
	if e.Batch {
		fmt.Fprintf(&b, "Unknown size '%s'. Use one of: %s or --sizes all", e.ID, strings.Join(IDs(), ", "))
	} else {
		fmt.Fprintf(&b, "Unknown size: %s. Available: %s", e.ID, strings.Join(IDs(), ", "))
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

// IDs returns every size id in table order.
func IDs() []string {
	ids := make([]string, len(table))
	for i, s := range table {
		ids[i] = s.ID
	}
	return ids
}

// List returns a copy of the size table in table order.
func List() []Size {
	out := make([]Size, len(table))
	copy(out, table)
	return out
}

// Resolve looks up a size id.
func Resolve(id string) (Size, error) {
	for _, s := range table {
		if s.ID == id {
			return s, nil
		}
	}
	return Size{}, &UnknownSizeError{ID: id, Suggestion: suggest.Closest(id, IDs())}
}

// SwapClass replaces every size class in html with the class of target, so a
// single template file serves every placement.
func SwapClass(html string, target Size) string {
	return sizeClassPattern.ReplaceAllLiteralString(html, target.ClassName)
}

// ParseList parses a --sizes value. Empty input and "all" select every size;
// otherwise the value is a comma separated list, and a list holding only
// separators selects none. Every entry is validated before anything is
// returned, so one typo rejects the whole list.
func ParseList(spec string) ([]Size, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == All {
		return List(), nil
	}

	out := []Size{}
	for _, raw := range strings.Split(spec, ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		s, err := Resolve(id)
		if err != nil {
			if use, ok := err.(*UnknownSizeError); ok {
				use.Batch = true
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
