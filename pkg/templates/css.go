package templates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Tokens is the subset of design-tokens.json the renderer uses.
type Tokens struct {
	CSSVariables map[string]string `json:"cssVariables"`
}

// ParseTokens decodes a design token file.
func ParseTokens(data []byte) (Tokens, error) {
	var t Tokens
	if err := json.Unmarshal(data, &t); err != nil {
		return Tokens{}, fmt.Errorf("parse design tokens: %w", err)
	}
	return t, nil
}

// RootBlock renders the tokens as a :root custom property block.
// Variables are emitted in name order so output is stable.
func (t Tokens) RootBlock() string {
	if len(t.CSSVariables) == 0 {
		return ""
	}
	keys := make([]string, 0, len(t.CSSVariables))
	for k := range t.CSSVariables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root\n{\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, t.CSSVariables[k])
	}
	b.WriteString("}\n")
	return b.String()
}

var stylesheetLink = regexp.MustCompile(`<link rel="stylesheet" href="\.\./design-system\.css">`)

// InlineCSS replaces the first design-system stylesheet link in html with a
// <style> block holding the token block followed by the stylesheet.
func InlineCSS(html, stylesheet string, tokens Tokens) string {
	loc := stylesheetLink.FindStringIndex(html)
	if loc == nil {
		return html
	}
	style := "<style>\n" + tokens.RootBlock() + "\n" + stylesheet + "\n</style>"
	return html[:loc[0]] + style + html[loc[1]:]
}

// Inline loads the stylesheet and tokens from the store and inlines them into html.
func (s *Store) Inline(html string) (string, error) {
	css, err := s.Stylesheet()
	if err != nil {
		return "", err
	}
	tokens, err := s.Tokens()
	if err != nil {
		return "", err
	}
	return InlineCSS(html, css, tokens), nil
}
