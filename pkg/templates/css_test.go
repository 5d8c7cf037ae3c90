package templates

import (
	"strings"
	"testing"
)

func TestTokens_RootBlockSorted(t *testing.T) {
	tokens, err := ParseTokens([]byte(`{"cssVariables": {"--b": "2px", "--a": "#fff"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := ":root\n{\n  --a: #fff;\n  --b: 2px;\n}\n"
	if got := tokens.RootBlock(); got != want {
		t.Errorf("RootBlock() = %q, want %q", got, want)
	}
}

func TestParseTokens_Invalid(t *testing.T) {
	if _, err := ParseTokens([]byte(`{`)); err == nil {
		t.Error("expected error")
	}
}

func TestInlineCSS(t *testing.T) {
	html := `<head><link rel="stylesheet" href="../design-system.css"></head>`
	tokens := Tokens{CSSVariables: map[string]string{"--x": "1"}}

	got := InlineCSS(html, "body { color: red; }", tokens)

	if strings.Contains(got, "<link") {
		t.Errorf("link tag should be replaced: %q", got)
	}
	if !strings.Contains(got, "<style>\n:root\n{\n  --x: 1;\n}\n\nbody { color: red; }\n</style>") {
		t.Errorf("unexpected style block: %q", got)
	}
}

func TestInlineCSS_NoLink(t *testing.T) {
	html := `<head></head>`
	if got := InlineCSS(html, "body{}", Tokens{}); got != html {
		t.Errorf("expected html unchanged, got %q", got)
	}
}

func TestEmbeddedStore_Inline(t *testing.T) {
	store := NewEmbeddedStore()
	html, err := store.Load("hero-launch")
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Inline(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "--color-primary") {
		t.Error("expected design tokens to be inlined")
	}
	if !strings.Contains(got, ".canvas.size-ig-story") {
		t.Error("expected stylesheet to be inlined")
	}
}
