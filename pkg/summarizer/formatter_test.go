package summarizer

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		Brief: BriefInfo{
			Product: "BrewMate",
			Angle:   "Coffee | on autopilot",
			Bullets: []string{"Fresh daily", "Zero waste"},
		},
		Dir:   "output/brewmate/coffee-on-autopilot/2026-01-15T10-30-00-000Z",
		Sizes: []string{"ig-feed", "twitter"},
		Files: []File{
			{Template: "hero-launch", Size: "ig-feed", Path: "output/x/hero-launch_ig-feed.png", Bytes: 1536},
			{Template: "hero-launch", Size: "twitter", Path: "output/x/hero-launch_twitter.png", Bytes: 1024 * 1024},
		},
		Elapsed: 2500 * time.Millisecond,
	}
}

func TestTextFormatter(t *testing.T) {
	out := NewTextFormatter().Format(sampleSummary())

	checks := []string{
		"Creatives: 2",
		"Product: BrewMate",
		"Sizes: ig-feed, twitter",
		"hero-launch_ig-feed.png",
		"1080x1080",
		"1200x675",
		"1.50 KB",
		"1.00 MB",
		"(2.5s)",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Creative Batch Summary",
		"| Product | BrewMate |",
		`| Angle | Coffee \| on autopilot |`,
		"| Bullets | Fresh daily • Zero waste |",
		"| Creatives | 2 |",
		"| hero-launch | twitter | 1200x675 | hero-launch_twitter.png | 1.00 MB |",
		"2026-01-15 10:30:00 UTC",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatter_NoFiles(t *testing.T) {
	out := NewMarkdownFormatter().Format(&Summary{GeneratedAt: time.Now()})

	if strings.Contains(out, "## Files") {
		t.Error("files table should be omitted when nothing was rendered")
	}
	if strings.Contains(out, "| Product |") {
		t.Error("empty rows should be omitted")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Creative Batch Summary": "クリエイティブ生成サマリー",
			"Product":                "プロダクト",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	out := NewMarkdownFormatter(WithTranslator(translator)).Format(sampleSummary())

	if !strings.Contains(out, "# クリエイティブ生成サマリー") {
		t.Error("expected translated title")
	}
	if !strings.Contains(out, "| プロダクト | BrewMate |") {
		t.Error("expected translated label")
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	out := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(sampleSummary())

	if !strings.Contains(out, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "text", "markdown", "md"} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
	}
	if _, err := New("html"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatFunc(func(s *Summary) string { return "ok\n" }), &buf)

	if err := w.Write(sampleSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != "ok\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatBytes(tt.bytes); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
