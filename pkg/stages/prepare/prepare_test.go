package prepare

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/user/sparkstudio/pkg/adapters/logger"
	"github.com/user/sparkstudio/pkg/mocks"
	"github.com/user/sparkstudio/pkg/pipeline"
	"github.com/user/sparkstudio/pkg/sizes"
	"github.com/user/sparkstudio/pkg/templates"
)

const promoHTML = `<html><head><link rel="stylesheet" href="../design-system.css"></head>
<body><div class="canvas size-ig-feed"><h1>{{PRODUCT_NAME}}</h1><p>{{HEADLINE}}</p><em>{{CTA}}</em></div></body></html>`

func newStore() *templates.Store {
	return templates.NewStore(fstest.MapFS{
		"templates/promo.html": {Data: []byte(promoHTML)},
		"design-system.css":    {Data: []byte(".canvas { width: 1080px; }")},
		"design-tokens.json":   {Data: []byte(`{"cssVariables":{"--brand":"#ff5500"}}`)},
	}, "/tpl")
}

func TestStage_Execute(t *testing.T) {
	sink := mocks.NewDebugSink(false)
	stage := NewStage(newStore(), sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.PrepareInput{
		Template: "promo",
		SizeID:   "twitter",
		Vars:     templates.Vars{"PRODUCT_NAME": "BrewMate", "HEADLINE": "Coffee, solved"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Size.ID != "twitter" || result.Size.Width != 1200 || result.Size.Height != 675 {
		t.Errorf("unexpected size %+v", result.Size)
	}

	html := result.HTML
	checks := []struct {
		desc string
		ok   bool
	}{
		{"size class swapped", strings.Contains(html, `class="canvas size-twitter"`)},
		{"old size class gone", !strings.Contains(html, "size-ig-feed")},
		{"stylesheet inlined", strings.Contains(html, ".canvas { width: 1080px; }")},
		{"link removed", !strings.Contains(html, "design-system.css")},
		{"tokens inlined", strings.Contains(html, "--brand: #ff5500;")},
		{"product substituted", strings.Contains(html, "<h1>BrewMate</h1>")},
		{"headline substituted", strings.Contains(html, "<p>Coffee, solved</p>")},
		{"unknown placeholder stripped", strings.Contains(html, "<em></em>")},
		{"no placeholder left", !strings.Contains(html, "{{")},
	}
	for _, c := range checks {
		if !c.ok {
			t.Errorf("%s:\n%s", c.desc, html)
		}
	}

	if len(sink.HTML) != 0 {
		t.Error("disabled sink should not receive output")
	}
}

func TestStage_Execute_UnknownSizeBeforeTemplate(t *testing.T) {
	stage := NewStage(newStore(), mocks.NewDebugSink(false), logger.NewNoop())

	// Template is missing too; the size error must win.
	_, err := stage.Execute(context.Background(), pipeline.PrepareInput{
		Template: "does-not-exist",
		SizeID:   "linkedin",
	})

	var unknown *sizes.UnknownSizeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *sizes.UnknownSizeError, got %v", err)
	}
}

func TestStage_Execute_TemplateNotFound(t *testing.T) {
	stage := NewStage(newStore(), mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.PrepareInput{
		Template: "promoo",
		SizeID:   "ig-feed",
	})

	var nf *templates.TemplateNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *templates.TemplateNotFoundError, got %v", err)
	}
	if nf.Suggestion != "promo" {
		t.Errorf("Suggestion = %q, want promo", nf.Suggestion)
	}
}

func TestStage_Execute_DebugSink(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(newStore(), sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.PrepareInput{
		Template: "promo",
		SizeID:   "fb-ad",
		Vars:     templates.Vars{"PRODUCT_NAME": "BrewMate"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html, ok := sink.HTML["promo_fb-ad"]
	if !ok {
		t.Fatal("expected resolved HTML in debug sink")
	}
	if string(html) != result.HTML {
		t.Error("debug HTML differs from the rendered document")
	}
	if !strings.Contains(string(sink.Vars["promo_fb-ad"]), `"PRODUCT_NAME": "BrewMate"`) {
		t.Errorf("unexpected vars dump: %s", sink.Vars["promo_fb-ad"])
	}

	var report struct {
		Vars     map[string]string `json:"vars"`
		Unfilled []string          `json:"unfilled"`
	}
	if err := json.Unmarshal(sink.Vars["promo_fb-ad"], &report); err != nil {
		t.Fatalf("vars dump is not JSON: %v", err)
	}
	if want := []string{"HEADLINE", "CTA"}; !reflect.DeepEqual(report.Unfilled, want) {
		t.Errorf("Unfilled = %v, want %v", report.Unfilled, want)
	}
}

func TestUnfilledPlaceholders(t *testing.T) {
	got := unfilledPlaceholders("{{A}} {{B}} {{A}} {{C}}", templates.Vars{"B": ""})
	if want := []string{"A", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("unfilledPlaceholders() = %v, want %v", got, want)
	}

	if got := unfilledPlaceholders("{{A}}", templates.Vars{"A": "x"}); len(got) != 0 {
		t.Errorf("expected nothing unfilled, got %v", got)
	}
}
