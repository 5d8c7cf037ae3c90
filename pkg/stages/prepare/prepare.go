// Package prepare implements the stage that turns a template, a placement and
// a variable set into the final HTML document.
package prepare

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/user/sparkstudio/pkg/pipeline"
	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/sizes"
	"github.com/user/sparkstudio/pkg/templates"
)

// Stage resolves one creative's HTML.
type Stage struct {
	store  ports.TemplateStore
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new prepare stage.
func NewStage(store ports.TemplateStore, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		store:  store,
		sink:   sink,
		logger: logger.WithComponent("prepare"),
	}
}

// Execute resolves the size, loads the template, inlines the stylesheet,
// swaps the size class and substitutes the variables, in that order.
// An unknown size fails before the template is read.
func (s *Stage) Execute(ctx context.Context, input pipeline.PrepareInput) (pipeline.PrepareResult, error) {
	result := pipeline.PrepareResult{}

	size, err := sizes.Resolve(input.SizeID)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Loading template %s", input.Template)
	html, err := s.store.Load(input.Template)
	if err != nil {
		return result, err
	}

	html, err = s.store.Inline(html)
	if err != nil {
		return result, fmt.Errorf("inline stylesheet: %w", err)
	}

	html = sizes.SwapClass(html, size)
	unfilled := unfilledPlaceholders(html, input.Vars)
	if len(unfilled) > 0 {
		s.logger.Debug("Stripping unfilled placeholders: %s", strings.Join(unfilled, ", "))
	}
	html = templates.ReplaceVars(html, input.Vars)

	result.HTML = html
	result.Size = size
	s.logger.Debug("Prepared %s at %s (%dx%d, %d bytes)", input.Template, size.ID, size.Width, size.Height, len(html))

	if s.sink.Enabled() {
		name := input.Template + "_" + size.ID
		if err := s.sink.SaveHTML(name, []byte(html)); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
		report := varsReport{Vars: input.Vars, Unfilled: unfilled}
		if data, err := json.MarshalIndent(report, "", "  "); err == nil {
			if err := s.sink.SaveVars(name, data); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err)
			}
		}
	}

	return result, nil
}

// varsReport is the debug dump of one render's variables.
type varsReport struct {
	Vars     templates.Vars `json:"vars"`
	Unfilled []string       `json:"unfilled"`
}

// unfilledPlaceholders lists the placeholders in html that vars does not
// supply, in order of first appearance.
func unfilledPlaceholders(html string, vars templates.Vars) []string {
	unfilled := []string{}
	for _, name := range templates.Placeholders(html) {
		if _, ok := vars[name]; !ok {
			unfilled = append(unfilled, name)
		}
	}
	return unfilled
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult] = (*Stage)(nil)
