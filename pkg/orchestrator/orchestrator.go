// Package orchestrator runs the prepare and capture stages for one creative.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/user/sparkstudio/pkg/pipeline"
	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/sizes"
	"github.com/user/sparkstudio/pkg/templates"
)

// Config contains the orchestrator settings.
type Config struct {
	// OutputDir is where renders without an explicit path are written.
	OutputDir string

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputDir: "output",
		Now:       time.Now,
	}
}

// RenderRequest describes one template at one size.
type RenderRequest struct {
	Template string
	Size     string
	Vars     templates.Vars

	// OutPath is the PNG destination; empty selects DefaultOutPath.
	OutPath string
}

// Orchestrator coordinates the execution of the render stages.
type Orchestrator struct {
	prepareStage pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult]
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult]
	store        ports.TemplateStore
	config       Config
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	prepareStage pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult],
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult],
	store ports.TemplateStore,
	config Config,
	logger ports.Logger,
) *Orchestrator {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Orchestrator{
		prepareStage: prepareStage,
		captureStage: captureStage,
		store:        store,
		config:       config,
		logger:       logger,
	}
}

// Validate checks that the template exists and every size id is known,
// without touching the browser.
func (o *Orchestrator) Validate(template string, sizeIDs ...string) error {
	for _, id := range sizeIDs {
		if _, err := sizes.Resolve(id); err != nil {
			return err
		}
	}
	return o.store.Check(template)
}

// Render produces one PNG and returns its path. Size and template are
// validated before a browser is launched.
func (o *Orchestrator) Render(ctx context.Context, req RenderRequest) (string, error) {
	if err := o.Validate(req.Template, req.Size); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	outPath := req.OutPath
	if outPath == "" {
		outPath = DefaultOutPath(o.config.OutputDir, req.Template, req.Size, req.Vars["PRODUCT_NAME"], o.config.Now())
	}

	o.logger.Debug("Rendering %s at %s", req.Template, req.Size)
	prepared, err := o.prepareStage.Execute(ctx, pipeline.PrepareInput{
		Template: req.Template,
		SizeID:   req.Size,
		Vars:     req.Vars,
	})
	if err != nil {
		return "", err
	}

	captured, err := o.captureStage.Execute(ctx, pipeline.CaptureInput{
		HTML:    prepared.HTML,
		Size:    prepared.Size,
		OutPath: outPath,
	})
	if err != nil {
		o.logger.Error("Failed to render %s at %s: %s", req.Template, req.Size, err)
		return "", fmt.Errorf("render %s at %s: %w", req.Template, req.Size, err)
	}

	o.logger.Debug("Rendered %s (%dx%d, %d bytes)", captured.Path, captured.Width, captured.Height, captured.Bytes)
	return captured.Path, nil
}

// DefaultOutPath builds
// <outputDir>/<template>_<size>_<slug(productName or "creative")>_<unix-ms>.png.
func DefaultOutPath(outputDir, template, size, productName string, now time.Time) string {
	if productName == "" {
		productName = "creative"
	}
	name := fmt.Sprintf("%s_%s_%s_%d.png", template, size, Slugify(productName), now.UnixMilli())
	return filepath.Join(outputDir, name)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens at both ends.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
