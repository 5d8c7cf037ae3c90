package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/sparkstudio/pkg/orchestrator"
	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/sizes"
)

// ErrMissingProduct is returned when a brief has no product name.
var ErrMissingProduct = errors.New("batch: --product is required")

// Renderer renders a single creative and returns the written path.
type Renderer interface {
	Render(ctx context.Context, req orchestrator.RenderRequest) (string, error)
}

// Item is one rendered creative.
type Item struct {
	Template string
	Size     string
	Path     string
}

// Result lists what a batch produced.
type Result struct {
	// Dir is the batch directory; empty for config batches.
	Dir   string
	Items []Item
}

// Paths returns the output paths in render order.
func (r Result) Paths() []string {
	paths := make([]string, len(r.Items))
	for i, it := range r.Items {
		paths[i] = it.Path
	}
	return paths
}

// Request is a brief batch.
type Request struct {
	Brief Brief

	// Sizes is "all", empty, or a comma separated list of size ids.
	Sizes string

	// Now stamps the batch directory; zero uses the generator clock.
	Now time.Time
}

// Generator renders batches sequentially through a Renderer.
type Generator struct {
	renderer  Renderer
	fs        ports.FileSystem
	outputDir string
	now       func() time.Time
	logger    ports.Logger

	// OnRendered, when set, is called after each creative is written.
	OnRendered func(Item)
}

// New creates a Generator writing under outputDir.
func New(renderer Renderer, fs ports.FileSystem, outputDir string, logger ports.Logger) *Generator {
	return &Generator{
		renderer:  renderer,
		fs:        fs,
		outputDir: outputDir,
		now:       time.Now,
		logger:    logger.WithComponent("batch"),
	}
}

// WithClock replaces the generator clock.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// BatchDir returns <outputDir>/<slug(product)>/<slug(angle or "general")>/<stamp>
// where stamp is the UTC ISO-8601 time with ':' and '.' replaced by '-'.
func BatchDir(outputDir string, brief Brief, now time.Time) string {
	angle := brief.Angle
	if angle == "" {
		angle = "general"
	}
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return filepath.Join(outputDir, orchestrator.Slugify(brief.Product), orchestrator.Slugify(angle), stamp)
}

// Generate renders every variant of req.Brief at every requested size.
// All size ids are validated before anything is rendered; after that the
// first failure aborts the remaining renders.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	var result Result

	if req.Brief.Product == "" {
		return result, ErrMissingProduct
	}

	targets, err := sizes.ParseList(req.Sizes)
	if err != nil {
		return result, err
	}

	now := req.Now
	if now.IsZero() {
		now = g.now()
	}
	result.Dir = BatchDir(g.outputDir, req.Brief, now)
	if err := g.fs.MkdirAll(result.Dir); err != nil {
		return result, fmt.Errorf("create %s: %w", result.Dir, err)
	}

	specs := BuildCreativeSpecs(req.Brief)
	g.logger.Info("Generating %d creatives for %s", len(specs)*len(targets), req.Brief.Product)

	for _, spec := range specs {
		for _, size := range targets {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			path, err := g.renderer.Render(ctx, orchestrator.RenderRequest{
				Template: spec.Template,
				Size:     size.ID,
				Vars:     spec.Vars,
				OutPath:  filepath.Join(result.Dir, spec.Template+"_"+size.ID+".png"),
			})
			if err != nil {
				return result, err
			}
			g.record(&result, Item{Template: spec.Template, Size: size.ID, Path: path})
		}
	}

	return result, nil
}

func (g *Generator) record(result *Result, item Item) {
	result.Items = append(result.Items, item)
	if g.OnRendered != nil {
		g.OnRendered(item)
	}
}
