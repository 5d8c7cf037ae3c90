package studio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/sparkstudio/pkg/adapters/capturehtml"
	"github.com/user/sparkstudio/pkg/adapters/filesink"
	"github.com/user/sparkstudio/pkg/adapters/ggrenderer"
	"github.com/user/sparkstudio/pkg/adapters/nullsink"
	"github.com/user/sparkstudio/pkg/adapters/osfilesystem"
	"github.com/user/sparkstudio/pkg/adapters/playwrightcapture"
	"github.com/user/sparkstudio/pkg/adapters/rodcapture"
	"github.com/user/sparkstudio/pkg/batch"
	"github.com/user/sparkstudio/pkg/config"
	"github.com/user/sparkstudio/pkg/orchestrator"
	"github.com/user/sparkstudio/pkg/pipeline"
	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/stages/capture"
	"github.com/user/sparkstudio/pkg/stages/contactsheet"
	"github.com/user/sparkstudio/pkg/stages/prepare"
	"github.com/user/sparkstudio/pkg/templates"
)

// ContactSheetName is the file written into a batch directory.
const ContactSheetName = "contact-sheet.png"

// Studio holds the wired adapters and stages for one CLI invocation.
type Studio struct {
	config       config.Config
	logger       ports.Logger
	fs           ports.FileSystem
	store        *templates.Store
	orchestrator *orchestrator.Orchestrator
	generator    *batch.Generator
	sheet        *contactsheet.Stage
}

// Adapters are the external dependencies a Studio is assembled from.
// Nil fields are filled with the production adapters selected by the config.
type Adapters struct {
	FileSystem ports.FileSystem
	Store      *templates.Store
	Capturer   ports.HTMLCapturer
	Renderer   ports.Renderer
	Sink       ports.DebugSink
}

// New validates cfg and wires the production adapters.
func New(cfg config.Config, logger ports.Logger) (*Studio, error) {
	return NewWithAdapters(cfg, logger, Adapters{})
}

// NewWithAdapters validates cfg and wires the given adapters, falling back to
// the production ones for nil fields.
func NewWithAdapters(cfg config.Config, logger ports.Logger, a Adapters) (*Studio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if a.FileSystem == nil {
		a.FileSystem = osfilesystem.New()
	}
	if a.Store == nil {
		if cfg.TemplatesDir != "" {
			a.Store = templates.NewDirStore(cfg.TemplatesDir)
		} else {
			a.Store = templates.NewEmbeddedStore()
		}
	}
	if a.Capturer == nil {
		engine, err := ports.ParseEngine(cfg.Engine)
		if err != nil {
			return nil, err
		}
		a.Capturer = NewCapturer(engine, cfg.BrowserOptions(), logger)
	}
	if a.Renderer == nil {
		a.Renderer = ggrenderer.New()
	}
	if a.Sink == nil {
		if cfg.Debug {
			if err := a.FileSystem.MkdirAll(cfg.DebugDir); err != nil {
				return nil, fmt.Errorf("create debug directory: %w", err)
			}
			a.Sink = filesink.New(cfg.DebugDir, a.FileSystem)
		} else {
			a.Sink = nullsink.New()
		}
	}

	prepareStage := prepare.NewStage(a.Store, a.Sink, logger)
	captureStage := capture.NewStage(a.Capturer, a.Renderer, a.FileSystem, logger)

	orchConfig := orchestrator.DefaultConfig()
	orchConfig.OutputDir = cfg.OutputDir
	orch := orchestrator.New(prepareStage, captureStage, a.Store, orchConfig, logger)

	return &Studio{
		config:       cfg,
		logger:       logger,
		fs:           a.FileSystem,
		store:        a.Store,
		orchestrator: orch,
		generator:    batch.New(orch, a.FileSystem, cfg.OutputDir, logger),
		sheet:        contactsheet.NewStage(a.Renderer, a.FileSystem, logger).WithTheme(cfg.Theme()),
	}, nil
}

// NewCapturer returns the HTML capturer for engine.
func NewCapturer(engine ports.Engine, opts ports.BrowserOptions, logger ports.Logger) ports.HTMLCapturer {
	switch engine {
	case ports.EngineRod:
		return rodcapture.New(opts, logger)
	case ports.EnginePlaywright:
		return playwrightcapture.New(opts, logger)
	default:
		return capturehtml.New(opts, logger)
	}
}

// Config returns the validated configuration.
func (s *Studio) Config() config.Config {
	return s.config
}

// FileSystem returns the file system the studio writes through.
func (s *Studio) FileSystem() ports.FileSystem {
	return s.fs
}

// Store returns the template store.
func (s *Studio) Store() *templates.Store {
	return s.store
}

// Orchestrator returns the single-render orchestrator.
func (s *Studio) Orchestrator() *orchestrator.Orchestrator {
	return s.orchestrator
}

// Generator returns the batch generator.
func (s *Studio) Generator() *batch.Generator {
	return s.generator
}

// ContactSheet composes every PNG in dir into dir/contact-sheet.png.
// A previous contact sheet in dir is not included.
func (s *Studio) ContactSheet(ctx context.Context, dir string) (string, error) {
	if ok, err := s.fs.Exists(dir); err != nil || !ok {
		return "", fmt.Errorf("batch directory not found: %s", dir)
	}

	files, err := s.fs.ListFiles(dir)
	if err != nil {
		return "", fmt.Errorf("list %s: %w", dir, err)
	}

	var items []pipeline.SheetItem
	for _, name := range files {
		if name == ContactSheetName || !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		items = append(items, pipeline.SheetItem{Label: SheetLabel(name), Path: filepath.Join(dir, name)})
	}

	result, err := s.sheet.Execute(ctx, pipeline.ContactSheetInput{
		Items:     items,
		OutPath:   filepath.Join(dir, ContactSheetName),
		Columns:   s.config.ContactSheet.Columns,
		CellWidth: s.config.ContactSheet.CellWidth,
	})
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

// SheetLabel turns "<template>_<size>[_...].png" into "<template> · <size>".
func SheetLabel(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return base
	}
	return parts[0] + " · " + parts[1]
}
