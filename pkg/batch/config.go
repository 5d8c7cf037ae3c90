package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/sparkstudio/pkg/orchestrator"
	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/sizes"
	"github.com/user/sparkstudio/pkg/templates"
)

// ConfigCreative is one entry of a batch file.
type ConfigCreative struct {
	Template string         `json:"template" yaml:"template"`
	Size     string         `json:"size" yaml:"size"`
	Vars     map[string]any `json:"vars" yaml:"vars"`
}

// ConfigFile is the batch file format:
//
//	{"creatives": [{"template": "hero-launch", "size": "all", "vars": {...}}]}
//
// YAML with the same shape is accepted for .yaml and .yml files.
type ConfigFile struct {
	Creatives []ConfigCreative `json:"creatives" yaml:"creatives"`
}

// LoadConfigFile reads and decodes a batch file.
func LoadConfigFile(fs ports.FileSystem, path string) (ConfigFile, error) {
	var cfg ConfigFile

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read batch file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse batch file %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse batch file %s: %w", path, err)
		}
	}

	if len(cfg.Creatives) == 0 {
		return cfg, fmt.Errorf("batch file %s has no creatives", path)
	}
	return cfg, nil
}

type configJob struct {
	template string
	size     string
	vars     templates.Vars
}

// RunConfig renders every entry of a batch file. Entries with size "all"
// expand to every size. Each output is <outputDir>/<template>_<size>_<unix-ms>.png.
// Every entry's sizes and vars are checked before the first render.
func (g *Generator) RunConfig(ctx context.Context, cfg ConfigFile) (Result, error) {
	var result Result

	var jobs []configJob
	for i, c := range cfg.Creatives {
		vars, err := templates.VarsFromMap(fmt.Sprintf("creatives[%d].vars", i), c.Vars)
		if err != nil {
			return result, err
		}

		ids := []string{c.Size}
		if c.Size == sizes.All {
			ids = sizes.IDs()
		}
		for _, id := range ids {
			if _, err := sizes.Resolve(id); err != nil {
				return result, err
			}
			jobs = append(jobs, configJob{template: c.Template, size: id, vars: vars})
		}
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		out := filepath.Join(g.outputDir, fmt.Sprintf("%s_%s_%d.png", job.template, job.size, g.now().UnixMilli()))
		path, err := g.renderer.Render(ctx, orchestrator.RenderRequest{
			Template: job.template,
			Size:     job.size,
			Vars:     job.vars,
			OutPath:  out,
		})
		if err != nil {
			return result, err
		}
		g.record(&result, Item{Template: job.template, Size: job.size, Path: path})
	}

	return result, nil
}
