// Package main provides the CLI entry point for creatives.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/sparkstudio/pkg/adapters/logger"
	"github.com/user/sparkstudio/pkg/batch"
	"github.com/user/sparkstudio/pkg/config"
	"github.com/user/sparkstudio/pkg/orchestrator"
	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/sizes"
	"github.com/user/sparkstudio/pkg/studio"
	"github.com/user/sparkstudio/pkg/summarizer"
	"github.com/user/sparkstudio/pkg/templates"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.RunContext(ctx, normalizeBullets(args)); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                      "creatives",
		Usage:                     l10n.T("Render ad creatives from HTML templates"),
		Version:                   version,
		Writer:                    stdout,
		ErrWriter:                 stderr,
		HideHelpCommand:           true,
		DisableSliceFlagSeparator: true,
		Flags:                     globalFlags(),
		Commands: []*cli.Command{
			renderCommand(),
			generateBatchCommand(),
			generateCommand(),
			contactSheetCommand(),
			sizesCommand(),
			templatesCommand(),
			versionCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: l10n.T("YAML settings file"), Category: l10n.T("Settings")},
		&cli.StringFlag{Name: "templates-dir", Usage: l10n.T("Template directory (default: built-in templates)"), Category: l10n.T("Settings")},
		&cli.StringFlag{Name: "output-dir", Usage: l10n.T("Base directory for rendered creatives"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "summary-format", Usage: l10n.T("Summary format (text, markdown)"), Category: l10n.T("Output")},

		&cli.StringFlag{Name: "engine", Usage: l10n.T("Browser engine (chromedp, rod, playwright)"), Category: l10n.T("Browser")},
		&cli.StringFlag{Name: "chrome-path", Usage: l10n.T("Path to Chrome executable (falls back to CHROME_PATH, then system default)"), Category: l10n.T("Browser")},
		&cli.BoolFlag{Name: "no-headless", Usage: l10n.T("Run browser in non-headless mode"), Category: l10n.T("Browser")},
		&cli.BoolFlag{Name: "install-browser", Usage: l10n.T("Let the playwright engine download its own Chromium"), Category: l10n.T("Browser")},
		&cli.IntFlag{Name: "settle-ms", Usage: l10n.T("Delay after fonts are ready before the screenshot"), Category: l10n.T("Browser")},
		&cli.IntFlag{Name: "network-idle-ms", Usage: l10n.T("Upper bound for waiting on network idle"), Category: l10n.T("Browser")},
		&cli.IntFlag{Name: "timeout", Usage: l10n.T("Timeout for one capture in milliseconds"), Category: l10n.T("Browser")},

		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save the resolved HTML and vars of every render"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
	}
}

// configBuilder layers defaults, the --config file, CHROME_PATH and the
// global flags.
// appContext returns the context that owns the global flags. Subcommands
// may declare a flag with the same name, so lookups through c alone could
// resolve to the local one.
func appContext(c *cli.Context) *cli.Context {
	lineage := c.Lineage()
	for i := len(lineage) - 1; i >= 0; i-- {
		if lineage[i].Command != nil {
			return lineage[i]
		}
	}
	return c
}

func configBuilder(c *cli.Context) (*studio.ConfigBuilder, error) {
	root := appContext(c)

	cfg := config.Defaults()
	if path := root.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	b := studio.FromConfig(cfg)
	if root.IsSet("templates-dir") {
		b.WithTemplatesDir(root.String("templates-dir"))
	}
	if root.IsSet("output-dir") {
		b.WithOutputDir(root.String("output-dir"))
	}
	if root.IsSet("summary-format") {
		b.WithSummaryFormat(root.String("summary-format"))
	}
	if root.IsSet("engine") {
		b.WithEngine(root.String("engine"))
	}
	if root.IsSet("chrome-path") {
		b.WithChromePath(root.String("chrome-path"))
	}
	if root.IsSet("no-headless") {
		b.WithHeadless(!root.Bool("no-headless"))
	}
	if root.IsSet("install-browser") {
		b.WithInstallBrowser(root.Bool("install-browser"))
	}
	if root.IsSet("settle-ms") {
		b.WithSettleMs(root.Int("settle-ms"))
	}
	if root.IsSet("network-idle-ms") {
		b.WithNetworkIdleMs(root.Int("network-idle-ms"))
	}
	if root.IsSet("timeout") {
		b.WithTimeoutMs(root.Int("timeout"))
	}
	if root.IsSet("log-level") {
		b.WithLogLevel(root.String("log-level"))
	}
	if root.Bool("quiet") {
		b.WithLogLevel(ports.LevelQuiet.String())
	}
	debug := cfg.Debug
	if root.IsSet("debug") {
		debug = root.Bool("debug")
	}
	b.WithDebug(debug, root.String("debug-dir"))

	return b, nil
}

// newStudio wires a Studio with the console logger at the configured level.
func newStudio(cfg config.Config) (*studio.Studio, error) {
	var log ports.Logger
	level := ports.ParseLogLevel(cfg.LogLevel)
	if level == ports.LevelQuiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(level)
	}
	return studio.New(cfg, log)
}

// studioFor builds the Studio for a command from the global settings.
func studioFor(c *cli.Context) (*studio.Studio, error) {
	b, err := configBuilder(c)
	if err != nil {
		return nil, err
	}
	return newStudio(b.Build())
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: l10n.T("Render one template at one size (or all sizes)"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: l10n.T("Template name")},
			&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: l10n.T("Size id, or all")},
			&cli.StringFlag{Name: "vars", Usage: l10n.T("Template variables as a JSON object")},
			&cli.StringFlag{Name: "vars-file", Usage: l10n.T("JSON file with template variables (takes precedence over --vars)")},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: l10n.T("Output PNG path (single size only)")},
		},
		Action: renderAction,
	}
}

func renderAction(c *cli.Context) error {
	name, size, out := c.String("template"), c.String("size"), c.String("out")
	if name == "" || size == "" {
		return cli.ShowSubcommandHelp(c)
	}

	s, err := studioFor(c)
	if err != nil {
		return err
	}

	ids := []string{size}
	if size == sizes.All {
		if out != "" {
			return fmt.Errorf("--out cannot be used with --size all")
		}
		ids = sizes.IDs()
	}

	orch := s.Orchestrator()
	if err := orch.Validate(name, ids...); err != nil {
		return err
	}

	vars, err := readVars(s, c.String("vars-file"), c.String("vars"))
	if err != nil {
		return err
	}

	for _, id := range ids {
		path, err := orch.Render(c.Context, orchestrator.RenderRequest{
			Template: name,
			Size:     id,
			Vars:     vars,
			OutPath:  out,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Rendered: %s\n", path)
	}
	return nil
}

// readVars loads --vars-file when given, otherwise parses --vars.
func readVars(s *studio.Studio, file, inline string) (templates.Vars, error) {
	switch {
	case file != "":
		data, err := s.FileSystem().ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read vars file: %w", err)
		}
		return templates.ParseVarsJSON(file, data)
	case inline != "":
		return templates.ParseVarsJSON("--vars", []byte(inline))
	default:
		return templates.Vars{}, nil
	}
}

func generateBatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate-batch",
		Usage: l10n.T("Render the six creative variants of a product brief"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "product", Aliases: []string{"productName"}, Usage: l10n.T("Product name")},
			&cli.StringFlag{Name: "angle", Usage: l10n.T("Marketing angle sentence")},
			&cli.StringSliceFlag{Name: "bullets", Usage: l10n.T("Benefit bullets (--bullets A B C)")},
			&cli.StringFlag{Name: "sizes", Value: sizes.All, Usage: l10n.T("all, or a comma separated list of size ids")},
			&cli.BoolFlag{Name: "contact-sheet", Usage: l10n.T("Also write contact-sheet.png into the batch directory")},
			&cli.BoolFlag{Name: "summary", Usage: l10n.T("Print a run summary")},
		},
		Action: generateBatchAction,
	}
}

func generateBatchAction(c *cli.Context) error {
	brief := batch.Brief{
		Product: c.String("product"),
		Angle:   c.String("angle"),
		Bullets: c.StringSlice("bullets"),
	}
	if brief.Product == "" {
		return cli.ShowSubcommandHelp(c)
	}

	s, err := studioFor(c)
	if err != nil {
		return err
	}

	start := time.Now()
	w := c.App.Writer
	gen := s.Generator()
	gen.OnRendered = func(item batch.Item) {
		fmt.Fprintf(w, "Rendered: %s\n", item.Path)
	}

	result, err := gen.Generate(c.Context, batch.Request{Brief: brief, Sizes: c.String("sizes")})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nDone. Generated %d creatives in:\n%s\n", len(result.Items), result.Dir)

	contactSheet := s.Config().ContactSheet.Enabled
	if c.IsSet("contact-sheet") {
		contactSheet = c.Bool("contact-sheet")
	}
	if contactSheet {
		path, err := s.ContactSheet(c.Context, result.Dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Contact sheet: %s\n", path)
	}

	if !c.Bool("summary") {
		return nil
	}
	b := summarizer.NewBuilder().
		WithBrief(brief.Product, brief.Angle, brief.Bullets).
		WithDir(result.Dir).
		WithSizes(requestedSizes(c.String("sizes"))).
		WithElapsed(time.Since(start))
	for _, item := range result.Items {
		b.AddFile(s.FileSystem(), item.Template, item.Size, item.Path)
	}
	return writeSummary(c, s, b.Build())
}

func requestedSizes(spec string) []string {
	list, err := sizes.ParseList(spec)
	if err != nil {
		return nil
	}
	ids := make([]string, len(list))
	for i, size := range list {
		ids[i] = size.ID
	}
	return ids
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: l10n.T("Render every creative listed in a JSON or YAML batch file"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Batch file with a creatives list")},
			&cli.BoolFlag{Name: "summary", Usage: l10n.T("Print a run summary")},
		},
		Action: generateAction,
	}
}

func generateAction(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		return cli.ShowSubcommandHelp(c)
	}

	s, err := studioFor(c)
	if err != nil {
		return err
	}

	file, err := batch.LoadConfigFile(s.FileSystem(), path)
	if err != nil {
		return err
	}

	start := time.Now()
	w := c.App.Writer
	gen := s.Generator()
	gen.OnRendered = func(item batch.Item) {
		fmt.Fprintf(w, "Rendered: %s\n", item.Path)
	}

	result, err := gen.RunConfig(c.Context, file)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBatch complete: %d creatives generated\n", len(result.Items))

	if !c.Bool("summary") {
		return nil
	}
	b := summarizer.NewBuilder().
		WithDir(s.Config().OutputDir).
		WithElapsed(time.Since(start))
	for _, item := range result.Items {
		b.AddFile(s.FileSystem(), item.Template, item.Size, item.Path)
	}
	return writeSummary(c, s, b.Build())
}

func writeSummary(c *cli.Context, s *studio.Studio, summary *summarizer.Summary) error {
	formatter, err := summarizer.New(s.Config().SummaryFormat,
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer)
	return summarizer.NewWriter(formatter, c.App.Writer).Write(summary)
}

func contactSheetCommand() *cli.Command {
	return &cli.Command{
		Name:  "contact-sheet",
		Usage: l10n.T("Compose the PNGs of a batch directory into one preview image"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: l10n.T("Batch directory")},
			&cli.IntFlag{Name: "columns", Usage: l10n.T("Thumbnails per row")},
		},
		Action: func(c *cli.Context) error {
			dir := c.String("dir")
			if dir == "" {
				return cli.ShowSubcommandHelp(c)
			}

			b, err := configBuilder(c)
			if err != nil {
				return err
			}
			if c.IsSet("columns") {
				b.WithContactSheetColumns(c.Int("columns"))
			}
			s, err := newStudio(b.Build())
			if err != nil {
				return err
			}

			path, err := s.ContactSheet(c.Context, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Contact sheet: %s\n", path)
			return nil
		},
	}
}

func sizesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sizes",
		Usage: l10n.T("List the available sizes"),
		Action: func(c *cli.Context) error {
			for _, s := range sizes.List() {
				fmt.Fprintf(c.App.Writer, "%-10s %dx%d\n", s.ID, s.Width, s.Height)
			}
			return nil
		},
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: l10n.T("List the available templates"),
		Action: func(c *cli.Context) error {
			s, err := studioFor(c)
			if err != nil {
				return err
			}
			names := s.Store().List()
			if len(names) == 0 {
				return fmt.Errorf("no templates found in %s", s.Store().Root())
			}
			fmt.Fprintln(c.App.Writer, strings.Join(names, "\n"))
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("creatives version %s", version))
			return nil
		},
	}
}

// normalizeBullets rewrites "--bullets A B C" into repeated "--bullets" flags
// so the values reach the slice flag. Collection stops at the next "--" token.
func normalizeBullets(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] != "--bullets" {
			out = append(out, args[i])
			continue
		}
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			i++
			out = append(out, "--bullets", args[i])
		}
	}
	return out
}
