// Package contactsheet implements the stage that lays rendered creatives out
// on a single labelled preview image.
package contactsheet

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/user/sparkstudio/pkg/pipeline"
	"github.com/user/sparkstudio/pkg/ports"
)

const (
	defaultColumns   = 4
	defaultCellWidth = 320
	gap              = 24
	labelHeight      = 40
)

// ErrNoItems is returned when there is nothing to lay out.
var ErrNoItems = errors.New("contactsheet: no images")

// Theme holds the sheet colors.
type Theme struct {
	Background color.Color
	Cell       color.Color
	Border     color.Color
	Text       color.Color
}

// DefaultTheme returns the dark sheet theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 11, G: 13, B: 23, A: 255},
		Cell:       color.RGBA{R: 22, G: 26, B: 46, A: 255},
		Border:     color.RGBA{R: 51, G: 51, B: 85, A: 255},
		Text:       color.RGBA{R: 245, G: 247, B: 255, A: 255},
	}
}

// Stage composes a contact sheet from PNG files.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
	theme    Theme
}

// NewStage creates a new contact sheet stage.
func NewStage(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("contactsheet"),
		theme:    DefaultTheme(),
	}
}

// WithTheme replaces the sheet colors.
func (s *Stage) WithTheme(theme Theme) *Stage {
	s.theme = theme
	return s
}

// Execute reads every item, draws it into a grid cell scaled to fit, labels
// it, and writes the sheet as PNG.
func (s *Stage) Execute(ctx context.Context, input pipeline.ContactSheetInput) (pipeline.ContactSheetResult, error) {
	result := pipeline.ContactSheetResult{Path: input.OutPath}
	if len(input.Items) == 0 {
		return result, ErrNoItems
	}

	columns := input.Columns
	if columns <= 0 {
		columns = defaultColumns
	}
	if columns > len(input.Items) {
		columns = len(input.Items)
	}
	cell := input.CellWidth
	if cell <= 0 {
		cell = defaultCellWidth
	}
	rows := (len(input.Items) + columns - 1) / columns

	width := columns*cell + (columns+1)*gap
	height := rows*(cell+labelHeight) + (rows+1)*gap

	s.logger.Debug("Composing %d images into %dx%d sheet", len(input.Items), width, height)
	canvas := s.renderer.CreateCanvas(width, height, s.theme.Background)

	for i, item := range input.Items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		data, err := s.fs.ReadFile(item.Path)
		if err != nil {
			return result, fmt.Errorf("read %s: %w", item.Path, err)
		}
		img, err := s.renderer.DecodeImage(data, ports.FormatPNG)
		if err != nil {
			return result, fmt.Errorf("decode %s: %w", item.Path, err)
		}

		col, row := i%columns, i/columns
		x := gap + col*(cell+gap)
		y := gap + row*(cell+labelHeight+gap)

		canvas.DrawRect(x, y, cell, cell, s.theme.Cell)
		canvas.DrawImageScaled(img, x, y, cell, cell)
		canvas.DrawRectStroke(x, y, cell, cell, s.theme.Border, 1)
		canvas.DrawText(item.Label, x+cell/2, y+cell+labelHeight/2, ports.TextStyle{
			FontSize: 14,
			Color:    s.theme.Text,
			Align:    ports.AlignCenter,
		})
	}

	result.Image = canvas.ToImage()
	data, err := s.renderer.EncodeImage(result.Image, ports.FormatPNG, 0)
	if err != nil {
		return result, fmt.Errorf("encode contact sheet: %w", err)
	}
	if err := s.fs.WriteFile(input.OutPath, data); err != nil {
		return result, fmt.Errorf("write %s: %w", input.OutPath, err)
	}

	return result, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.ContactSheetInput, pipeline.ContactSheetResult] = (*Stage)(nil)
