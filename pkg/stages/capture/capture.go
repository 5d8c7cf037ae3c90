// Package capture implements the headless render stage: HTML in, PNG file out.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/sparkstudio/pkg/pipeline"
	"github.com/user/sparkstudio/pkg/ports"
)

// ErrEmptyScreenshot is returned when a capturer produces no image data.
var ErrEmptyScreenshot = errors.New("capture: browser returned an empty screenshot")

// Stage renders HTML in a headless browser and writes the PNG.
type Stage struct {
	capturer ports.HTMLCapturer
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewStage creates a new capture stage.
func NewStage(capturer ports.HTMLCapturer, renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		capturer: capturer,
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("capture"),
	}
}

// Execute captures the document and writes it to input.OutPath, creating
// parent directories as needed. The written PNG always has exactly the
// viewport's pixel dimensions.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptureInput) (pipeline.CaptureResult, error) {
	result := pipeline.CaptureResult{Path: input.OutPath}
	width, height := input.Size.Width, input.Size.Height

	s.logger.Debug("Capturing %dx%d viewport", width, height)
	data, err := s.capturer.CapturePNG(ctx, input.HTML, width, height)
	if err != nil {
		return result, err
	}
	if len(data) == 0 {
		return result, ErrEmptyScreenshot
	}

	img, err := s.renderer.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		return result, fmt.Errorf("decode screenshot: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		s.logger.Warn("Screenshot is %dx%d, resampling to %dx%d", bounds.Dx(), bounds.Dy(), width, height)
		resized := s.renderer.ResizeImage(img, width, height)
		data, err = s.renderer.EncodeImage(resized, ports.FormatPNG, 0)
		if err != nil {
			return result, fmt.Errorf("encode screenshot: %w", err)
		}
		result.Resized = true
	}

	if err := s.fs.WriteFile(input.OutPath, data); err != nil {
		return result, fmt.Errorf("write %s: %w", input.OutPath, err)
	}
	s.logger.Debug("Wrote %s (%d bytes)", input.OutPath, len(data))

	result.Bytes = len(data)
	result.Width = width
	result.Height = height
	return result, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult] = (*Stage)(nil)
