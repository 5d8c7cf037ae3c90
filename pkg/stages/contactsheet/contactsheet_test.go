package contactsheet

import (
	"context"
	"errors"
	"testing"

	"github.com/user/sparkstudio/pkg/adapters/logger"
	"github.com/user/sparkstudio/pkg/mocks"
	"github.com/user/sparkstudio/pkg/pipeline"
)

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/out/hero-launch_ig-feed.png", mocks.BlankPNG(1080, 1080))
	fs.WriteFile("/out/hero-launch_twitter.png", mocks.BlankPNG(1200, 675))
	fs.WriteFile("/out/urgency-cta_ig-story.png", mocks.BlankPNG(1080, 1920))

	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ContactSheetInput{
		Items: []pipeline.SheetItem{
			{Label: "hero-launch · ig-feed", Path: "/out/hero-launch_ig-feed.png"},
			{Label: "hero-launch · twitter", Path: "/out/hero-launch_twitter.png"},
			{Label: "urgency-cta · ig-story", Path: "/out/urgency-cta_ig-story.png"},
		},
		OutPath:   "/out/contact-sheet.png",
		Columns:   2,
		CellWidth: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 columns, 2 rows of 100px cells with 40px labels and 24px gaps.
	bounds := result.Image.Bounds()
	if bounds.Dx() != 2*100+3*24 || bounds.Dy() != 2*(100+40)+3*24 {
		t.Errorf("unexpected sheet size %dx%d", bounds.Dx(), bounds.Dy())
	}

	if len(renderer.Canvases) != 1 {
		t.Fatalf("expected 1 canvas, got %d", len(renderer.Canvases))
	}
	canvas := renderer.Canvases[0]
	if canvas.ScaledImages != 3 || len(canvas.Texts) != 3 {
		t.Errorf("expected 3 cells, got %d images and %d labels", canvas.ScaledImages, len(canvas.Texts))
	}
	if canvas.Texts[2] != "urgency-cta · ig-story" {
		t.Errorf("unexpected label %q", canvas.Texts[2])
	}

	if _, ok := fs.GetFile("/out/contact-sheet.png"); !ok {
		t.Error("expected contact sheet to be written")
	}
}

func TestStage_Execute_ColumnsClampedToItems(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/out/a.png", mocks.BlankPNG(10, 10))

	stage := NewStage(&mocks.Renderer{}, fs, logger.NewNoop())
	result, err := stage.Execute(context.Background(), pipeline.ContactSheetInput{
		Items:   []pipeline.SheetItem{{Label: "a", Path: "/out/a.png"}},
		OutPath: "/out/sheet.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w := result.Image.Bounds().Dx(); w != defaultCellWidth+2*gap {
		t.Errorf("expected single-column width %d, got %d", defaultCellWidth+2*gap, w)
	}
}

func TestStage_Execute_NoItems(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, mocks.NewFileSystem(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ContactSheetInput{OutPath: "/out/sheet.png"})
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestStage_Execute_MissingFile(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, mocks.NewFileSystem(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ContactSheetInput{
		Items:   []pipeline.SheetItem{{Label: "a", Path: "/out/missing.png"}},
		OutPath: "/out/sheet.png",
	})
	if err == nil {
		t.Fatal("expected read error")
	}
}
