package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/sparkstudio/pkg/ports"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	bounds := canvas.ToImage().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	data, err := r.EncodeImage(solid(30, 20, color.RGBA{B: 255, A: 255}), ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := r.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeInvalid(t *testing.T) {
	r := New()
	if _, err := r.DecodeImage([]byte("not a png"), ports.FormatPNG); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestRenderer_ResizeImage_HiDPIToViewport(t *testing.T) {
	r := New()

	// A 2x screenshot of a 1200x628 viewport.
	resized := r.ResizeImage(image.NewRGBA(image.Rect(0, 0, 2400, 1256)), 1200, 628)

	bounds := resized.Bounds()
	if bounds.Dx() != 1200 || bounds.Dy() != 628 {
		t.Errorf("expected 1200x628, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.DrawRect(10, 10, 30, 30, color.RGBA{R: 255, A: 255})

	red, g, _, _ := canvas.ToImage().At(20, 20).RGBA()
	if red == 0 || g != 0 {
		t.Error("expected red pixel inside rectangle")
	}
}

func TestCanvas_DrawRectStroke(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.DrawRectStroke(10, 10, 30, 30, color.Black, 2)

	red, _, _, _ := canvas.ToImage().At(10, 20).RGBA()
	if red == 0xffff {
		t.Error("expected dark pixel on border")
	}
}

func TestCanvas_DrawImageScaled_KeepsAspect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	// A tall 1:2 image fitted into a square box occupies the middle 50 columns.
	canvas.DrawImageScaled(solid(40, 80, color.RGBA{R: 255, A: 255}), 0, 0, 100, 100)
	img := canvas.ToImage()

	if _, g, _, _ := img.At(50, 50).RGBA(); g != 0 {
		t.Error("expected red pixel at center")
	}
	if _, g, _, _ := img.At(5, 50).RGBA(); g == 0 {
		t.Error("expected white letterbox at left edge")
	}
}

func TestCanvas_DrawImageScaled_EmptyImage(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(10, 10, color.White)

	// Should not panic
	canvas.DrawImageScaled(image.NewRGBA(image.Rect(0, 0, 0, 0)), 0, 0, 10, 10)
}

func TestCanvas_DrawText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(200, 50, color.White)

	canvas.DrawText("hero-launch · ig-feed", 100, 25, ports.TextStyle{
		FontSize: 14,
		Color:    color.Black,
		Align:    ports.AlignCenter,
	})

	img := canvas.ToImage()
	dark := false
	for x := 0; x < 200 && !dark; x++ {
		if r, _, _, _ := img.At(x, 25).RGBA(); r < 0x8000 {
			dark = true
		}
	}
	if !dark {
		t.Error("expected text pixels on the baseline row")
	}
}
