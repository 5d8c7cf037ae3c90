package pipeline

import (
	"image"

	"github.com/user/sparkstudio/pkg/sizes"
	"github.com/user/sparkstudio/pkg/templates"
)

// =============================================================================
// Prepare Stage Types
// =============================================================================

// PrepareInput names the template, placement and copy for one creative.
type PrepareInput struct {
	Template string
	SizeID   string
	Vars     templates.Vars
}

// PrepareResult is the self-contained HTML document ready for the browser.
type PrepareResult struct {
	HTML string
	Size sizes.Size
}

// =============================================================================
// Capture Stage Types
// =============================================================================

// CaptureInput contains the resolved document and where to write the PNG.
type CaptureInput struct {
	HTML    string
	Size    sizes.Size
	OutPath string
}

// CaptureResult describes the written PNG.
type CaptureResult struct {
	Path    string
	Bytes   int
	Width   int
	Height  int
	Resized bool // True if the screenshot had to be resampled to the viewport
}

// =============================================================================
// Contact Sheet Stage Types
// =============================================================================

// SheetItem is one thumbnail on a contact sheet.
type SheetItem struct {
	Label string
	Path  string
}

// ContactSheetInput lists the images to lay out.
type ContactSheetInput struct {
	Items     []SheetItem
	OutPath   string
	Columns   int // Thumbnails per row (default: 4)
	CellWidth int // Thumbnail box width in pixels (default: 320)
}

// ContactSheetResult holds the composed sheet.
type ContactSheetResult struct {
	Path  string
	Image image.Image
}
