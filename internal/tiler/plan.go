package tiler

import (
	"fmt"
	"image"
	"math"
)

// TileSize is the width and height of every output tile, in pixels.
const TileSize = 100

// Layout describes how a source image of a given size is cut into tiles.
type Layout struct {
	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`

	// Width and Height are the normalized dimensions. Height is always TileSize.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Resized is false when the source height already equals TileSize.
	Resized bool `json:"resized"`

	// Count is the number of tiles, ceil(Width / TileSize).
	Count int `json:"tile_count"`

	// LastWidth is the width of real content in the final tile. It equals
	// TileSize unless the final tile is padded.
	LastWidth int `json:"last_tile_width"`
}

// PlanSize computes the layout for a width x height source without touching
// any pixels.
//
// When height differs from TileSize the image is scaled uniformly so the new
// height is exactly TileSize and the new width is round(width*TileSize/height),
// never less than 1.
func PlanSize(width, height int) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	l := Layout{
		SourceWidth:  width,
		SourceHeight: height,
		Width:        width,
		Height:       height,
	}
	if height != TileSize {
		l.Width = normalizedWidth(width, height)
		l.Height = TileSize
		l.Resized = true
	}

	l.Count = (l.Width + TileSize - 1) / TileSize
	l.LastWidth = l.Width - (l.Count-1)*TileSize
	return l, nil
}

// Cuts returns the crop rectangle of every tile in left-to-right order.
// Only the last rectangle can be narrower than TileSize.
func (l Layout) Cuts() []image.Rectangle {
	cuts := make([]image.Rectangle, 0, l.Count)
	for x := 0; x < l.Width; x += TileSize {
		cuts = append(cuts, image.Rect(x, 0, min(x+TileSize, l.Width), l.Height))
	}
	return cuts
}

func normalizedWidth(width, height int) int {
	w := int(math.Round(float64(width) * TileSize / float64(height)))
	return max(1, w)
}
