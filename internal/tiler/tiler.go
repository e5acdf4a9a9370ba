package tiler

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// padColor fills the unused area of the final tile.
var padColor = color.NRGBA{R: 0, G: 0, B: 0, A: 0}

// TileInfo describes one written tile. It holds no pixel data.
type TileInfo struct {
	// Index is the zero-based position of the tile, left to right.
	Index int `json:"index"`

	// Path is the file the tile was written to.
	Path string `json:"path"`

	// ContentWidth is the width of source content in the tile. It is below
	// TileSize only for a padded final tile.
	ContentWidth int `json:"content_width"`

	// Padded reports whether transparent fill was added on the right.
	Padded bool `json:"padded"`

	// AverageColor is the alpha-weighted mean colour of the tile content as
	// "#rrggbb", empty when the content is fully transparent.
	AverageColor string `json:"average_color,omitempty"`
}

// Result is returned by a successful Split.
type Result struct {
	Count     int        `json:"tile_count"`
	OutputDir string     `json:"output_dir"`
	Source    SourceInfo `json:"source"`
	Layout    Layout     `json:"layout"`
	Tiles     []TileInfo `json:"tiles"`
}

// Tiler cuts images into TileSize x TileSize tiles.
//
// A Tiler holds no per-run state and may be reused. Concurrent runs writing
// to the same output directory overwrite each other's files.
type Tiler struct {
	logger zerolog.Logger
}

// Option configures a Tiler.
type Option func(*Tiler)

// WithLogger sets the logger used for progress messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tiler) {
		t.logger = logger
	}
}

// New creates a Tiler. Without options it logs nothing.
func New(opts ...Option) *Tiler {
	t := &Tiler{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Split cuts the image at sourcePath into tiles written to outputDir and
// returns how many tiles were written.
func Split(sourcePath, outputDir string) (int, error) {
	res, err := New().Split(sourcePath, outputDir)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// TileName returns the file name of the tile at index i.
func TileName(i int) string {
	return fmt.Sprintf("tile_%d.png", i)
}

// Plan decodes the image at sourcePath and returns its layout without writing
// anything.
func (t *Tiler) Plan(sourcePath string) (*Layout, error) {
	_, info, err := Load(sourcePath)
	if err != nil {
		return nil, err
	}
	layout, err := PlanSize(info.Width, info.Height)
	if err != nil {
		return nil, &DecodeError{Path: sourcePath, Err: err}
	}
	return &layout, nil
}

// Split runs the full pipeline for one image:
//
//  1. Decode sourcePath.
//  2. Convert to NRGBA so every pixel has an alpha channel.
//  3. Scale to a height of TileSize with Lanczos resampling, unless the height
//     already matches.
//  4. Create outputDir and any missing parents.
//  5. Crop left to right in TileSize steps, padding the last crop onto a
//     transparent TileSize x TileSize canvas when it is narrower.
//  6. Write each tile as PNG to outputDir/tile_<index>.png.
//
// The returned error is a *DecodeError, *DirectoryCreateError or *WriteError.
// A failed run returns no Result; tiles written before a WriteError stay on
// disk.
func (t *Tiler) Split(sourcePath, outputDir string) (*Result, error) {
	log := t.logger.With().Str("source", sourcePath).Str("output_dir", outputDir).Logger()

	src, info, err := Load(sourcePath)
	if err != nil {
		return nil, err
	}
	layout, err := PlanSize(info.Width, info.Height)
	if err != nil {
		return nil, &DecodeError{Path: sourcePath, Err: err}
	}

	img := normalize(src, info, layout, log)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, &DirectoryCreateError{Path: outputDir, Err: err}
	}

	res := &Result{
		OutputDir: outputDir,
		Source:    *info,
		Layout:    layout,
		Tiles:     make([]TileInfo, 0, layout.Count),
	}

	for i, cut := range layout.Cuts() {
		tile := imaging.Crop(img, cut)
		ti := TileInfo{
			Index:        i,
			Path:         filepath.Join(outputDir, TileName(i)),
			ContentWidth: cut.Dx(),
			AverageColor: averageColor(tile, tile.Bounds()),
		}

		if b := tile.Bounds(); b.Dx() < TileSize || b.Dy() < TileSize {
			tile = pad(tile)
			ti.Padded = true
		}

		if err := imgio.Save(ti.Path, tile, imgio.PNGEncoder()); err != nil {
			return nil, &WriteError{Path: ti.Path, Index: i, Err: err}
		}

		log.Debug().
			Int("index", i).
			Int("content_width", ti.ContentWidth).
			Bool("padded", ti.Padded).
			Msg("tile written")
		res.Tiles = append(res.Tiles, ti)
	}

	res.Count = len(res.Tiles)
	log.Info().
		Int("tiles", res.Count).
		Int("width", layout.Width).
		Bool("resized", layout.Resized).
		Msg("image split")
	return res, nil
}

// normalize returns an NRGBA copy of src with height TileSize.
func normalize(src image.Image, info *SourceInfo, layout Layout, log zerolog.Logger) *image.NRGBA {
	img := imaging.Clone(src)
	if !info.HasAlpha {
		log.Debug().Str("format", info.Format).Msg("converted to NRGBA")
	}

	if layout.Resized {
		img = imaging.Resize(img, layout.Width, TileSize, imaging.Lanczos)
		log.Debug().
			Int("from_width", info.Width).
			Int("from_height", info.Height).
			Int("to_width", layout.Width).
			Msg("resized")
	}
	return img
}

// pad places tile at the top-left of a transparent TileSize x TileSize canvas.
func pad(tile *image.NRGBA) *image.NRGBA {
	canvas := imaging.New(TileSize, TileSize, padColor)
	return imaging.Paste(canvas, tile, image.Pt(0, 0))
}
