package tiler

import (
	"errors"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

var errEmptyImage = errors.New("image has no pixels")

// SourceInfo describes a decoded source image before normalization.
type SourceInfo struct {
	// Width is the decoded width in pixels, after EXIF orientation is applied.
	Width int `json:"width"`

	// Height is the decoded height in pixels, after EXIF orientation is applied.
	Height int `json:"height"`

	// Format is the format name derived from the file extension ("png", "jpeg",
	// "gif", "bmp", "tiff") or "unknown" when the extension is not recognized.
	// Decoding itself sniffs the content, so an unknown extension is not an error.
	Format string `json:"format"`

	// HasAlpha reports whether the decoded pixel type carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`
}

// Load decodes the image at path.
//
// PNG, JPEG, GIF, BMP and TIFF are decoded through disintegration/imaging and
// WebP through golang.org/x/image. JPEG orientation tags are honoured so the
// tiles match what an image viewer shows.
//
// Every failure, including a missing file, is returned as a *DecodeError.
func Load(path string) (image.Image, *SourceInfo, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, nil, &DecodeError{Path: path, Err: errEmptyImage}
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	return img, &SourceInfo{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: hasAlpha,
	}, nil
}
