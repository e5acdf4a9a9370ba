package tiler

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// averageColor returns the mean colour of the non-transparent pixels inside r
// as "#rrggbb". Alpha is used as the weight so partly transparent pixels count
// proportionally. A fully transparent region yields an empty string.
func averageColor(img *image.NRGBA, r image.Rectangle) string {
	var sumR, sumG, sumB, sumA float64
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			a := float64(c.A)
			sumR += float64(c.R) * a
			sumG += float64(c.G) * a
			sumB += float64(c.B) * a
			sumA += a
		}
	}
	if sumA == 0 {
		return ""
	}

	avg := colorful.Color{
		R: sumR / sumA / 255,
		G: sumG / sumA / 255,
		B: sumB / sumA / 255,
	}
	return avg.Clamped().Hex()
}
