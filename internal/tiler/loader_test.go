package tiler

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PNG(t *testing.T) {
	path := createTestImage(t, t.TempDir(), 120, 80, color.NRGBA{255, 0, 0, 255})

	img, info, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, img)

	assert.Equal(t, 120, info.Width)
	assert.Equal(t, 80, info.Height)
	assert.Equal(t, "png", info.Format)
	assert.True(t, info.HasAlpha)
}

func TestLoad_GIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	pal := image.NewPaletted(image.Rect(0, 0, 40, 20), color.Palette{color.Black, color.White})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gif.Encode(f, pal, nil))
	require.NoError(t, f.Close())

	_, info, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gif", info.Format)
	assert.False(t, info.HasAlpha)
}

func TestLoad_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	src := createTestImage(t, dir, 10, 10, color.NRGBA{0, 0, 0, 255})
	renamed := filepath.Join(dir, "image.data")
	require.NoError(t, os.Rename(src, renamed))

	_, info, err := Load(renamed)
	require.NoError(t, err)
	assert.Equal(t, "unknown", info.Format)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte{0x89, 'P', 'N', 'G'}, 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.png")},
		{"truncated file", garbage},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, info, err := Load(tt.path)
			assert.Nil(t, img)
			assert.Nil(t, info)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "got %T: %v", err, err)
			assert.Equal(t, tt.path, decodeErr.Path)
			assert.Contains(t, err.Error(), "failed to decode image")
		})
	}
}
