package bmp

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"
)

// gradient returns an opaque image with a distinct color per pixel.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 30), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

func TestDecode_MatchesReferenceEncoder(t *testing.T) {
	// Widths 7 and 6 need 3 and 2 bytes of padding per row
	for _, size := range []image.Point{{7, 3}, {6, 5}, {4, 4}, {1, 1}} {
		src := gradient(size.X, size.Y)

		var buf bytes.Buffer
		require.NoError(t, xbmp.Encode(&buf, src))

		img, err := Decode(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, 24, img.BitsPerPixel)
		require.Equal(t, size.X, img.Width)
		require.Equal(t, size.Y, img.Height)

		// Rows are kept in file order, so buffer row 0 is the bottom row
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				p, err := img.PixelAt(x, size.Y-1-y)
				require.NoError(t, err)

				want := src.NRGBAAt(x, y)
				assert.Equal(t, Pixel{B: want.B, G: want.G, R: want.R}, p, "%v pixel (%d, %d)", size, x, y)
			}
		}

		out, err := img.NRGBA()
		require.NoError(t, err)
		assert.Equal(t, src.Pix, out.Pix, "%v", size)
	}
}

func TestNRGBA_MatchesReferenceDecoder(t *testing.T) {
	raw := fourByTwo.bytes()

	want, err := xbmp.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	img, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	got, err := img.NRGBA()
	require.NoError(t, err)

	require.Equal(t, want.Bounds(), got.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.NRGBAModel.Convert(want.At(x, y)), got.At(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestNRGBA_TopDown(t *testing.T) {
	spec := fourByTwo
	spec.height = -2
	img, err := Decode(bytes.NewReader(spec.bytes()))
	require.NoError(t, err)

	out, err := img.NRGBA()
	require.NoError(t, err)

	// First file row stays on top
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xff}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xff}, out.NRGBAAt(0, 1))
	assert.Equal(t, spec.data, img.Pix)
}

func TestNRGBA_UnsupportedBitDepth(t *testing.T) {
	img := &BitmapImage{Width: 1, Height: 1, BitsPerPixel: 32, Pix: make([]byte, 4)}
	_, err := img.NRGBA()
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)
}
