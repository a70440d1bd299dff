package bmp

import (
	"fmt"
	"image"
)

// NRGBA converts a 24-bit bitmap into an opaque image with the top row
// first. Bottom-up files are flipped here; Pix itself is left untouched.
func (b *BitmapImage) NRGBA() (*image.NRGBA, error) {
	if b.BitsPerPixel != 24 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, b.BitsPerPixel)
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for row := 0; row < b.Height; row++ {
		y := b.Height - row - 1
		if b.TopDown() {
			y = row
		}

		src := b.Pix[row*b.Width*3 : (row+1)*b.Width*3]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		for x := 0; x < b.Width; x++ {
			dst[x*4+0] = src[x*3+2]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+0]
			dst[x*4+3] = 0xff
		}
	}

	return img, nil
}
