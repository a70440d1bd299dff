package bmp

import (
	"fmt"
	"io"

	"github.com/anas-shakeel/bmpinfo/internal/utils"
)

// Print the Metadata bitmap (in human-readable format)
func (b *BitmapImage) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", b.BFHeader.Size)
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.Height)
	fmt.Fprintf(w, "TopDown: \t%v\n", b.TopDown())
	fmt.Fprintf(w, "Planes: \t%v\n", b.BIHeader.Planes)
	fmt.Fprintf(w, "BitCount: \t%vbits\n", b.BitsPerPixel)
	fmt.Fprintf(w, "Compression: \t%v\n", b.BIHeader.CompressionName())
	fmt.Fprintf(w, "HeaderSize: \t%v bytes\n", b.BIHeader.Size)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", b.BFHeader.OffBits)
	fmt.Fprintf(w, "PixelCount: \t%v pixels\n", b.Width*b.Height)
	fmt.Fprintf(w, "Stride: \t%v bytes\n", b.Stride)
	fmt.Fprintf(w, "Padding: \t%v bytes\n", b.Padding)
	fmt.Fprintf(w, "Resolution: \t%v x %v px/m\n", b.BIHeader.XPixelsPerM, b.BIHeader.YPixelsPerM)
}

// Print the first n pixels as RGB values
func (b *BitmapImage) PrintPixels(w io.Writer, n int) error {
	pixels, err := b.Pixels(n)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "First %d pixels (RGB):\n", len(pixels))
	for i, p := range pixels {
		r, g, bl := p.RGB()
		fmt.Fprintf(w, "Pixel %d: R=%d, G=%d, B=%d\n", i, r, g, bl)
	}
	return nil
}

// Print the bitmap as colored blocks, top row first. Use for small images only
func (b *BitmapImage) PrintBitmap(w io.Writer, gray bool) error {
	img, err := b.NRGBA()
	if err != nil {
		return err
	}

	rgb := make([]byte, b.Width*3)
	for y := 0; y < b.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			copy(rgb[x*3:x*3+3], row[x*4:x*4+3])
		}
		fmt.Fprintln(w, utils.ColoredRow("  ", rgb, gray))
	}
	return nil
}
