// bmp package implements a reader for uncompressed bitmap files
package bmp

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// DefaultMaxBufferBytes caps the pixel buffer when Options.MaxBufferBytes is unset.
const DefaultMaxBufferBytes int64 = 256 << 20

type Pixel struct {
	B, G, R byte
}

// Returns the pixel's channels in (Red, Green, Blue) order
func (p Pixel) RGB() (r, g, b uint8) {
	return p.R, p.G, p.B
}

// BitmapImage is a decoded bitmap. Pix holds Height rows of
// Width*BytesPerPixel() bytes each, in the order the rows appear in the
// file (bottom row first unless TopDown reports true). Row padding is not
// stored.
type BitmapImage struct {
	Filename     string
	BFHeader     BitmapFileHeader
	BIHeader     BitmapInfoHeader
	Width        int
	Height       int // Number of rows, always positive
	BitsPerPixel int
	Stride       int // Bytes per row in the file (incl. padding)
	Padding      int // Padding bytes at the end of each row in the file
	Pix          []byte
}

// Options tunes the decoder.
type Options struct {
	// MaxBufferBytes is the largest pixel buffer Decode will allocate.
	// Zero or negative selects DefaultMaxBufferBytes.
	MaxBufferBytes int64
}

func (o Options) maxBufferBytes() int64 {
	if o.MaxBufferBytes <= 0 {
		return DefaultMaxBufferBytes
	}
	return o.MaxBufferBytes
}

// Returns the number of whole bytes per pixel for the given bit count
func BytesPerPixel(bitCount uint16) int {
	return int(bitCount) / 8
}

// Returns the number of filler bytes that align a row to 4 bytes
func RowPadding(width, bytesPerPixel int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// Reads a Bitmap file
func ReadBitmap(filename string) (*BitmapImage, error) {
	return ReadBitmapWithOptions(filename, Options{})
}

// Reads a Bitmap file, applying the given decoder options
func ReadBitmapWithOptions(filename string, opts Options) (*BitmapImage, error) {
	// Open the file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("bmp: %w", err)
	}
	defer file.Close()

	b, err := DecodeWithOptions(file, opts)
	if err != nil {
		return nil, err
	}
	b.Filename = filename

	return b, nil
}

// Decode reads a bitmap from r with the default options.
func Decode(r io.ReadSeeker) (*BitmapImage, error) {
	return DecodeWithOptions(r, Options{})
}

// DecodeWithOptions reads the file and info headers from the start of r,
// then loads the pixel rows found at the header's pixel offset. r is left
// open; the caller owns it.
func DecodeWithOptions(r io.ReadSeeker, opts Options) (*BitmapImage, error) {
	var hdr [FileHeaderSize + InfoHeaderSize]byte

	// Read File Header
	if err := readFull(r, hdr[:FileHeaderSize], ErrTruncatedHeader, "file header"); err != nil {
		return nil, err
	}
	bfHeader := parseFileHeader(hdr[:FileHeaderSize])

	if !bfHeader.Valid() {
		return nil, fmt.Errorf("%w: got %q, want \"BM\"", ErrInvalidSignature, bfHeader.Type[:])
	}

	// Read Info Header (only the 40 byte BITMAPINFOHEADER layout is understood)
	if err := readFull(r, hdr[FileHeaderSize:], ErrTruncatedHeader, "info header"); err != nil {
		return nil, err
	}
	biHeader := parseInfoHeader(hdr[FileHeaderSize:])

	if biHeader.Compression != 0 {
		return nil, fmt.Errorf("%w: %s (%d)", ErrUnsupportedCompression, biHeader.CompressionName(), biHeader.Compression)
	}

	width := int64(biHeader.Width)
	height := int64(biHeader.Height)
	if height < 0 {
		height = -height // Top-down rows, read order is kept as is
	}
	bytesPerPixel := BytesPerPixel(biHeader.BitCount)

	size, err := bufferSize(width, height, int64(bytesPerPixel))
	if err != nil {
		return nil, err
	}
	if limit := opts.maxBufferBytes(); size > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, size, limit)
	}

	rowLen := int(width) * bytesPerPixel
	padding := RowPadding(int(width), bytesPerPixel)

	// Seek to Pixel Array (OffBits)
	avail, err := seekPixelData(r, int64(bfHeader.OffBits))
	if err != nil {
		return nil, err
	}

	// The final row may omit its padding
	need := size + (height-1)*int64(padding)
	if need < size || avail < need {
		return nil, fmt.Errorf("%w: need %d bytes after offset %d, stream has %d", ErrTruncatedPixelData, need, bfHeader.OffBits, avail)
	}

	pix := make([]byte, size)
	for row := 0; row < int(height); row++ {
		// Read pixels of current row (excluding padding)
		if err := readFull(r, pix[row*rowLen:(row+1)*rowLen], ErrTruncatedPixelData, "pixel row"); err != nil {
			return nil, fmt.Errorf("%w (row %d of %d)", err, row, height)
		}

		// Seek over padding bytes
		if padding > 0 {
			if _, err := r.Seek(int64(padding), io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("%w: skipping padding after row %d: %v", ErrSeek, row, err)
			}
		}
	}

	return &BitmapImage{
		BFHeader:     bfHeader,
		BIHeader:     biHeader,
		Width:        int(width),
		Height:       int(height),
		BitsPerPixel: int(biHeader.BitCount),
		Stride:       rowLen + padding,
		Padding:      padding,
		Pix:          pix,
	}, nil
}

// bufferSize returns width*height*bytesPerPixel, rejecting degenerate and
// overflowing geometry.
func bufferSize(width, height, bytesPerPixel int64) (int64, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %d x %d", ErrInvalidDimensions, width, height)
	}
	if bytesPerPixel <= 0 {
		return 0, fmt.Errorf("%w: %d bytes per pixel", ErrInvalidDimensions, bytesPerPixel)
	}

	rowLen := width * bytesPerPixel
	if rowLen > math.MaxInt64/height {
		return 0, fmt.Errorf("%w: %d x %d x %d overflows", ErrInvalidDimensions, width, height, bytesPerPixel)
	}
	size := rowLen * height
	if size > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes overflows int", ErrInvalidDimensions, size)
	}

	return size, nil
}

// seekPixelData moves r to offset, which must lie within the stream, and
// returns the number of bytes left from there.
func seekPixelData(r io.Seeker, offset int64) (int64, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeek, err)
	}
	if offset > end {
		return 0, fmt.Errorf("%w: pixel offset %d is past end of stream (%d bytes)", ErrSeek, offset, end)
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeek, err)
	}
	return end - offset, nil
}

// readFull fills b from r. A short read is reported as kind; any other
// read error is returned wrapped.
func readFull(r io.Reader, b []byte, kind error, what string) error {
	n, err := io.ReadFull(r, b)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: got %d of %d bytes", kind, what, n, len(b))
	}
	return fmt.Errorf("bmp: reading %s: %w", what, err)
}

// Returns the number of bytes each pixel occupies in Pix
func (b *BitmapImage) BytesPerPixel() int {
	return b.BitsPerPixel / 8
}

// Reports whether the header declared top-down rows (negative height)
func (b *BitmapImage) TopDown() bool {
	return b.BIHeader.Height < 0
}

// Returns the pixel at column x of buffer row y. Row 0 is the first row
// stored in the file. Only 24-bit images can be read this way.
func (b *BitmapImage) PixelAt(x, y int) (Pixel, error) {
	if b.BitsPerPixel != 24 {
		return Pixel{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, b.BitsPerPixel)
	}
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Pixel{}, fmt.Errorf("%w: (%d, %d) in %d x %d", ErrOutOfBounds, x, y, b.Width, b.Height)
	}

	i := (y*b.Width + x) * 3
	return Pixel{B: b.Pix[i], G: b.Pix[i+1], R: b.Pix[i+2]}, nil
}

// Returns the first n pixels of the buffer (fewer if the image is smaller)
func (b *BitmapImage) Pixels(n int) ([]Pixel, error) {
	if b.BitsPerPixel != 24 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, b.BitsPerPixel)
	}
	n = max(0, min(n, b.Width*b.Height))

	pixels := make([]Pixel, n)
	for i := range pixels {
		p := b.Pix[i*3 : i*3+3]
		pixels[i] = Pixel{B: p[0], G: p[1], R: p[2]}
	}
	return pixels, nil
}
