package bmp

import "fmt"

// Byte offset of each channel inside a 24-bit BGR pixel
var channelOffsets = map[string]int{
	"blue":  0,
	"green": 1,
	"red":   2,
}

// Returns a single channel of the image as a Width*Height plane, in
// buffer order. channel can be one of (`red`, `green`, and `blue`)
func (b *BitmapImage) Channel(channel string) ([]byte, error) {
	offset, ok := channelOffsets[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %q (only red, green, and blue are supported)", ErrUnknownChannel, channel)
	}
	if b.BitsPerPixel != 24 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, b.BitsPerPixel)
	}

	plane := make([]byte, b.Width*b.Height)
	for i := range plane {
		plane[i] = b.Pix[i*3+offset]
	}
	return plane, nil
}

// Returns the (integer) mean of each color channel
func (b *BitmapImage) ChannelMeans() (red, green, blue int, err error) {
	if b.BitsPerPixel != 24 {
		return 0, 0, 0, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, b.BitsPerPixel)
	}

	n := b.Width * b.Height
	if n == 0 {
		return 0, 0, 0, nil
	}

	var sumR, sumG, sumB uint64
	for i := 0; i < n*3; i += 3 {
		sumB += uint64(b.Pix[i])
		sumG += uint64(b.Pix[i+1])
		sumR += uint64(b.Pix[i+2])
	}

	return int(sumR / uint64(n)), int(sumG / uint64(n)), int(sumB / uint64(n)), nil
}
