package bmp

import "errors"

var (
	// ErrInvalidSignature is returned when the file doesn't start with "BM".
	ErrInvalidSignature = errors.New("bmp: invalid signature")

	// ErrTruncatedHeader is returned when the stream ends inside the file or info header.
	ErrTruncatedHeader = errors.New("bmp: truncated header")

	// ErrTruncatedPixelData is returned when the stream ends inside a pixel row.
	ErrTruncatedPixelData = errors.New("bmp: truncated pixel data")

	// ErrSeek is returned when the pixel data offset can't be reached.
	ErrSeek = errors.New("bmp: seek failed")

	// ErrInvalidDimensions is returned for zero, negative or overflowing geometry.
	ErrInvalidDimensions = errors.New("bmp: invalid dimensions")

	// ErrAllocation is returned when the pixel buffer would exceed the decoder limit.
	ErrAllocation = errors.New("bmp: pixel buffer allocation failed")

	// ErrUnsupportedCompression is returned for anything other than BI_RGB.
	ErrUnsupportedCompression = errors.New("bmp: unsupported compression")

	// ErrUnsupportedBitDepth is returned when pixels of a non 24-bit image are accessed.
	ErrUnsupportedBitDepth = errors.New("bmp: unsupported bit depth")

	// ErrOutOfBounds is returned when a pixel outside the image is requested.
	ErrOutOfBounds = errors.New("bmp: pixel out of bounds")

	// ErrUnknownChannel is returned for a channel name other than red, green or blue.
	ErrUnknownChannel = errors.New("bmp: unknown color channel")
)
