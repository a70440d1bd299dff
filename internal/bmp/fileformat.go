// BMP-specific structs and types
package bmp

import "encoding/binary"

const (
	FileHeaderSize = 14 // Size of BITMAPFILEHEADER on disk
	InfoHeaderSize = 40 // Size of BITMAPINFOHEADER on disk

	// "BM" read as a little-endian uint16
	signature = 0x4d42
)

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Valid reports whether the header carries the "BM" signature.
func (h *BitmapFileHeader) Valid() bool {
	return binary.LittleEndian.Uint16(h.Type[:]) == signature
}

// Fields are pulled out one by one, the on-disk layout is packed and
// doesn't match Go's struct alignment.
func parseFileHeader(b []byte) BitmapFileHeader {
	_ = b[FileHeaderSize-1]

	return BitmapFileHeader{
		Type:      [2]byte{b[0], b[1]},
		Size:      binary.LittleEndian.Uint32(b[2:6]),
		Reserved1: binary.LittleEndian.Uint16(b[6:8]),
		Reserved2: binary.LittleEndian.Uint16(b[8:10]),
		OffBits:   binary.LittleEndian.Uint32(b[10:14]),
	}
}

func parseInfoHeader(b []byte) BitmapInfoHeader {
	_ = b[InfoHeaderSize-1]

	return BitmapInfoHeader{
		Size:            binary.LittleEndian.Uint32(b[0:4]),
		Width:           int32(binary.LittleEndian.Uint32(b[4:8])),
		Height:          int32(binary.LittleEndian.Uint32(b[8:12])),
		Planes:          binary.LittleEndian.Uint16(b[12:14]),
		BitCount:        binary.LittleEndian.Uint16(b[14:16]),
		Compression:     binary.LittleEndian.Uint32(b[16:20]),
		SizeImage:       binary.LittleEndian.Uint32(b[20:24]),
		XPixelsPerM:     int32(binary.LittleEndian.Uint32(b[24:28])),
		YPixelsPerM:     int32(binary.LittleEndian.Uint32(b[28:32])),
		ColorsUsed:      binary.LittleEndian.Uint32(b[32:36]),
		ColorsImportant: binary.LittleEndian.Uint32(b[36:40]),
	}
}

// Compression names for the values BITMAPINFOHEADER can carry
var compressionNames = map[uint32]string{
	0: "BI_RGB",
	1: "BI_RLE8",
	2: "BI_RLE4",
	3: "BI_BITFIELDS",
	4: "BI_JPEG",
	5: "BI_PNG",
}

// Returns the name of the compression method (e.g. "BI_RGB")
func (h *BitmapInfoHeader) CompressionName() string {
	if name, ok := compressionNames[h.Compression]; ok {
		return name
	}
	return "unknown"
}
