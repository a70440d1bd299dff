package main

import (
	"bytes"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmpinfo/internal/bmp"
)

// 2x1 24-bit bitmap (red, blue) with two bytes of row padding
var tinyBitmap = []byte{
	'B', 'M', 0x3E, 0, 0, 0, 0, 0, 0, 0, 0x36, 0, 0, 0,
	0x28, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 1, 0, 24, 0,
	0, 0, 0, 0, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00,
}

func writeBitmap(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.bmp")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "./images/bmp_24.bmp", cfg.filename)
	assert.Equal(t, 10, cfg.samples)
	assert.Equal(t, bmp.DefaultMaxBufferBytes, cfg.maxBytes)

	cfg, err = parseFlags([]string{"-n", "3", "-mean", "-preview", "-gray", "-png", "out.png", "-max-bytes", "99", "x.bmp"})
	require.NoError(t, err)
	assert.Equal(t, config{
		filename: "x.bmp",
		samples:  3,
		mean:     true,
		preview:  true,
		gray:     true,
		pngPath:  "out.png",
		maxBytes: 99,
	}, cfg)

	_, err = parseFlags([]string{"a.bmp", "b.bmp"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun(t *testing.T) {
	path := writeBitmap(t, tinyBitmap)
	pngPath := filepath.Join(t.TempDir(), "tiny.png")

	var out bytes.Buffer
	err := run(config{filename: path, samples: 10, mean: true, preview: true, pngPath: pngPath}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Width: \t\t2 px\n")
	assert.Contains(t, out.String(), "Padding: \t2 bytes\n")
	assert.Contains(t, out.String(), "Pixel 0: R=255, G=0, B=0\n")
	assert.Contains(t, out.String(), "Pixel 1: R=0, G=0, B=255\n")
	assert.Contains(t, out.String(), "Mean: R=127, G=0, B=127\n")

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}

func TestRun_DecodeErrors(t *testing.T) {
	bad := append([]byte(nil), tinyBitmap...)
	bad[0] = 'X'
	err := run(config{filename: writeBitmap(t, bad)}, &bytes.Buffer{})
	assert.ErrorIs(t, err, bmp.ErrInvalidSignature)

	err = run(config{filename: writeBitmap(t, tinyBitmap), maxBytes: 1}, &bytes.Buffer{})
	assert.ErrorIs(t, err, bmp.ErrAllocation)

	err = run(config{filename: writeBitmap(t, tinyBitmap[:58])}, &bytes.Buffer{})
	assert.ErrorIs(t, err, bmp.ErrTruncatedPixelData)
}

func TestRun_Non24Bit(t *testing.T) {
	data := append([]byte(nil), tinyBitmap...)
	data[28] = 32 // 2 pixels * 4 bytes, no padding

	var out bytes.Buffer
	require.NoError(t, run(config{filename: writeBitmap(t, data), samples: 10, preview: true}, &out))
	assert.Contains(t, out.String(), "Pixels not shown: 32-bit images are not interpreted")
	assert.NotContains(t, out.String(), "Pixel 0:")
}
