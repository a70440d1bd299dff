// bmpinfo decodes an uncompressed bitmap and prints its headers and pixels
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/anas-shakeel/bmpinfo/internal/bmp"
)

type config struct {
	filename string
	samples  int
	mean     bool
	preview  bool
	gray     bool
	pngPath  string
	maxBytes int64
}

func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("bmpinfo", flag.ContinueOnError)
	fs.IntVar(&cfg.samples, "n", 10, "number of pixels to print (24-bit only)")
	fs.BoolVar(&cfg.mean, "mean", false, "print the mean of each color channel")
	fs.BoolVar(&cfg.preview, "preview", false, "print the image as colored blocks (small images only)")
	fs.BoolVar(&cfg.gray, "gray", false, "render the preview in grayscale")
	fs.StringVar(&cfg.pngPath, "png", "", "export the decoded image to this PNG file")
	fs.Int64Var(&cfg.maxBytes, "max-bytes", bmp.DefaultMaxBufferBytes, "largest pixel buffer to allocate")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bmpinfo [flags] [BMP_FILE]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch fs.NArg() {
	case 0:
		cfg.filename = "./images/bmp_24.bmp"
	case 1:
		cfg.filename = fs.Arg(0)
	default:
		fs.Usage()
		return config{}, fmt.Errorf("expected one file, got %d", fs.NArg())
	}

	return cfg, nil
}

func run(cfg config, w io.Writer) error {
	bitmap, err := bmp.ReadBitmapWithOptions(cfg.filename, bmp.Options{MaxBufferBytes: cfg.maxBytes})
	if err != nil {
		return err
	}

	bitmap.PrintMetadata(w)

	// Pixel access only makes sense for 24-bit images
	if bitmap.BitsPerPixel != 24 {
		fmt.Fprintf(w, "\nPixels not shown: %d-bit images are not interpreted\n", bitmap.BitsPerPixel)
		return nil
	}

	if cfg.samples > 0 {
		fmt.Fprintln(w)
		if err := bitmap.PrintPixels(w, cfg.samples); err != nil {
			return err
		}
	}

	if cfg.mean {
		r, g, b, err := bitmap.ChannelMeans()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nMean: R=%d, G=%d, B=%d\n", r, g, b)
	}

	if cfg.preview {
		fmt.Fprintln(w)
		if err := bitmap.PrintBitmap(w, cfg.gray); err != nil {
			return err
		}
	}

	if cfg.pngPath != "" {
		if err := exportPNG(bitmap, cfg.pngPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nWrote %s\n", cfg.pngPath)
	}

	return nil
}

func exportPNG(bitmap *bmp.BitmapImage, path string) error {
	img, err := bitmap.NRGBA()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
