package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	resampler "github.com/tphakala/go-image-resampler"
)

// parseAlgorithm maps a CLI algorithm name to the library enum. The
// second return reports the auto-selection mode, where the concrete
// algorithm is irrelevant.
func parseAlgorithm(name string) (resampler.Algorithm, bool, error) {
	switch strings.ToLower(name) {
	case "auto":
		return resampler.AlgorithmLanczos, true, nil
	case "nearest":
		return resampler.AlgorithmNearest, false, nil
	case "bilinear":
		return resampler.AlgorithmBilinear, false, nil
	case "gamma", "gamma-bilinear":
		return resampler.AlgorithmGammaBilinear, false, nil
	case "lanczos":
		return resampler.AlgorithmLanczos, false, nil
	default:
		return 0, false, fmt.Errorf("unknown algorithm %q (want auto, nearest, bilinear, gamma, or lanczos)", name)
	}
}

// decodeImage reads a PNG or BMP file, chosen by extension.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode PNG %s: %w", path, err)
		}
		return img, nil
	case ".bmp":
		img, err := bmp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode BMP %s: %w", path, err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .png or .bmp)", filepath.Ext(path))
	}
}

// encodeImage writes a PNG or BMP file, chosen by extension.
func encodeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported output format %q (want .png or .bmp)", filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// imageToRGBA converts any decoded image to the packed RGBA layout the
// resampler consumes. Already-RGBA images at the origin pass through
// without copying.
func imageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	return rgba
}

// rgbaFromBytes wraps a packed RGBA buffer as an image for encoding.
func rgbaFromBytes(pix []byte, w, h int) *image.RGBA {
	return &image.RGBA{
		Pix:    pix,
		Stride: w * resampler.BytesPerPixel,
		Rect:   image.Rect(0, 0, w, h),
	}
}
