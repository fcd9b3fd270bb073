// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons generates browser extension icons from a single base image.

# Layout

Generation reads one base image and writes one PNG per size into the icons
directory:

	icons/base_icon.png  The source image. PNG, JPEG, GIF, BMP, TIFF and
	                     WebP are accepted.
	icons/icon16.png     Generated, 16x16.
	icons/icon32.png     Generated, 32x32.
	icons/icon48.png     Generated, 48x48.
	icons/icon128.png    Generated, 128x128.

Generated icons are always 8-bit RGBA PNG files, even when the image is fully
opaque.

# Fallback

If the base image exists but can't be decoded, resized or written, Generate
falls back to placeholder icons: squares filled with [PlaceholderColor],
written at every size and overwriting whatever was written before the
failure.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"go.astrophena.name/base/logger"
)

// ErrBaseMissing is returned when the base image doesn't exist.
var ErrBaseMissing = errors.New("base icon not found")

// PlaceholderColor is the color of placeholder icons.
var PlaceholderColor = color.NRGBA{R: 59, G: 130, B: 246, A: 255}

// sizes are the icon sizes required by browser extensions.
var sizes = []int{16, 32, 48, 128}

// Sizes returns the sizes of generated icons, in the order they are written.
func Sizes() []int {
	s := make([]int, len(sizes))
	copy(s, sizes)
	return s
}

// Config represents a generation configuration.
type Config struct {
	// Dir is the directory where generated icons are written. If empty, uses
	// the icons directory.
	Dir string
	// Base is the path of the base image. If empty, uses base_icon.png inside
	// Dir.
	Base string
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = filepath.Join(".", "icons")
	}
	if c.Base == "" {
		c.Base = filepath.Join(c.Dir, "base_icon.png")
	}
}

// path returns the path of the icon with the given size.
func (c *Config) path(size int) string {
	return filepath.Join(c.Dir, "icon"+strconv.Itoa(size)+".png")
}

// checkBase reports ErrBaseMissing if the base image doesn't exist.
func (c *Config) checkBase(ctx context.Context) error {
	if _, err := os.Stat(c.Base); errors.Is(err, fs.ErrNotExist) {
		logger.Error(ctx, "base icon not found, copy the source image there first", slog.String("path", c.Base))
		return fmt.Errorf("%w: %s", ErrBaseMissing, c.Base)
	}
	return nil
}

// Result describes what Generate wrote.
type Result struct {
	// Files are paths of the written icons.
	Files []string
	// Placeholder is true if placeholder icons were written instead of resized
	// base image.
	Placeholder bool
	// Err is the error that caused falling back to placeholders.
	Err error
}

// Generate writes icons of every size from the base image described by c.
//
// If the base image doesn't exist, Generate returns an error wrapping
// ErrBaseMissing and writes nothing. Errors that happen while processing the
// base image are not returned: placeholders are written instead and the error
// is recorded in the returned Result.
func Generate(ctx context.Context, c *Config) (*Result, error) {
	c.setDefaults()

	// Nothing may be written before the base image is known to exist.
	if err := c.checkBase(ctx); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return nil, err
	}

	res := new(Result)
	err := generate(ctx, c, res)
	if err == nil {
		logger.Info(ctx, "all icons created successfully")
		return res, nil
	}

	logger.Error(ctx, "failed to create icons, falling back to placeholders", slog.Any("err", err))
	res = &Result{Placeholder: true, Err: err}
	for _, size := range sizes {
		b, err := placeholder(size)
		if err != nil {
			return nil, err
		}
		path := c.path(size)
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
		logger.Info(ctx, "created placeholder icon", slog.String("path", path))
	}
	return res, nil
}

func generate(ctx context.Context, c *Config, res *Result) error {
	src, err := load(c.Base)
	if err != nil {
		return err
	}
	for _, size := range sizes {
		b, err := encodePNG(resize(src, size))
		if err != nil {
			return fmt.Errorf("encoding icon%d.png: %w", size, err)
		}
		path := c.path(size)
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return err
		}
		res.Files = append(res.Files, path)
		logger.Info(ctx, "created icon", slog.String("path", path), slog.Int("size", size))
	}
	return nil
}

// Render returns encoded icons of every size, keyed by size, made from img.
func Render(img image.Image) (map[int][]byte, error) {
	src := toNRGBA(img)
	icons := make(map[int][]byte, len(sizes))
	for _, size := range sizes {
		b, err := encodePNG(resize(src, size))
		if err != nil {
			return nil, fmt.Errorf("encoding icon%d.png: %w", size, err)
		}
		icons[size] = b
	}
	return icons, nil
}

// Placeholders returns encoded placeholder icons of every size, keyed by size.
func Placeholders() (map[int][]byte, error) {
	icons := make(map[int][]byte, len(sizes))
	for _, size := range sizes {
		b, err := placeholder(size)
		if err != nil {
			return nil, err
		}
		icons[size] = b
	}
	return icons, nil
}

func placeholder(size int) ([]byte, error) {
	m := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(m.Pix); i += 4 {
		m.Pix[i+0] = PlaceholderColor.R
		m.Pix[i+1] = PlaceholderColor.G
		m.Pix[i+2] = PlaceholderColor.B
		m.Pix[i+3] = PlaceholderColor.A
	}
	return encodePNG(m)
}

// Manifest returns the "icons" map of the extension manifest, which maps each
// size to a slash-separated icon path.
func Manifest(c *Config) map[string]string {
	c.setDefaults()
	m := make(map[string]string, len(sizes))
	for _, size := range sizes {
		m[strconv.Itoa(size)] = filepath.ToSlash(c.path(size))
	}
	return m
}
