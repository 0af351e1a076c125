// Package imageio decodes window icons into RGBA8 pixel buffers.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"zan/internal/core"
)

// MaxDimension bounds either side of a decoded image.
const MaxDimension = 4096

var ErrTooLarge = errors.New("image too large")

// Decoder implements core.ImageDecoder. Pixel buffers handed out by Decode
// are recycled once they come back through Release.
type Decoder struct {
	buffers sync.Pool
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads the image at path and converts it to non-premultiplied RGBA8.
func (d *Decoder) Decode(path string) (*core.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode image %s: empty %s image", path, format)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrTooLarge, path, cfg.Width, cfg.Height)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind image %s: %w", path, err)
	}

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := &image.NRGBA{
		Pix:    d.buffer(w * h * 4),
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	// Src overwrites every pixel, so a recycled buffer needs no clearing.
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)

	return &core.Image{Width: w, Height: h, Pix: dst.Pix}, nil
}

// Release returns img's pixel buffer to the pool. img must not be used
// afterwards; releasing twice is harmless.
func (d *Decoder) Release(img *core.Image) {
	if img == nil || img.Pix == nil {
		return
	}
	buf := img.Pix[:0]
	img.Pix = nil
	d.buffers.Put(&buf)
}

func (d *Decoder) buffer(n int) []byte {
	if p, ok := d.buffers.Get().(*[]byte); ok && cap(*p) >= n {
		return (*p)[:n]
	}
	return make([]byte, n)
}
