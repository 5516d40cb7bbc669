// Package cjpeg encodes charts as JPEG, using libjpeg-turbo via cimg
package cjpeg

import (
	"image"
	"image/draw"
	"io"

	"github.com/bmharper/cimg/v2"
)

// Encoder satisfies chart.Encoder
type Encoder struct {
	Quality int // 1..100
}

func NewEncoder(quality int) *Encoder {
	return &Encoder{Quality: quality}
}

func (e *Encoder) Extension() string {
	return "jpg"
}

func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	jpg, err := cimg.Compress(ToCImageRGB(img), cimg.MakeCompressParams(cimg.Sampling420, e.Quality, 0))
	if err != nil {
		return err
	}
	_, err = w.Write(jpg)
	return err
}

// ToCImageRGB copies an image into a tightly packed RGB cimg image, dropping alpha
func ToCImageRGB(src image.Image) *cimg.Image {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(b)
		draw.Draw(rgba, b, src, b.Min, draw.Src)
	}
	dst := cimg.NewImage(b.Dx(), b.Dy(), cimg.PixelFormatRGB)
	for y := 0; y < b.Dy(); y++ {
		srcRow := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
		dstRow := dst.Pixels[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dstRow[x*3] = srcRow[x*4]
			dstRow[x*3+1] = srcRow[x*4+1]
			dstRow[x*3+2] = srcRow[x*4+2]
		}
	}
	return dst
}
