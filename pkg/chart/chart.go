// Package chart renders the diagnostic plots of a sample into image files
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/cyclopcam/logs"
	"github.com/cyclopcam/samplestat/pkg/iox"
	"github.com/fogleman/gg"
)

// Encoder turns a rendered chart into the bytes of an image file
type Encoder interface {
	Extension() string
	Encode(w io.Writer, img image.Image) error
}

type PNGEncoder struct{}

func (PNGEncoder) Extension() string {
	return "png"
}

func (PNGEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type Options struct {
	Dir     string  // Output directory. Created if it doesn't exist.
	Width   int     // Image width in pixels
	Height  int     // Image height in pixels
	Encoder Encoder // If nil, PNGEncoder
}

func DefaultOptions() Options {
	return Options{
		Dir:    "images",
		Width:  800,
		Height: 600,
	}
}

// Chart writes plots into a directory
type Chart struct {
	Log     logs.Log
	Options Options
}

func New(log logs.Log, options Options) (*Chart, error) {
	if options.Width < minImageWidth || options.Height < minImageHeight {
		return nil, fmt.Errorf("Image size %vx%v is too small (minimum is %vx%v)", options.Width, options.Height, minImageWidth, minImageHeight)
	}
	if options.Encoder == nil {
		options.Encoder = PNGEncoder{}
	}
	if err := os.MkdirAll(options.Dir, 0755); err != nil {
		return nil, fmt.Errorf("Failed to create chart directory '%v': %w", options.Dir, err)
	}
	return &Chart{
		Log:     log,
		Options: options,
	}, nil
}

// Path returns the file that a chart named 'name' is written to
func (c *Chart) Path(name string) string {
	return filepath.Join(c.Options.Dir, name+"."+c.Options.Encoder.Extension())
}

func (c *Chart) newContext() *gg.Context {
	dc := gg.NewContext(c.Options.Width, c.Options.Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	return dc
}

func (c *Chart) save(dc *gg.Context, name string) (string, error) {
	buf := bytes.Buffer{}
	if err := c.Options.Encoder.Encode(&buf, dc.Image()); err != nil {
		return "", fmt.Errorf("Failed to encode chart '%v': %w", name, err)
	}
	path := c.Path(name)
	if err := iox.WriteStreamToFile(path, &buf); err != nil {
		return "", fmt.Errorf("Failed to write chart '%v': %w", path, err)
	}
	c.Log.Debugf("Wrote %v (%v bytes)", path, buf.Len())
	return path, nil
}
