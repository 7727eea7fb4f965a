// Package placeholder draws the stand-in image shown when a gallery image
// fails to load.
package placeholder

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 240
	Height = 160
)

var (
	background = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	border     = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	ink        = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

// Image renders a grey card with label centred on it.
func Image(label string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: border}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(1, 1, Width-1, Height-1), &image.Uniform{C: background}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
	}
	textWidth := d.MeasureString(label).Ceil()
	x := (Width - textWidth) / 2
	if x < 4 {
		x = 4
	}
	y := (Height + face.Ascent - face.Descent) / 2
	d.Dot = fixed.P(x, y)
	d.DrawString(label)
	return img
}

// PNG encodes the placeholder as PNG bytes.
func PNG(label string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(label)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI returns the placeholder as a data:image/png URI, ready for an
// <img src> or onerror swap.
func DataURI(label string) (string, error) {
	data, err := PNG(label)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
