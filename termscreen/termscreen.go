// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termscreen implements a display.Drawer that outputs to terminal
// (stdout) using ANSI color codes and models a backlight: every rendered
// cell is scaled by the current brightness, so dimming and blinking are
// visible in the terminal.
//
// Useful while you are waiting for your super nice TFT to come by mail. It
// also stands in for a brightness-capable display when probing for a
// backlight control method.
package termscreen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width and height of the emulated panel in cells.
	Width, Height int
	Palette       *ansi256.Palette

	// Writer receives the rendered output. Defaults to a colorable stdout.
	Writer io.Writer

	_ struct{}
}

// Dev is a backlit display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette

	brightness float64
	pixels     []byte
	buf        bytes.Buffer
	drawn      bool
}

// New returns a Dev that displays at the console, backlight fully on.
//
// Permits local testing of drawing and backlight control without hardware.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:          w,
		width:      opts.Width,
		height:     opts.Height,
		palette:    *p,
		brightness: 1.0,
		pixels:     make([]byte, 3*opts.Width*opts.Height),
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermScreen{%dx%d}", d.width, d.height)
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// Brightness returns the current backlight level in [0, 1].
func (d *Dev) Brightness() float64 {
	return d.brightness
}

// SetBrightness sets the backlight level and re-renders the current
// contents. v is clamped to [0, 1].
func (d *Dev) SetBrightness(v float64) error {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	d.brightness = v
	_, err := d.refresh()
	return err
}

// Write accepts a full frame of raw RGB pixels and writes it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errors.New("termscreen: invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	for sY := srcR.Min.Y; sY < srcR.Max.Y; sY++ {
		dY := sY + r.Min.Y - srcR.Min.Y
		for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
			dX := sX + r.Min.X - srcR.Min.X
			r16, g16, b16, _ := src.At(sX, sY).RGBA()
			i := 3 * (dY*d.width + dX)
			d.pixels[i] = byte(r16 >> 8)
			d.pixels[i+1] = byte(g16 >> 8)
			d.pixels[i+2] = byte(b16 >> 8)
		}
	}
	_, err := d.refresh()
	return err
}

func (d *Dev) refresh() (int, error) {
	// This code is designed to minimize the amount of memory allocated per
	// call. The backlight level scales each channel before quantization.
	d.buf.Reset()
	if d.drawn {
		// Reposition over the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", d.height)
	}
	for y := 0; y < d.height; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.width; x++ {
			i := 3 * (y*d.width + x)
			c := color.NRGBA{
				R: byte(float64(d.pixels[i]) * d.brightness),
				G: byte(float64(d.pixels[i+1]) * d.brightness),
				B: byte(float64(d.pixels[i+2]) * d.brightness),
				A: 255,
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
