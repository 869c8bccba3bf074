// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termscreen

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/maruel/ansi256"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&Opts{Width: 8, Height: 2, Writer: &buf})
	if got := dev.String(); got != "TermScreen{8x2}" {
		t.Errorf("String() = %q", got)
	}
	if got, want := dev.Bounds(), image.Rect(0, 0, 8, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if dev.Brightness() != 1.0 {
		t.Errorf("Brightness() = %v, want 1.0", dev.Brightness())
	}
	if dev.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
}

func TestBrightnessClamp(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&Opts{Width: 2, Height: 1, Writer: &buf})
	if err := dev.SetBrightness(1.5); err != nil {
		t.Fatal(err)
	}
	if dev.Brightness() != 1.0 {
		t.Errorf("Brightness() = %v, want 1.0", dev.Brightness())
	}
	if err := dev.SetBrightness(-0.2); err != nil {
		t.Fatal(err)
	}
	if dev.Brightness() != 0.0 {
		t.Errorf("Brightness() = %v, want 0.0", dev.Brightness())
	}
}

func TestWriteBadLength(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&Opts{Width: 2, Height: 1, Writer: &buf})
	if _, err := dev.Write([]byte{1, 2}); err == nil {
		t.Error("Write() accepted a truncated RGB stream")
	}
}

func TestBacklightDimsOutput(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&Opts{Width: 4, Height: 1, Writer: &buf})

	img := image.NewNRGBA(dev.Bounds())
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	lit := buf.String()
	if !strings.Contains(lit, ansi256.Default.Block(color.NRGBA{255, 255, 255, 255})) {
		t.Error("full brightness frame is missing white cells")
	}

	buf.Reset()
	if err := dev.SetBrightness(0); err != nil {
		t.Fatal(err)
	}
	dark := buf.String()
	if dark == lit {
		t.Error("backlight off frame renders identically to full brightness")
	}
	if !strings.Contains(dark, ansi256.Default.Block(color.NRGBA{0, 0, 0, 255})) {
		t.Error("backlight off frame is missing black cells")
	}
}

func TestRedrawRepositionsCursor(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&Opts{Width: 2, Height: 3, Writer: &buf})
	if _, err := dev.Write(make([]byte, 3*2*3)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\033[3A") {
		t.Error("first frame moved the cursor up")
	}
	buf.Reset()
	if _, err := dev.Write(make([]byte, 3*2*3)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[3A") {
		t.Error("second frame did not reposition over the first")
	}
}

func TestHalt(t *testing.T) {
	var buf bytes.Buffer
	dev := New(&Opts{Width: 2, Height: 1, Writer: &buf})
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\033[0m" {
		t.Errorf("Halt() wrote %q", got)
	}
}
