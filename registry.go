// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package backlight

import (
	"errors"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// A BrightnessDisplay is a display surface whose backlight level can be read
// and set as a fraction in [0, 1]. Displays that support dimming implement
// it in addition to display.Drawer; detection discovers the capability with
// a type assertion.
type BrightnessDisplay interface {
	display.Drawer
	Brightness() float64
	SetBrightness(v float64) error
}

// Registry describes the ambient hardware: an optional active display and a
// set of named digital lines. Passing one explicitly keeps this package free
// of board singletons and lets tests substitute a fake.
type Registry interface {
	// Display returns the active display, or nil when the board has none.
	Display() display.Drawer
	// PinByName returns the named line, or nil when the board does not
	// expose it.
	PinByName(name string) gpio.PinIO
}

// DefaultPinNames is the ordered list of line names probed for a backlight
// pin when the display has no brightness control. The first match wins.
var DefaultPinNames = []string{"DISPLAY_BACKLIGHT", "TFT_BACKLIGHT", "BACKLIGHT"}

var (
	// ErrNoDisplay means the registry exposes no built-in display.
	ErrNoDisplay = errors.New("no built-in display detected")
	// ErrNoControlMethod means a display is present but neither its
	// brightness nor any candidate pin is usable.
	ErrNoControlMethod = errors.New("no backlight control method found")
)

// Method identifies the mechanism driving the backlight.
type Method int

const (
	// MethodNone means detection found nothing to drive. The device is
	// inert but safe to call.
	MethodNone Method = iota
	// MethodBrightness drives the display's brightness property.
	MethodBrightness
	// MethodPin toggles a discrete backlight output line.
	MethodPin
)

func (m Method) String() string {
	switch m {
	case MethodBrightness:
		return "brightness"
	case MethodPin:
		return "pin"
	}
	return "none"
}

// Detection is the outcome of probing a Registry for a backlight control
// method. Err is non-nil iff Method is MethodNone.
type Detection struct {
	Method Method
	// PinName is the candidate name that matched when Method is MethodPin.
	PinName string
	Err     error
}

// Detect probes reg once: a display exposing brightness control wins,
// otherwise the names in DefaultPinNames are tried in order against the
// registry's lines. A board without a display is not probed for pins, its
// backlight cannot be told apart from any other line.
func Detect(reg Registry) Detection {
	det, _, _ := detect(reg)
	return det
}

func detect(reg Registry) (Detection, BrightnessDisplay, gpio.PinIO) {
	if reg == nil {
		return Detection{Err: ErrNoDisplay}, nil, nil
	}
	scr := reg.Display()
	if scr == nil {
		return Detection{Err: ErrNoDisplay}, nil, nil
	}
	if b, ok := scr.(BrightnessDisplay); ok {
		return Detection{Method: MethodBrightness}, b, nil
	}
	for _, name := range DefaultPinNames {
		if p := reg.PinByName(name); p != nil {
			return Detection{Method: MethodPin, PinName: name}, nil, p
		}
	}
	return Detection{Err: ErrNoControlMethod}, nil, nil
}
