// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package backlight

import (
	"fmt"
	"io"
	"os"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// Opts represents the options available for the device.
type Opts struct {
	// Output receives diagnostic text, one line per event. Defaults to
	// os.Stdout.
	Output io.Writer

	_ struct{}
}

// Dev drives a display backlight through whichever control method detection
// selected: the display's brightness property, or a discrete output line.
// The pre-existing backlight value is captured at construction so Blink can
// hand the display back the way it found it.
//
// Implements periph.io/x/conn/v3/display.DisplayBacklight.
type Dev struct {
	det    Detection
	screen BrightnessDisplay
	pin    gpio.PinIO

	originalBrightness float64
	originalLevel      gpio.Level

	out   io.Writer
	sleep func(time.Duration)
}

func wrap(err error) error {
	return fmt.Errorf("backlight: %w", err)
}

// New probes reg for a control method and returns a ready Dev. Detection
// runs exactly once and is not retried. Failure is not fatal: it yields an
// inert device whose Detection().Err explains why. One diagnostic line is
// printed for whichever branch was taken.
func New(reg Registry, opts *Opts) *Dev {
	d := &Dev{out: os.Stdout, sleep: time.Sleep}
	if opts != nil && opts.Output != nil {
		d.out = opts.Output
	}
	det, screen, pin := detect(reg)
	d.det = det
	switch det.Method {
	case MethodBrightness:
		d.screen = screen
		d.originalBrightness = screen.Brightness()
		fmt.Fprintf(d.out, "backlight: using display brightness control\n")
	case MethodPin:
		d.pin = pin
		d.originalLevel = pin.Read()
		fmt.Fprintf(d.out, "backlight: using %s pin for backlight control\n", det.PinName)
	default:
		fmt.Fprintf(d.out, "backlight: %v\n", det.Err)
	}
	return d
}

// Method returns the control method selected at construction.
func (d *Dev) Method() Method {
	return d.det.Method
}

// Detection returns the construction-time probe outcome.
func (d *Dev) Detection() Detection {
	return d.det
}

// Set turns the backlight fully on or off. Brightness control is driven as
// binary 1.0/0.0, there is no dimming curve. The returned bool is always
// the requested state, even on an inert device where nothing was written;
// the error reports hardware write failures only.
func (d *Dev) Set(state bool) (bool, error) {
	switch d.det.Method {
	case MethodBrightness:
		v := 0.0
		if state {
			v = 1.0
		}
		if err := d.screen.SetBrightness(v); err != nil {
			return state, wrap(err)
		}
	case MethodPin:
		if err := d.pin.Out(gpio.Level(state)); err != nil {
			return state, wrap(err)
		}
	}
	return state, nil
}

// Backlight turns the backlight on for any non-zero intensity.
func (d *Dev) Backlight(intensity display.Intensity) error {
	_, err := d.Set(intensity != 0)
	return err
}

// Blink toggles the backlight count times, holding on then off for the
// given durations, then restores the pre-blink state. The call blocks the
// caller for roughly count*(on+off); there is no cancellation. On an inert
// device it prints one diagnostic and returns ErrNoControlMethod without
// toggling, sleeping or restoring. A hardware write error aborts the
// sequence; restoration is still attempted.
func (d *Dev) Blink(count int, on, off time.Duration) error {
	if d.det.Method == MethodNone {
		fmt.Fprintf(d.out, "backlight: no backlight control method available\n")
		return wrap(ErrNoControlMethod)
	}
	var writeErr error
	for i := 0; i < count; i++ {
		if _, writeErr = d.Set(true); writeErr != nil {
			break
		}
		d.sleep(on)
		if _, writeErr = d.Set(false); writeErr != nil {
			break
		}
		d.sleep(off)
	}
	restoreErr := d.RestoreOriginalState()
	if writeErr != nil {
		return writeErr
	}
	return restoreErr
}

// RestoreOriginalState writes back the backlight value captured at
// construction and prints a confirming diagnostic. Idempotent: repeated
// calls re-apply the same stored value. No-op on an inert device.
func (d *Dev) RestoreOriginalState() error {
	switch d.det.Method {
	case MethodBrightness:
		if err := d.screen.SetBrightness(d.originalBrightness); err != nil {
			return wrap(err)
		}
		fmt.Fprintf(d.out, "backlight: restored original brightness: %v\n", d.originalBrightness)
	case MethodPin:
		if err := d.pin.Out(d.originalLevel); err != nil {
			return wrap(err)
		}
		fmt.Fprintf(d.out, "backlight: restored original backlight state: %s\n", d.originalLevel)
	}
	return nil
}

var _ display.DisplayBacklight = &Dev{}
