// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hostreg exposes the host's hardware as a backlight.Registry:
// named lines come from the periph GPIO registry, and the active display is
// whichever driver the caller attaches. Plain GPIO hosts expose no
// brightness surface of their own.
package hostreg

import (
	"fmt"

	"periph.io/x/backlight"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Opts represents the options available for the registry.
type Opts struct {
	// Display is the board's active display driver, if any. Displays that
	// support dimming should also implement backlight.BrightnessDisplay.
	Display display.Drawer

	_ struct{}
}

// Registry is a backlight.Registry backed by the periph host drivers.
type Registry struct {
	display display.Drawer
}

// New initializes the periph host and returns a ready Registry.
func New(opts *Opts) (*Registry, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hostreg: %w", err)
	}
	r := &Registry{}
	if opts != nil {
		r.display = opts.Display
	}
	return r, nil
}

// Display returns the attached display driver, or nil when none was given.
func (r *Registry) Display() display.Drawer {
	return r.display
}

// PinByName looks the line up in the periph GPIO registry, by name or
// alias. Returns nil when the host does not expose it.
func (r *Registry) PinByName(name string) gpio.PinIO {
	return gpioreg.ByName(name)
}

var _ backlight.Registry = &Registry{}
