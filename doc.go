// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package backlight detects and drives a display backlight, either through
// the display's own brightness property or through a discrete GPIO output
// line, and can blink it a bounded number of times before restoring the
// original state.
//
// Detection runs exactly once, at construction, against an explicit Registry
// describing the board. A board with no usable control method yields an
// inert device that is safe to call but does nothing.
package backlight
