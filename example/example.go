// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"periph.io/x/backlight"
	"periph.io/x/backlight/hostreg"
)

func main() {
	reg, err := hostreg.New(nil)
	if err != nil {
		log.Fatal(err)
	}

	dev := backlight.New(reg, nil)

	// Blink 5 times with 0.5 seconds on and 0.5 seconds off. The original
	// backlight state is restored automatically.
	err = dev.Blink(5, 500*time.Millisecond, 500*time.Millisecond)
	if errors.Is(err, backlight.ErrNoControlMethod) {
		// Already diagnosed on stdout; nothing to drive on this board.
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("blinking complete, display restored to original state")
}
