package board

import "context"

// LED bar orientation values.
const (
	LEDBarRedToGreen = 0
	LEDBarGreenToRed = 1
)

// LEDBarInit initialises the LED bar on a pin with the given orientation.
func (p *GrovePi) LEDBarInit(ctx context.Context, pin, orientation int) error {
	return p.fire(ctx, cmdLEDBarInit, pin, orientation)
}

// LEDBarOrientation changes the LED bar orientation.
func (p *GrovePi) LEDBarOrientation(ctx context.Context, pin, orientation int) error {
	return p.fire(ctx, cmdLEDBarOrient, pin, orientation)
}

// LEDBarSetLevel lights the first level LEDs (0-10).
func (p *GrovePi) LEDBarSetLevel(ctx context.Context, pin, level int) error {
	return p.fire(ctx, cmdLEDBarLevel, pin, level)
}

// LEDBarSetLED sets a single LED (1-10) on or off.
func (p *GrovePi) LEDBarSetLED(ctx context.Context, pin, led, state int) error {
	return p.fire(ctx, cmdLEDBarSetOne, pin, led, state)
}

// LEDBarToggleLED toggles a single LED (1-10).
func (p *GrovePi) LEDBarToggleLED(ctx context.Context, pin, led int) error {
	return p.fire(ctx, cmdLEDBarToggleOne, pin, led)
}

// LEDBarSetBits sets all 10 LEDs from a bitmask, split low byte first across
// the two parameter slots.
func (p *GrovePi) LEDBarSetBits(ctx context.Context, pin int, bits uint16) error {
	low, high := splitUint16(bits)
	return p.fire(ctx, cmdLEDBarSet, pin, int(low), int(high))
}

// LEDBarGetBits returns the current state bitmask, one bit per LED.
func (p *GrovePi) LEDBarGetBits(ctx context.Context, pin int) (uint16, error) {
	block, err := p.block(ctx, cmdLEDBarGet, true, blockLen, pin)
	if err != nil {
		return 0, err
	}
	return xorComposite16(block[1], block[2]), nil
}

// FourDigitInit initialises the 4-digit display.
func (p *GrovePi) FourDigitInit(ctx context.Context, pin int) error {
	return p.fire(ctx, cmdFourDigitInit, pin)
}

// FourDigitBrightness sets the display brightness (0-7). Not visible until
// the next display command executes.
func (p *GrovePi) FourDigitBrightness(ctx context.Context, pin, brightness int) error {
	return p.fire(ctx, cmdFourDigitBrightness, pin, brightness)
}

// FourDigitValue renders a 16-bit value, with or without leading zeros. The
// value is split low byte first to fit the 4-byte frame.
func (p *GrovePi) FourDigitValue(ctx context.Context, pin int, value uint16, leadingZeros bool) error {
	low, high := splitUint16(value)
	cmd := cmdFourDigitValueZeros
	if leadingZeros {
		cmd = cmdFourDigitValue
	}
	return p.fire(ctx, cmd, pin, int(low), int(high))
}

// FourDigitDigit sets an individual digit (segment 0-3, value 0-15).
func (p *GrovePi) FourDigitDigit(ctx context.Context, pin, segment, value int) error {
	return p.fire(ctx, cmdFourDigitDigit, pin, segment, value)
}

// FourDigitSegment sets the individual LEDs of a segment, one bit per LED.
// On segment 2 the 8th bit is the colon.
func (p *GrovePi) FourDigitSegment(ctx context.Context, pin, segment, leds int) error {
	return p.fire(ctx, cmdFourDigitSegment, pin, segment, leds)
}

// FourDigitScore renders left and right values (0-99) with the colon lit.
func (p *GrovePi) FourDigitScore(ctx context.Context, pin, left, right int) error {
	return p.fire(ctx, cmdFourDigitScore, pin, left, right)
}

// FourDigitMonitor displays the reading of an analog pin for the given
// number of seconds, 4 samples per second. The settle delay is parameterized
// by the caller-supplied duration.
func (p *GrovePi) FourDigitMonitor(ctx context.Context, pin, analogPin, seconds int) error {
	if err := p.command(ctx, cmdFourDigitMonitor, pin, analogPin, seconds); err != nil {
		return err
	}
	return p.sleep(ctx, monitorDelay(seconds))
}

// FourDigitOn turns the entire display on (88:88).
func (p *GrovePi) FourDigitOn(ctx context.Context, pin int) error {
	return p.fire(ctx, cmdFourDigitAllOn, pin)
}

// FourDigitOff turns the entire display off.
func (p *GrovePi) FourDigitOff(ctx context.Context, pin int) error {
	return p.fire(ctx, cmdFourDigitAllOff, pin)
}

// StoreColor stores an RGB color in the firmware for subsequent chainable
// LED commands.
func (p *GrovePi) StoreColor(ctx context.Context, red, green, blue int) error {
	return p.fire(ctx, cmdStoreColor, red, green, blue)
}

// ChainableRGBInit initialises a chain of numLEDs chainable RGB LEDs.
func (p *GrovePi) ChainableRGBInit(ctx context.Context, pin, numLEDs int) error {
	return p.fire(ctx, cmdRGBInit, pin, numLEDs)
}

// ChainableRGBTest initialises the chain and lights a simple 3-bit test
// color (0bRGB, e.g. 4 is red, 7 is white).
func (p *GrovePi) ChainableRGBTest(ctx context.Context, pin, numLEDs, testColor int) error {
	return p.fire(ctx, cmdRGBTest, pin, numLEDs, testColor)
}

// ChainableRGBPattern sets LEDs to the stored color by pattern: 0 this LED
// only, 1 all but this LED, 2 this LED and all inwards, 3 this LED and all
// outwards.
func (p *GrovePi) ChainableRGBPattern(ctx context.Context, pin, pattern, led int) error {
	return p.fire(ctx, cmdRGBPattern, pin, pattern, led)
}

// ChainableRGBModulo sets every divisor-th LED starting at offset to the
// stored color.
func (p *GrovePi) ChainableRGBModulo(ctx context.Context, pin, offset, divisor int) error {
	return p.fire(ctx, cmdRGBModulo, pin, offset, divisor)
}

// ChainableRGBLevel lights level LEDs like a bar graph, counting inwards
// when reverse is 1.
func (p *GrovePi) ChainableRGBLevel(ctx context.Context, pin, level, reverse int) error {
	return p.fire(ctx, cmdRGBLevel, pin, level, reverse)
}
