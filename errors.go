package grovepi

import "errors"

// ErrNoData is the firmware's in-band "no new reading" signal. The bus
// transfer itself succeeded, so retrying after another settle period is
// legitimate.
var ErrNoData = errors.New("no data available yet")

// ErrInvalidReading marks a decoded value that is not a number, typically a
// disconnected sensor or an out-of-range analog input.
var ErrInvalidReading = errors.New("invalid sensor reading")
