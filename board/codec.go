package board

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mklimuk/grovepi"
)

// sentinel is the in-band "no new data" marker used by the counter-style
// commands (dust, encoder, flow, IR) in their designated header byte.
const sentinel = 0xFF

// composite16 recombines a value split across two response bytes as
// high*256 + low. Used by analog read, ultrasonic distance and flow count.
func composite16(high, low byte) int {
	return int(high)*256 + int(low)
}

// xorComposite16 recombines the LED bar state bitmask as low ^ (high << 8).
// The firmware uses this order for the get path only; do not unify with
// composite16.
func xorComposite16(low, high byte) uint16 {
	return uint16(low) ^ (uint16(high) << 8)
}

// splitUint16 splits a 16-bit value into the low, high parameter bytes used
// by the LED bar and display set commands.
func splitUint16(v uint16) (low, high byte) {
	return byte(v & 0xFF), byte(v >> 8)
}

// signedOffset folds the firmware's fixed-point accelerometer convention:
// bytes above 32 carry an offset of 224 (224 decodes to 0, 255 to 31). This
// is not twos-complement.
func signedOffset(b byte) int {
	if b > 32 {
		return int(b) - 224
	}
	return int(b)
}

// float32At reinterprets 4 consecutive payload bytes as a little-endian
// IEEE-754 float, rounded to 2 decimal places.
func float32At(buf []byte) float64 {
	v := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
	return round2(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// versionString renders the firmware version triplet as dot-joined decimal
// integers.
func versionString(major, minor, patch byte) string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

// Thermistor B-coefficients per temperature sensor hardware revision. V1.0
// uses the TTC3A103*39H thermistor, v1.1 and v1.2 the NCP18WF104F03RC.
const (
	bCoefficientV10 float64 = 3975
	bCoefficientV11 float64 = 4250
	bCoefficientV12 float64 = 4250
)

// ThermistorModel selects the B-coefficient for the analog temperature
// sensor conversion.
type ThermistorModel string

const (
	ThermistorV10 ThermistorModel = "1.0"
	ThermistorV11 ThermistorModel = "1.1"
	ThermistorV12 ThermistorModel = "1.2"
)

func (m ThermistorModel) bCoefficient() float64 {
	switch m {
	case ThermistorV11:
		return bCoefficientV11
	case ThermistorV12:
		return bCoefficientV12
	default:
		return bCoefficientV10
	}
}

// thermistorCelsius converts a raw 10-bit analog reading to degrees Celsius
// using the Steinhart-Hart approximation. Raw values of 0 and 1023 have no
// defined temperature (division by zero, log of zero) and surface as
// ErrInvalidReading.
func thermistorCelsius(raw int, bCoefficient float64) (float64, error) {
	if raw <= 0 || raw >= 1023 {
		return 0, fmt.Errorf("raw analog value %d out of thermistor range: %w", raw, grovepi.ErrInvalidReading)
	}
	resistance := float64(1023-raw) * 10000 / float64(raw)
	t := 1/(math.Log(resistance/10000)/bCoefficient+1/298.15) - 273.15
	if math.IsNaN(t) {
		return 0, grovepi.ErrInvalidReading
	}
	return t, nil
}
