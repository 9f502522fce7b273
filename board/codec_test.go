package board

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mklimuk/grovepi"
)

func TestSignedOffset(t *testing.T) {
	tests := []struct {
		given    byte
		expected int
	}{
		{0, 0},
		{1, 1},
		{32, 32},
		{33, -191},
		{100, -124},
		{224, 0},
		{255, 31},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.given), func(t *testing.T) {
			assert.Equal(t, tt.expected, signedOffset(tt.given))
		})
	}
}

func TestFloat32At(t *testing.T) {
	tests := []struct {
		given    float32
		expected float64
	}{
		{23.5, 23.5},
		{23.456, 23.46},
		{61.2, 61.2},
		{-5.125, -5.13},
		{0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.given), func(t *testing.T) {
			buf := make([]byte, 4)
			binary.LittleEndian.PutUint32(buf, math.Float32bits(tt.given))
			assert.Equal(t, tt.expected, float32At(buf))
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.4.2", versionString(1, 4, 2))
	assert.Equal(t, "0.0.0", versionString(0, 0, 0))
}

func TestThermistorCelsius(t *testing.T) {
	tests := []struct {
		name         string
		raw          int
		bCoefficient float64
		expected     float64
	}{
		{"midscale v1.0", 512, bCoefficientV10, 25.043727100857893},
		{"midscale v1.2", 512, bCoefficientV12, 25.040897312104562},
		{"cold", 100, bCoefficientV10, -17.599809503008004},
		{"hot", 1000, bCoefficientV12, 132.29503004429398},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp, err := thermistorCelsius(tt.raw, tt.bCoefficient)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, temp, 1e-9)
		})
	}
}

func TestThermistorCelsius_OutOfRange(t *testing.T) {
	for _, raw := range []int{0, 1023, -1, 2000} {
		t.Run(fmt.Sprintf("%d", raw), func(t *testing.T) {
			_, err := thermistorCelsius(raw, bCoefficientV10)
			assert.ErrorIs(t, err, grovepi.ErrInvalidReading)
		})
	}
}

func TestThermistorModelCoefficient(t *testing.T) {
	assert.Equal(t, bCoefficientV10, ThermistorV10.bCoefficient())
	assert.Equal(t, bCoefficientV11, ThermistorV11.bCoefficient())
	assert.Equal(t, bCoefficientV12, ThermistorV12.bCoefficient())
	// unknown revisions fall back to the v1.0 thermistor
	assert.Equal(t, bCoefficientV10, ThermistorModel("2.0").bCoefficient())
}
