package board

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/grovepi"
)

// MockI2CBus is a mock implementation of grovepi.I2CBus using testify/mock.
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if args.Get(0) != nil {
		if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
			copy(buffer, data)
		}
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// sleepRecorder replaces the real settle sleep in tests, recording non-zero
// delays instead of blocking.
type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	if d > 0 {
		r.delays = append(r.delays, d)
	}
	return nil
}

func newTestBoard() (*GrovePi, *MockI2CBus, *sleepRecorder) {
	bus := new(MockI2CBus)
	rec := new(sleepRecorder)
	return New(bus, WithSleepFunc(rec.sleep)), bus, rec
}

func TestDigitalRead(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{1, 2, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{1}, nil).Once()

	value, err := b.DigitalRead(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, byte(1), value)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestDigitalWrite(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{2, 3, 1, 0}).Return(nil).Once()

	err := b.DigitalWrite(context.Background(), 3, 1)
	assert.NoError(t, err)
	assert.Empty(t, rec.delays)
	bus.AssertExpectations(t)
}

func TestPinMode(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{5, 2, 1, 0}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{5, 4, 0, 0}).Return(nil).Once()

	assert.NoError(t, b.PinMode(context.Background(), 2, Output))
	assert.NoError(t, b.PinMode(context.Background(), 4, Input))
	bus.AssertExpectations(t)
}

func TestAnalogRead(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{3, 0, 0, 0}).Return(nil).Once()
	// dummy status byte, then the response block
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 3, 255, 0, 0}, nil).Once()

	value, err := b.AnalogRead(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 1023, value)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestAnalogWrite(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{4, 5, 200, 0}).Return(nil).Once()

	assert.NoError(t, b.AnalogWrite(context.Background(), 5, 200))
	bus.AssertExpectations(t)
}

func TestUltrasonicRead(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{7, 4, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 1, 44, 0, 0}, nil).Once()

	distance, err := b.UltrasonicRead(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, 300, distance)
	assert.Equal(t, []time.Duration{200 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestVersion(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{8, 0, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 1, 4, 2, 0}, nil).Once()

	version, err := b.Version(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "1.4.2", version)
	bus.AssertExpectations(t)
}

func TestAccelerometerXYZ(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{20, 0, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 10, 224, 255, 0}, nil).Once()

	x, y, z, err := b.AccelerometerXYZ(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 31, z)
	bus.AssertExpectations(t)
}

func TestRTCTime(t *testing.T) {
	b, bus, _ := newTestBoard()

	raw := []byte{0, 0x23, 0x59, 0x11, 0x07}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{30, 0, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(raw, nil).Once()

	block, err := b.RTCTime(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, raw, block)
	bus.AssertExpectations(t)
}

func dhtBlock(temperature, humidity float32) []byte {
	block := make([]byte, 9)
	binary.LittleEndian.PutUint32(block[1:5], math.Float32bits(temperature))
	binary.LittleEndian.PutUint32(block[5:9], math.Float32bits(humidity))
	return block
}

func TestDHT(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{40, 7, 1, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(dhtBlock(23.456, 61.2), nil).Once()

	temperature, humidity, err := b.DHT(context.Background(), 7, DHTPro)
	assert.NoError(t, err)
	assert.Equal(t, 23.46, temperature)
	assert.Equal(t, 61.2, humidity)
	assert.Equal(t, []time.Duration{600 * time.Millisecond, 100 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestDHT_NotANumber(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(dhtBlock(float32(math.NaN()), 50), nil).Once()

	_, _, err := b.DHT(context.Background(), 7, DHTBlue)
	assert.ErrorIs(t, err, grovepi.ErrInvalidReading)
	bus.AssertExpectations(t)
}

func TestDHT_MalformedBlock(t *testing.T) {
	b, bus, _ := newTestBoard()

	block := make([]byte, 9)
	for i := range block {
		block[i] = 0xFF
	}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0xFF}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(block, nil).Once()

	_, _, err := b.DHT(context.Background(), 7, DHTPro)
	assert.ErrorIs(t, err, grovepi.ErrNoData)
	bus.AssertExpectations(t)
}

func TestIRRead(t *testing.T) {
	b, bus, rec := newTestBoard()

	capture := make([]byte, 21)
	capture[1] = 1
	capture[2] = 0x45
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{21, 0, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(capture, nil).Once()

	signal, err := b.IRRead(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, capture, signal)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestIRRead_NoSignal(t *testing.T) {
	b, bus, _ := newTestBoard()

	capture := make([]byte, 21)
	capture[1] = 0xFF
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(capture, nil).Once()

	_, err := b.IRRead(context.Background())
	assert.ErrorIs(t, err, grovepi.ErrNoData)
	bus.AssertExpectations(t)
}

func TestTemperature(t *testing.T) {
	b, bus, _ := newTestBoard()

	// raw analog value 512
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{3, 0, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 2, 0, 0, 0}, nil).Once()

	temperature, err := b.Temperature(context.Background(), 0, ThermistorV10)
	assert.NoError(t, err)
	assert.InDelta(t, 25.043727100857893, temperature, 1e-9)
	bus.AssertExpectations(t)
}

func TestTemperature_Saturated(t *testing.T) {
	b, bus, _ := newTestBoard()

	// raw analog value 1023 has no defined temperature
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 3, 255, 0, 0}, nil).Once()

	_, err := b.Temperature(context.Background(), 0, ThermistorV12)
	assert.ErrorIs(t, err, grovepi.ErrInvalidReading)
	bus.AssertExpectations(t)
}

func TestWriteErrorPropagation(t *testing.T) {
	b, bus, _ := newTestBoard()

	busErr := errors.New("i2c: address not acknowledged")
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(busErr).Once()

	_, err := b.DigitalRead(context.Background(), 2)
	assert.ErrorIs(t, err, busErr)
	assert.Contains(t, err.Error(), "command 0x1 write failed")
	bus.AssertExpectations(t)
}

func TestReadErrorPropagation(t *testing.T) {
	b, bus, _ := newTestBoard()

	busErr := errors.New("i2c: timeout")
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil, busErr).Once()

	_, err := b.UltrasonicRead(context.Background(), 4)
	assert.ErrorIs(t, err, busErr)
	bus.AssertExpectations(t)
}

func TestSettleAbortsOnCancelledContext(t *testing.T) {
	bus := new(MockI2CBus)
	b := New(bus)

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.DigitalRead(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
	bus.AssertExpectations(t)
}

func TestWithAddress(t *testing.T) {
	bus := new(MockI2CBus)
	rec := new(sleepRecorder)
	b := New(bus, WithAddress(0x05), WithSleepFunc(rec.sleep))

	bus.On("WriteToAddr", mock.Anything, byte(0x05), []byte{2, 3, 1, 0}).Return(nil).Once()

	assert.NoError(t, b.DigitalWrite(context.Background(), 3, 1))
	bus.AssertExpectations(t)
}
