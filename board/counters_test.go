package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/grovepi"
)

func TestDustSensorRead(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{10, 0, 0, 0}).Return(nil).Once()
	// 24-bit little-endian low pulse occupancy: 10000
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{1, 0x10, 0x27, 0x00}, nil).Once()

	lpo, err := b.DustSensorRead(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10000, lpo)
	assert.Equal(t, []time.Duration{200 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestDustSensorRead_NoData(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	// a sentinel header invalidates the block regardless of the remaining bytes
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0xFF, 1, 2, 3}, nil).Once()

	_, err := b.DustSensorRead(context.Background())
	assert.ErrorIs(t, err, grovepi.ErrNoData)
	bus.AssertExpectations(t)
}

func TestDustSensorEnableDisable(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{14, 0, 0, 0}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{15, 0, 0, 0}).Return(nil).Once()

	ctx := context.Background()
	assert.NoError(t, b.DustSensorEnable(ctx))
	assert.NoError(t, b.DustSensorDisable(ctx))
	assert.Equal(t, []time.Duration{200 * time.Millisecond, 200 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestEncoderRead(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{11, 0, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{1, 42}, nil).Once()

	position, err := b.EncoderRead(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, position)
	bus.AssertExpectations(t)
}

func TestEncoderRead_NoData(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0xFF, 42}, nil).Once()

	_, err := b.EncoderRead(context.Background())
	assert.ErrorIs(t, err, grovepi.ErrNoData)
	bus.AssertExpectations(t)
}

func TestFlowRead(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{12, 0, 0, 0}).Return(nil).Once()
	// 16-bit little-endian pulse count: 300
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{1, 0x2C, 0x01}, nil).Once()

	count, err := b.FlowRead(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 300, count)
	bus.AssertExpectations(t)
}

func TestFlowRead_NoData(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0xFF, 0, 0}, nil).Once()

	_, err := b.FlowRead(context.Background())
	assert.ErrorIs(t, err, grovepi.ErrNoData)
	bus.AssertExpectations(t)
}

func TestFlowEnableDisable(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{18, 0, 0, 0}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{13, 0, 0, 0}).Return(nil).Once()

	ctx := context.Background()
	assert.NoError(t, b.FlowEnable(ctx))
	assert.NoError(t, b.FlowDisable(ctx))
	bus.AssertExpectations(t)
}
