package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLEDBarSetBits(t *testing.T) {
	b, bus, rec := newTestBoard()

	// 0b1010101010 split low byte first
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{55, 3, 0xAA, 0x02}).Return(nil).Once()

	assert.NoError(t, b.LEDBarSetBits(context.Background(), 3, 0x2AA))
	assert.Empty(t, rec.delays)
	bus.AssertExpectations(t)
}

func TestLEDBarGetBits(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{56, 3, 0, 0}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0}, nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{0, 0x0F, 0x00, 0, 0}, nil).Once()

	bits, err := b.LEDBarGetBits(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, uint16(15), bits)
	assert.Equal(t, []time.Duration{200 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestLEDBarLevelAndToggle(t *testing.T) {
	b, bus, _ := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{50, 3, 1, 0}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{52, 3, 7, 0}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{54, 3, 10, 0}).Return(nil).Once()

	ctx := context.Background()
	assert.NoError(t, b.LEDBarInit(ctx, 3, LEDBarGreenToRed))
	assert.NoError(t, b.LEDBarSetLevel(ctx, 3, 7))
	assert.NoError(t, b.LEDBarToggleLED(ctx, 3, 10))
	bus.AssertExpectations(t)
}

func TestFourDigitValue(t *testing.T) {
	tests := []struct {
		name         string
		leadingZeros bool
		expected     []byte
	}{
		{"with leading zeros", true, []byte{72, 5, 0x39, 0x30}},
		{"without leading zeros", false, []byte{73, 5, 0x39, 0x30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, bus, rec := newTestBoard()
			bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), tt.expected).Return(nil).Once()

			assert.NoError(t, b.FourDigitValue(context.Background(), 5, 12345, tt.leadingZeros))
			assert.Equal(t, []time.Duration{50 * time.Millisecond}, rec.delays)
			bus.AssertExpectations(t)
		})
	}
}

func TestFourDigitScore(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{76, 5, 12, 34}).Return(nil).Once()

	assert.NoError(t, b.FourDigitScore(context.Background(), 5, 12, 34))
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestFourDigitMonitor(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{77, 5, 0, 2}).Return(nil).Once()

	assert.NoError(t, b.FourDigitMonitor(context.Background(), 5, 0, 2))
	assert.Equal(t, []time.Duration{2*time.Second + 50*time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}

func TestChainableRGB(t *testing.T) {
	b, bus, rec := newTestBoard()

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{90, 255, 0, 128}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{91, 7, 10, 0}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{95, 7, 5, 1}).Return(nil).Once()

	ctx := context.Background()
	assert.NoError(t, b.StoreColor(ctx, 255, 0, 128))
	assert.NoError(t, b.ChainableRGBInit(ctx, 7, 10))
	assert.NoError(t, b.ChainableRGBLevel(ctx, 7, 5, 1))
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}, rec.delays)
	bus.AssertExpectations(t)
}
