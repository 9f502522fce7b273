package board

import (
	"context"
	"fmt"

	"github.com/mklimuk/grovepi"
)

// DustSensorEnable starts the low-pulse-occupancy measurement loop in the
// firmware.
func (p *GrovePi) DustSensorEnable(ctx context.Context) error {
	return p.fire(ctx, cmdDustEnable)
}

// DustSensorDisable stops the dust measurement loop.
func (p *GrovePi) DustSensorDisable(ctx context.Context) error {
	return p.fire(ctx, cmdDustDisable)
}

// DustSensorRead returns the low pulse occupancy accumulated over the last
// measurement window as a 24-bit little-endian composite. ErrNoData means
// the current window has not completed yet.
func (p *GrovePi) DustSensorRead(ctx context.Context) (int, error) {
	block, err := p.block(ctx, cmdDustRead, false, 4)
	if err != nil {
		return 0, err
	}
	if block[0] == sentinel {
		return 0, fmt.Errorf("dust read: %w", grovepi.ErrNoData)
	}
	return int(block[3])<<16 | int(block[2])<<8 | int(block[1]), nil
}

// EncoderEnable starts rotary encoder tracking in the firmware.
func (p *GrovePi) EncoderEnable(ctx context.Context) error {
	return p.fire(ctx, cmdEncoderEnable)
}

// EncoderDisable stops rotary encoder tracking.
func (p *GrovePi) EncoderDisable(ctx context.Context) error {
	return p.fire(ctx, cmdEncoderDisable)
}

// EncoderRead returns the encoder position since the last read. ErrNoData
// means the encoder has not moved.
func (p *GrovePi) EncoderRead(ctx context.Context) (int, error) {
	block, err := p.block(ctx, cmdEncoderRead, false, 2)
	if err != nil {
		return 0, err
	}
	if block[0] == sentinel {
		return 0, fmt.Errorf("encoder read: %w", grovepi.ErrNoData)
	}
	return int(block[1]), nil
}

// FlowEnable starts flow sensor pulse counting in the firmware.
func (p *GrovePi) FlowEnable(ctx context.Context) error {
	return p.fire(ctx, cmdFlowEnable)
}

// FlowDisable stops flow sensor pulse counting.
func (p *GrovePi) FlowDisable(ctx context.Context) error {
	return p.fire(ctx, cmdFlowDisable)
}

// FlowRead returns the pulse count of the last measurement window as a
// 16-bit little-endian composite. ErrNoData means no completed window is
// available.
func (p *GrovePi) FlowRead(ctx context.Context) (int, error) {
	block, err := p.block(ctx, cmdFlowRead, false, 3)
	if err != nil {
		return 0, err
	}
	if block[0] == sentinel {
		return 0, fmt.Errorf("flow read: %w", grovepi.ErrNoData)
	}
	return composite16(block[2], block[1]), nil
}
