package grovepi

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// AddressableReader reads len(buffer) bytes from the device at the given
// 7-bit address. Implementations block until the transfer completes or the
// transport signals a failure; they never retry.
type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

// AddressableWriter writes buffer to the device at the given 7-bit address.
type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is the transport boundary of the board driver. Every failure below
// this interface surfaces as a wrapped error carrying the original
// diagnostic; settle delays between write and read are the caller's job.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}
