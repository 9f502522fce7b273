package board

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mklimuk/grovepi"
)

// PinMode is the I/O direction of an expansion board pin.
type PinMode byte

const (
	Input  PinMode = 0
	Output PinMode = 1
)

func (m PinMode) String() string {
	if m == Output {
		return "OUTPUT"
	}
	return "INPUT"
}

// DHTModule selects the connected DHT sensor variant.
type DHTModule byte

const (
	// DHTBlue is the basic DHT11 module.
	DHTBlue DHTModule = 0
	// DHTPro is the white DHT22 module.
	DHTPro DHTModule = 1
)

// SleepFunc waits out a settle delay. The default implementation blocks on a
// timer and aborts on context cancellation; tests inject a recorder instead
// of sleeping for real.
type SleepFunc func(ctx context.Context, d time.Duration) error

type Opts struct {
	Address byte
	Sleep   SleepFunc
}

type Opt func(*Opts)

func WithAddress(address byte) Opt {
	return func(o *Opts) {
		o.Address = address
	}
}

func WithSleepFunc(sleep SleepFunc) Opt {
	return func(o *Opts) {
		o.Sleep = sleep
	}
}

// GrovePi drives the expansion board firmware over a shared I2C transport.
// Every operation is a synchronous write→settle→read→decode round trip; the
// struct holds no state beyond the transport handle and a scratch buffer, so
// a single instance is meant to live for the process lifetime. The driver
// performs no retries and assumes it is not entered concurrently; callers
// sharing a handle across goroutines must serialize full operations
// themselves.
//
// Typical usage:
//
//	b := board.New(bus)
//	v, err := b.DigitalRead(ctx, 2)
type GrovePi struct {
	transport grovepi.I2CBus
	addr      byte
	sleep     SleepFunc
	buf       []byte
}

func New(transport grovepi.I2CBus, opts ...Opt) *GrovePi {
	config := Opts{
		Address: DefaultAddress,
		Sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &GrovePi{
		transport: transport,
		addr:      config.Address,
		sleep:     config.Sleep,
		buf:       make([]byte, irBlockLen),
	}
}

// irBlockLen is the length of the IR signal capture block; all other block
// reads fit in the standard 5-byte response.
const irBlockLen = 21

const blockLen = 5

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// command encodes and writes a single 4-byte frame.
func (p *GrovePi) command(ctx context.Context, cmd byte, params ...int) error {
	frame := buildFrame(cmd, params...)
	if err := p.transport.WriteToAddr(ctx, p.addr, frame[:]); err != nil {
		return fmt.Errorf("command %#x write failed: %w", cmd, err)
	}
	return nil
}

// fire runs a fire-and-forget command: frame write plus the command's settle
// delay, with no response read.
func (p *GrovePi) fire(ctx context.Context, cmd byte, params ...int) error {
	if err := p.command(ctx, cmd, params...); err != nil {
		return err
	}
	return p.sleep(ctx, settleDelay(cmd))
}

// block is the generic read path shared by all block-read commands: frame
// write, settle delay, optional dummy status byte, then an n-byte block read.
// The returned slice aliases the scratch buffer and is only valid until the
// next operation.
func (p *GrovePi) block(ctx context.Context, cmd byte, discard bool, n int, params ...int) ([]byte, error) {
	if err := p.command(ctx, cmd, params...); err != nil {
		return nil, err
	}
	if err := p.sleep(ctx, settleDelay(cmd)); err != nil {
		return nil, err
	}
	if discard {
		if err := p.transport.ReadFromAddr(ctx, p.addr, p.buf[:1]); err != nil {
			return nil, fmt.Errorf("command %#x status read failed: %w", cmd, err)
		}
	}
	buf := p.buf[:n]
	if err := p.transport.ReadFromAddr(ctx, p.addr, buf); err != nil {
		return nil, fmt.Errorf("command %#x block read failed: %w", cmd, err)
	}
	return buf, nil
}

// PinMode sets the I/O direction of a pin.
func (p *GrovePi) PinMode(ctx context.Context, pin int, mode PinMode) error {
	return p.fire(ctx, cmdPinMode, pin, int(mode))
}

// DigitalRead returns the level of a digital input pin.
func (p *GrovePi) DigitalRead(ctx context.Context, pin int) (byte, error) {
	if err := p.command(ctx, cmdDigitalRead, pin); err != nil {
		return 0, err
	}
	if err := p.sleep(ctx, settleDelay(cmdDigitalRead)); err != nil {
		return 0, err
	}
	if err := p.transport.ReadFromAddr(ctx, p.addr, p.buf[:1]); err != nil {
		return 0, fmt.Errorf("digital read failed: %w", err)
	}
	return p.buf[0], nil
}

// DigitalWrite sets the level of a digital output pin.
func (p *GrovePi) DigitalWrite(ctx context.Context, pin int, value byte) error {
	return p.fire(ctx, cmdDigitalWrite, pin, int(value))
}

// AnalogRead returns the 10-bit reading of an analog input pin.
func (p *GrovePi) AnalogRead(ctx context.Context, pin int) (int, error) {
	block, err := p.block(ctx, cmdAnalogRead, true, blockLen, pin)
	if err != nil {
		return 0, err
	}
	value := composite16(block[1], block[2])
	// the ADC needs another settle period before the next conversion
	if err := p.sleep(ctx, settleRead); err != nil {
		return 0, err
	}
	return value, nil
}

// AnalogWrite sets the PWM duty cycle of an output pin.
func (p *GrovePi) AnalogWrite(ctx context.Context, pin int, value byte) error {
	return p.fire(ctx, cmdAnalogWrite, pin, int(value))
}

// UltrasonicRead returns the distance in centimeters measured by the
// ultrasonic ranger on the given pin.
func (p *GrovePi) UltrasonicRead(ctx context.Context, pin int) (int, error) {
	block, err := p.block(ctx, cmdUltrasonicRead, true, blockLen, pin)
	if err != nil {
		return 0, err
	}
	return composite16(block[1], block[2]), nil
}

// Version returns the firmware version triplet, e.g. "1.4.2".
func (p *GrovePi) Version(ctx context.Context) (string, error) {
	block, err := p.block(ctx, cmdVersion, true, blockLen)
	if err != nil {
		return "", err
	}
	return versionString(block[1], block[2], block[3]), nil
}

// Temperature reads the analog thermistor on the given pin and converts the
// raw value to degrees Celsius using the model's B-coefficient. Readings the
// conversion cannot represent surface as ErrInvalidReading.
func (p *GrovePi) Temperature(ctx context.Context, pin int, model ThermistorModel) (float64, error) {
	raw, err := p.AnalogRead(ctx, pin)
	if err != nil {
		return 0, err
	}
	return thermistorCelsius(raw, model.bCoefficient())
}

// AccelerometerXYZ returns the three axis readings of the +/-1.5g
// accelerometer in the firmware's signed-offset convention.
func (p *GrovePi) AccelerometerXYZ(ctx context.Context) (x, y, z int, err error) {
	block, err := p.block(ctx, cmdAccelXYZ, true, blockLen)
	if err != nil {
		return 0, 0, 0, err
	}
	return signedOffset(block[1]), signedOffset(block[2]), signedOffset(block[3]), nil
}

// RTCTime returns the raw clock block read from the RTC module. Its layout
// depends on the firmware version, so interpretation is left to the caller.
func (p *GrovePi) RTCTime(ctx context.Context) ([]byte, error) {
	block, err := p.block(ctx, cmdRTCGetTime, true, blockLen)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(block))
	copy(out, block)
	return out, nil
}

// DHT reads temperature (Celsius) and relative humidity (%) from a DHT
// module, both rounded to 2 decimal places. A block the sensor has not
// filled yet surfaces as ErrNoData, a not-a-number conversion as
// ErrInvalidReading.
func (p *GrovePi) DHT(ctx context.Context, pin int, module DHTModule) (temperature, humidity float64, err error) {
	block, err := p.block(ctx, cmdDHTRead, true, 9, pin, int(module))
	if err != nil {
		return 0, 0, err
	}
	if malformed(block[1:9]) {
		return 0, 0, fmt.Errorf("dht read: %w", grovepi.ErrNoData)
	}
	temperature = float32At(block[1:5])
	humidity = float32At(block[5:9])
	if err := p.sleep(ctx, settleRead); err != nil {
		return 0, 0, err
	}
	if math.IsNaN(temperature) || math.IsNaN(humidity) {
		return 0, 0, fmt.Errorf("dht read: %w", grovepi.ErrInvalidReading)
	}
	return temperature, humidity, nil
}

// malformed reports a payload the sensor never wrote, left at the bus idle
// pattern.
func malformed(payload []byte) bool {
	for _, b := range payload {
		if b != sentinel {
			return false
		}
	}
	return true
}

// IRRead returns the raw 21-byte capture of the IR receiver. When no signal
// has been captured since the last read the firmware sets the sentinel in
// the header byte, surfaced as ErrNoData.
func (p *GrovePi) IRRead(ctx context.Context) ([]byte, error) {
	block, err := p.block(ctx, cmdIRRead, false, irBlockLen)
	if err != nil {
		return nil, err
	}
	if block[1] == sentinel {
		return nil, fmt.Errorf("ir read: %w", grovepi.ErrNoData)
	}
	out := make([]byte, len(block))
	copy(out, block)
	return out, nil
}

// IRReceiverPin selects the pin the IR receiver is connected to.
func (p *GrovePi) IRReceiverPin(ctx context.Context, pin int) error {
	return p.fire(ctx, cmdIRRecvPin, pin)
}
