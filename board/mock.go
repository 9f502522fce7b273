package board

import "context"

// PinReadBehaviorFunc defines the behavior of a mocked pin read, keyed by
// the pin it was invoked for.
type PinReadBehaviorFunc func(ctx context.Context, pin int) (int, error)

// TempHumBehaviorFunc defines the behavior of a mocked temperature/humidity
// read.
type TempHumBehaviorFunc func(ctx context.Context) (float64, float64, error)

// CounterBehaviorFunc defines the behavior of a mocked counter-style read
// (dust, encoder, flow).
type CounterBehaviorFunc func(ctx context.Context) (int, error)

// MockBoard is a hardware-free stand-in for the board façade, driven by
// behavior functions. It covers the read surface consumers typically poll;
// unset behaviors return zero values.
//
// Example usage:
//
//	b := &board.MockBoard{
//		AnalogReadBehavior: func(ctx context.Context, pin int) (int, error) {
//			return 512, nil
//		},
//	}
type MockBoard struct {
	DigitalReadBehavior    PinReadBehaviorFunc
	AnalogReadBehavior     PinReadBehaviorFunc
	UltrasonicReadBehavior PinReadBehaviorFunc
	TemperatureBehavior    func(ctx context.Context, pin int, model ThermistorModel) (float64, error)
	DHTBehavior            TempHumBehaviorFunc
	DustReadBehavior       CounterBehaviorFunc
}

func (m *MockBoard) DigitalRead(ctx context.Context, pin int) (byte, error) {
	if m.DigitalReadBehavior == nil {
		return 0, nil
	}
	v, err := m.DigitalReadBehavior(ctx, pin)
	return byte(v), err
}

func (m *MockBoard) AnalogRead(ctx context.Context, pin int) (int, error) {
	if m.AnalogReadBehavior == nil {
		return 0, nil
	}
	return m.AnalogReadBehavior(ctx, pin)
}

func (m *MockBoard) UltrasonicRead(ctx context.Context, pin int) (int, error) {
	if m.UltrasonicReadBehavior == nil {
		return 0, nil
	}
	return m.UltrasonicReadBehavior(ctx, pin)
}

func (m *MockBoard) Temperature(ctx context.Context, pin int, model ThermistorModel) (float64, error) {
	if m.TemperatureBehavior == nil {
		return 0, nil
	}
	return m.TemperatureBehavior(ctx, pin, model)
}

func (m *MockBoard) DHT(ctx context.Context, pin int, module DHTModule) (float64, float64, error) {
	if m.DHTBehavior == nil {
		return 0, 0, nil
	}
	return m.DHTBehavior(ctx)
}

func (m *MockBoard) DustSensorRead(ctx context.Context) (int, error) {
	if m.DustReadBehavior == nil {
		return 0, nil
	}
	return m.DustReadBehavior(ctx)
}
