package publish

import (
	"context"
	"time"

	"github.com/mklimuk/grovepi/board"
)

// Board is the read surface probes poll. *board.GrovePi satisfies it, as
// does board.MockBoard in tests.
type Board interface {
	DigitalRead(ctx context.Context, pin int) (byte, error)
	AnalogRead(ctx context.Context, pin int) (int, error)
	UltrasonicRead(ctx context.Context, pin int) (int, error)
	Temperature(ctx context.Context, pin int, model board.ThermistorModel) (float64, error)
	DHT(ctx context.Context, pin int, module board.DHTModule) (float64, float64, error)
	DustSensorRead(ctx context.Context) (int, error)
}

// Reading is the payload published for a single sampled value.
type Reading struct {
	Sensor string  `json:"sensor"`
	Pin    int     `json:"pin,omitempty"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Time   string  `json:"time"`
}

// SampleFunc polls the board for one or more readings. Returning
// grovepi.ErrNoData skips the cycle without failing the publisher.
type SampleFunc func(ctx context.Context, b Board) ([]Reading, error)

// Probe binds a sampler to the topic its readings are published under.
type Probe struct {
	Topic  string
	Sample SampleFunc
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func DigitalProbe(topic string, pin int) Probe {
	return Probe{
		Topic: topic,
		Sample: func(ctx context.Context, b Board) ([]Reading, error) {
			v, err := b.DigitalRead(ctx, pin)
			if err != nil {
				return nil, err
			}
			return []Reading{{Sensor: "digital", Pin: pin, Value: float64(v), Time: stamp()}}, nil
		},
	}
}

func AnalogProbe(topic string, pin int) Probe {
	return Probe{
		Topic: topic,
		Sample: func(ctx context.Context, b Board) ([]Reading, error) {
			v, err := b.AnalogRead(ctx, pin)
			if err != nil {
				return nil, err
			}
			return []Reading{{Sensor: "analog", Pin: pin, Value: float64(v), Time: stamp()}}, nil
		},
	}
}

func UltrasonicProbe(topic string, pin int) Probe {
	return Probe{
		Topic: topic,
		Sample: func(ctx context.Context, b Board) ([]Reading, error) {
			v, err := b.UltrasonicRead(ctx, pin)
			if err != nil {
				return nil, err
			}
			return []Reading{{Sensor: "ultrasonic", Pin: pin, Value: float64(v), Unit: "cm", Time: stamp()}}, nil
		},
	}
}

func TemperatureProbe(topic string, pin int, model board.ThermistorModel) Probe {
	return Probe{
		Topic: topic,
		Sample: func(ctx context.Context, b Board) ([]Reading, error) {
			t, err := b.Temperature(ctx, pin, model)
			if err != nil {
				return nil, err
			}
			return []Reading{{Sensor: "temperature", Pin: pin, Value: t, Unit: "°C", Time: stamp()}}, nil
		},
	}
}

// DHTProbe yields two readings per cycle, temperature and relative humidity.
func DHTProbe(topic string, pin int, module board.DHTModule) Probe {
	return Probe{
		Topic: topic,
		Sample: func(ctx context.Context, b Board) ([]Reading, error) {
			temp, hum, err := b.DHT(ctx, pin, module)
			if err != nil {
				return nil, err
			}
			now := stamp()
			return []Reading{
				{Sensor: "dht_temperature", Pin: pin, Value: temp, Unit: "°C", Time: now},
				{Sensor: "dht_humidity", Pin: pin, Value: hum, Unit: "%", Time: now},
			}, nil
		},
	}
}

func DustProbe(topic string) Probe {
	return Probe{
		Topic: topic,
		Sample: func(ctx context.Context, b Board) ([]Reading, error) {
			lpo, err := b.DustSensorRead(ctx)
			if err != nil {
				return nil, err
			}
			return []Reading{{Sensor: "dust", Value: float64(lpo), Unit: "lpo", Time: stamp()}}, nil
		},
	}
}
