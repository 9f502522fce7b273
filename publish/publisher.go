package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/mklimuk/grovepi"
)

const connectTimeout = 30 * time.Second

// Publisher samples a set of probes on a fixed interval and pushes the
// readings to an MQTT broker as JSON.
type Publisher struct {
	client   mqtt.Client
	board    Board
	probes   []Probe
	interval time.Duration
	qos      byte
}

type Opts struct {
	Interval time.Duration
	QOS      byte
}

type Opt func(*Opts)

func WithInterval(interval time.Duration) Opt {
	return func(o *Opts) {
		o.Interval = interval
	}
}

func WithQOS(qos byte) Opt {
	return func(o *Opts) {
		o.QOS = qos
	}
}

// NewClient builds a connected paho client with sane defaults for a
// long-running field deployment.
func NewClient(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetConnectionLostHandler(func(c mqtt.Client, err error) {
		slog.Warn("mqtt connection lost", "error", err)
	})
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		slog.Info("mqtt connected", "broker", broker)
	})
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect timeout after %s", connectTimeout)
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect failed: %w", token.Error())
	}
	return client, nil
}

func NewPublisher(client mqtt.Client, b Board, probes []Probe, opts ...Opt) *Publisher {
	o := &Opts{
		Interval: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Publisher{
		client:   client,
		board:    b,
		probes:   probes,
		interval: o.Interval,
		qos:      o.QOS,
	}
}

// Run publishes until the context is cancelled. Sensors that have no data
// yet skip the cycle; other sampling errors are logged and retried on the
// next tick.
func (p *Publisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

func (p *Publisher) cycle(ctx context.Context) {
	for _, probe := range p.probes {
		readings, err := probe.Sample(ctx, p.board)
		if err != nil {
			if errors.Is(err, grovepi.ErrNoData) {
				slog.Debug("no data available yet", "topic", probe.Topic)
				continue
			}
			slog.Error("sampling failed", "topic", probe.Topic, "error", err)
			continue
		}
		for _, reading := range readings {
			if err = p.publish(probe.Topic, reading); err != nil {
				slog.Error("publish failed", "topic", probe.Topic, "error", err)
			}
		}
	}
}

func (p *Publisher) publish(topic string, reading Reading) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("could not encode reading: %w", err)
	}
	token := p.client.Publish(topic, p.qos, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("could not publish to %s: %w", topic, token.Error())
	}
	return nil
}
