package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mklimuk/grovepi/board"
	"github.com/mklimuk/grovepi/publish"
)

// Config is the optional board profile loaded from a yaml file. Command line
// flags override the profile.
type Config struct {
	Adapter    string        `yaml:"adapter"`
	Device     string        `yaml:"device"`
	Bus        int           `yaml:"bus"`
	Address    byte          `yaml:"address"`
	Thermistor string        `yaml:"thermistor"`
	DHT        string        `yaml:"dht"`
	Publish    PublishConfig `yaml:"publish"`
}

type PublishConfig struct {
	Broker   string        `yaml:"broker"`
	ClientID string        `yaml:"client_id"`
	Interval string        `yaml:"interval"`
	QOS      byte          `yaml:"qos"`
	Probes   []ProbeConfig `yaml:"probes"`
}

type ProbeConfig struct {
	Type  string `yaml:"type"`
	Topic string `yaml:"topic"`
	Pin   int    `yaml:"pin"`
}

func defaultConfig() *Config {
	return &Config{
		Adapter:    "i2c",
		Device:     "1",
		Bus:        1,
		Address:    board.DefaultAddress,
		Thermistor: string(board.ThermistorV12),
		DHT:        "blue",
	}
}

func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	err = yaml.Unmarshal(raw, config)
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return config, nil
}

func (c *PublishConfig) interval() (time.Duration, error) {
	if c.Interval == "" {
		return 10 * time.Second, nil
	}
	interval, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid publish interval %q: %w", c.Interval, err)
	}
	return interval, nil
}

func dhtModule(name string) (board.DHTModule, error) {
	switch name {
	case "", "blue", "dht11":
		return board.DHTBlue, nil
	case "pro", "white", "dht22":
		return board.DHTPro, nil
	}
	return 0, fmt.Errorf("unknown dht module %q", name)
}

func (c *Config) probes() ([]publish.Probe, error) {
	probes := make([]publish.Probe, 0, len(c.Publish.Probes))
	for _, pc := range c.Publish.Probes {
		if pc.Topic == "" {
			return nil, fmt.Errorf("probe %q has no topic", pc.Type)
		}
		switch pc.Type {
		case "digital":
			probes = append(probes, publish.DigitalProbe(pc.Topic, pc.Pin))
		case "analog":
			probes = append(probes, publish.AnalogProbe(pc.Topic, pc.Pin))
		case "ultrasonic":
			probes = append(probes, publish.UltrasonicProbe(pc.Topic, pc.Pin))
		case "temperature":
			probes = append(probes, publish.TemperatureProbe(pc.Topic, pc.Pin, board.ThermistorModel(c.Thermistor)))
		case "dht":
			module, err := dhtModule(c.DHT)
			if err != nil {
				return nil, err
			}
			probes = append(probes, publish.DHTProbe(pc.Topic, pc.Pin, module))
		case "dust":
			probes = append(probes, publish.DustProbe(pc.Topic))
		default:
			return nil, fmt.Errorf("unknown probe type %q", pc.Type)
		}
	}
	return probes, nil
}
