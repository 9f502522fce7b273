package main

import (
	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/raspi"

	"github.com/mklimuk/grovepi"
	"github.com/mklimuk/grovepi/adapter"
	"github.com/mklimuk/grovepi/board"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
	"github.com/mklimuk/grovepi/gobotio"
	"github.com/mklimuk/grovepi/i2c"
)

// openBoard builds the board handle over the transport selected by flags and
// the optional config profile. The returned closer releases the transport.
func openBoard(c *cli.Context) (*board.GrovePi, func(), error) {
	config, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.IsSet("adapter") {
		config.Adapter = c.String("adapter")
	}
	if c.IsSet("device") {
		config.Device = c.String("device")
	}
	if c.IsSet("address") {
		config.Address = byte(c.Int("address"))
	}

	var bus grovepi.I2CBus
	closer := func() {}
	switch config.Adapter {
	case "mcp2221":
		bus = adapter.NewMCP2221()
	case "gobot":
		adaptor := raspi.NewAdaptor()
		if err = adaptor.Connect(); err != nil {
			return nil, nil, console.Exit(1, "adaptor connect error: %s", console.Red(err))
		}
		connector := gobotio.NewConnectorBus(adaptor, gobotio.WithBusNumber(config.Bus))
		bus = connector
		closer = func() {
			if err := connector.Close(); err != nil {
				console.Errorf("error closing bus: %s", console.Red(err))
			}
			_ = adaptor.Finalize()
		}
	case "i2c", "generic", "":
		generic, err := i2c.NewGenericBus(config.Device)
		if err != nil {
			return nil, nil, console.Exit(1, "bus initialization error: %s", console.Red(err))
		}
		bus = generic
		closer = func() {
			if err := generic.Close(); err != nil {
				console.Errorf("error closing bus: %s", console.Red(err))
			}
		}
	default:
		return nil, nil, console.Exit(1, "unknown adapter %s", console.Red(config.Adapter))
	}
	return board.New(bus, board.WithAddress(config.Address)), closer, nil
}
