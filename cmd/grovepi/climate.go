package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi"
	"github.com/mklimuk/grovepi/board"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

var temperatureCmd = cli.Command{
	Name:      "temperature",
	Aliases:   []string{"temp"},
	Usage:     "read the analog thermistor",
	ArgsUsage: "<pin>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "model",
			Usage: "thermistor sensor revision (1.0, 1.1, 1.2)",
			Value: "1.2",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(1, "expected 1 argument, got %d", c.NArg())
		}
		pin, err := pinArg(c, 0)
		if err != nil {
			return err
		}
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		temp, err := b.Temperature(ctx, pin, board.ThermistorModel(c.String("model")))
		if err != nil {
			if errors.Is(err, grovepi.ErrInvalidReading) {
				return console.Exit(1, "sensor reading out of range, check the wiring")
			}
			return console.Exit(1, "error getting temperature read: %s", console.Red(err))
		}
		console.Printf("%s  %s°C\n", console.PictoThermometer, console.White(temp))
		return nil
	},
}

var dhtCmd = cli.Command{
	Name:      "dht",
	Usage:     "read temperature and humidity from a DHT module",
	ArgsUsage: "<pin>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "module",
			Usage: "sensor variant (blue, pro)",
			Value: "blue",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(1, "expected 1 argument, got %d", c.NArg())
		}
		pin, err := pinArg(c, 0)
		if err != nil {
			return err
		}
		module, err := dhtModule(c.String("module"))
		if err != nil {
			return console.Exit(1, "%v", err)
		}
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		temp, hum, err := b.DHT(ctx, pin, module)
		if err != nil {
			if errors.Is(err, grovepi.ErrNoData) {
				return console.Exit(1, "the sensor has no reading yet, try again in a second")
			}
			return console.Exit(1, "error getting temperature read: %s", console.Red(err))
		}
		console.Printf("%s  %s°C\n%s %s%%\n", console.PictoThermometer, console.White(temp), console.PictoHumidity, console.White(hum))
		return nil
	},
}
