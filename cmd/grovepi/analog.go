package main

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi/board"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

var analogCmd = cli.Command{
	Name:    "analog",
	Aliases: []string{"a"},
	Usage:   "analog pin operations",
	Subcommands: []*cli.Command{
		&analogReadCmd,
		&analogWriteCmd,
	},
}

var analogReadCmd = cli.Command{
	Name:      "read",
	Aliases:   []string{"rd"},
	Usage:     "read the 10-bit value of an analog pin",
	ArgsUsage: "<pin>",
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
		if err = b.PinMode(ctx, pin, board.Input); err != nil {
			return console.Exit(1, "could not set pin mode: %s", console.Red(err))
		}
		value, err := b.AnalogRead(ctx, pin)
		if err != nil {
			return console.Exit(1, "analog read error: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "A%d: %s", pin, console.White(value))
		return nil
	},
}

var analogWriteCmd = cli.Command{
	Name:      "write",
	Aliases:   []string{"wr"},
	Usage:     "set the PWM duty cycle of an analog output pin",
	ArgsUsage: "<pin> <0-255>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
		}
		pin, err := pinArg(c, 0)
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(c.Args().Get(1))
		if err != nil || value < 0 || value > 255 {
			return console.Exit(1, "invalid value %q, expected 0-255", c.Args().Get(1))
		}
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		if err = b.PinMode(ctx, pin, board.Output); err != nil {
			return console.Exit(1, "could not set pin mode: %s", console.Red(err))
		}
		if err = b.AnalogWrite(ctx, pin, byte(value)); err != nil {
			return console.Exit(1, "analog write error: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "A%d set to %s", pin, console.White(value))
		return nil
	},
}
