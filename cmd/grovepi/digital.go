package main

import (
	"context"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi/board"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

const commandTimeout = 5 * time.Second

func pinArg(c *cli.Context, index int) (int, error) {
	pin, err := strconv.Atoi(c.Args().Get(index))
	if err != nil {
		return 0, console.Exit(1, "invalid pin %q: %v", c.Args().Get(index), err)
	}
	return pin, nil
}

var digitalCmd = cli.Command{
	Name:    "digital",
	Aliases: []string{"d"},
	Usage:   "digital pin operations",
	Subcommands: []*cli.Command{
		&digitalReadCmd,
		&digitalWriteCmd,
	},
}

var digitalReadCmd = cli.Command{
	Name:      "read",
	Aliases:   []string{"rd"},
	Usage:     "read the level of a digital pin",
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
		value, err := b.DigitalRead(ctx, pin)
		if err != nil {
			return console.Exit(1, "digital read error: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "D%d: %s", pin, console.White(value))
		return nil
	},
}

var digitalWriteCmd = cli.Command{
	Name:      "write",
	Aliases:   []string{"wr"},
	Usage:     "set the level of a digital pin",
	ArgsUsage: "<pin> <0|1>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
		}
		pin, err := pinArg(c, 0)
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(c.Args().Get(1))
		if err != nil || value < 0 || value > 1 {
			return console.Exit(1, "invalid value %q, expected 0 or 1", c.Args().Get(1))
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
		if err = b.DigitalWrite(ctx, pin, byte(value)); err != nil {
			return console.Exit(1, "digital write error: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "D%d set to %s", pin, console.White(value))
		return nil
	},
}
