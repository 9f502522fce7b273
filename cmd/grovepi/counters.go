package main

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

// counter sensors accumulate between polls; give the first read time to fill
const counterTimeout = 30 * time.Second

var dustCmd = cli.Command{
	Name:  "dust",
	Usage: "dust sensor operations",
	Subcommands: []*cli.Command{
		{
			Name:  "enable",
			Usage: "start dust concentration sampling on D2",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				if err = b.DustSensorEnable(ctx); err != nil {
					return console.Exit(1, "could not enable dust sensor: %s", console.Red(err))
				}
				console.Info("dust sampling enabled")
				return nil
			},
		},
		{
			Name:  "disable",
			Usage: "stop dust concentration sampling",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				if err = b.DustSensorDisable(ctx); err != nil {
					return console.Exit(1, "could not disable dust sensor: %s", console.Red(err))
				}
				console.Info("dust sampling disabled")
				return nil
			},
		},
		{
			Name:    "read",
			Aliases: []string{"rd"},
			Usage:   "read the latest low pulse occupancy value",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), counterTimeout)
				defer cancel()
				lpo, err := b.DustSensorRead(ctx)
				if err != nil {
					if errors.Is(err, grovepi.ErrNoData) {
						return console.Exit(1, "no sample window has completed yet, try again later")
					}
					return console.Exit(1, "dust read error: %s", console.Red(err))
				}
				console.PInfof(console.PictoDust, "low pulse occupancy: %s", console.White(lpo))
				return nil
			},
		},
	},
}

var encoderCmd = cli.Command{
	Name:  "encoder",
	Usage: "rotary encoder operations",
	Subcommands: []*cli.Command{
		{
			Name:  "enable",
			Usage: "start tracking encoder position on D2/D3",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				if err = b.EncoderEnable(ctx); err != nil {
					return console.Exit(1, "could not enable encoder: %s", console.Red(err))
				}
				console.Info("encoder tracking enabled")
				return nil
			},
		},
		{
			Name:  "disable",
			Usage: "stop tracking encoder position",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				if err = b.EncoderDisable(ctx); err != nil {
					return console.Exit(1, "could not disable encoder: %s", console.Red(err))
				}
				console.Info("encoder tracking disabled")
				return nil
			},
		},
		{
			Name:    "read",
			Aliases: []string{"rd"},
			Usage:   "read the current encoder position",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				position, err := b.EncoderRead(ctx)
				if err != nil {
					if errors.Is(err, grovepi.ErrNoData) {
						return console.Exit(1, "the encoder has not moved since the last read")
					}
					return console.Exit(1, "encoder read error: %s", console.Red(err))
				}
				console.Printf("position: %s\n", console.White(position))
				return nil
			},
		},
	},
}

var flowCmd = cli.Command{
	Name:  "flow",
	Usage: "flow meter operations",
	Subcommands: []*cli.Command{
		{
			Name:  "enable",
			Usage: "start counting flow pulses on D2",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				if err = b.FlowEnable(ctx); err != nil {
					return console.Exit(1, "could not enable flow meter: %s", console.Red(err))
				}
				console.Info("flow counting enabled")
				return nil
			},
		},
		{
			Name:  "disable",
			Usage: "stop counting flow pulses",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				if err = b.FlowDisable(ctx); err != nil {
					return console.Exit(1, "could not disable flow meter: %s", console.Red(err))
				}
				console.Info("flow counting disabled")
				return nil
			},
		},
		{
			Name:    "read",
			Aliases: []string{"rd"},
			Usage:   "read the pulse count since the last read",
			Action: func(c *cli.Context) error {
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
				defer cancel()
				count, err := b.FlowRead(ctx)
				if err != nil {
					if errors.Is(err, grovepi.ErrNoData) {
						return console.Exit(1, "no pulses counted since the last read")
					}
					return console.Exit(1, "flow read error: %s", console.Red(err))
				}
				console.Printf("pulses: %s\n", console.White(count))
				return nil
			},
		},
	},
}
