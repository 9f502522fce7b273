package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

var firmwareCmd = cli.Command{
	Name:  "firmware",
	Usage: "print the board firmware version",
	Action: func(c *cli.Context) error {
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		version, err := b.Version(ctx)
		if err != nil {
			return console.Exit(1, "error reading firmware version: %s", console.Red(err))
		}
		fmt.Printf("firmware version: %s\n", console.White(version))
		return nil
	},
}

var ultrasonicCmd = cli.Command{
	Name:      "ultrasonic",
	Aliases:   []string{"range"},
	Usage:     "read the ultrasonic ranger distance",
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
		distance, err := b.UltrasonicRead(ctx, pin)
		if err != nil {
			return console.Exit(1, "ultrasonic read error: %s", console.Red(err))
		}
		console.PInfof(console.PictoRuler, "distance: %s cm", console.White(distance))
		return nil
	},
}

var accelCmd = cli.Command{
	Name:  "accel",
	Usage: "read the accelerometer axes",
	Action: func(c *cli.Context) error {
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		x, y, z, err := b.AccelerometerXYZ(ctx)
		if err != nil {
			return console.Exit(1, "accelerometer read error: %s", console.Red(err))
		}
		fmt.Printf("x: %s y: %s z: %s\n", console.White(x), console.White(y), console.White(z))
		return nil
	},
}

var rtcCmd = cli.Command{
	Name:  "rtc",
	Usage: "dump the raw RTC clock block",
	Action: func(c *cli.Context) error {
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		block, err := b.RTCTime(ctx)
		if err != nil {
			return console.Exit(1, "rtc read error: %s", console.Red(err))
		}
		console.PInfof(console.PictoClock, "clock block: %s", console.White(hex.EncodeToString(block)))
		return nil
	},
}

var irCmd = cli.Command{
	Name:  "ir",
	Usage: "infrared receiver operations",
	Subcommands: []*cli.Command{
		&irReadCmd,
		&irPinCmd,
	},
}

var irReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Usage:   "dump the last captured IR signal",
	Action: func(c *cli.Context) error {
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		signal, err := b.IRRead(ctx)
		if err != nil {
			if errors.Is(err, grovepi.ErrNoData) {
				return console.Exit(1, "no signal captured since the last read")
			}
			return console.Exit(1, "ir read error: %s", console.Red(err))
		}
		console.Printf("signal: %s\n", console.White(hex.EncodeToString(signal)))
		return nil
	},
}

var irPinCmd = cli.Command{
	Name:      "pin",
	Usage:     "select the IR receiver pin",
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
		if err = b.IRReceiverPin(ctx, pin); err != nil {
			return console.Exit(1, "could not set receiver pin: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "IR receiver on D%d", pin)
		return nil
	},
}
