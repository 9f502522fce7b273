package main

import (
	"context"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi/board"
	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

func intArg(c *cli.Context, index int) (int, error) {
	value, err := strconv.Atoi(c.Args().Get(index))
	if err != nil {
		return 0, console.Exit(1, "invalid argument %q: %v", c.Args().Get(index), err)
	}
	return value, nil
}

var ledbarCmd = cli.Command{
	Name:  "ledbar",
	Usage: "10-segment LED bar operations",
	Subcommands: []*cli.Command{
		{
			Name:      "init",
			Usage:     "initialise the bar",
			ArgsUsage: "<pin>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "reverse",
					Usage: "green-to-red orientation",
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
				orientation := board.LEDBarRedToGreen
				if c.Bool("reverse") {
					orientation = board.LEDBarGreenToRed
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.LEDBarInit(ctx, pin, orientation)
				})
			},
		},
		{
			Name:      "level",
			Usage:     "light the first n segments",
			ArgsUsage: "<pin> <0-10>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				level, err := intArg(c, 1)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.LEDBarSetLevel(ctx, pin, level)
				})
			},
		},
		{
			Name:      "toggle",
			Usage:     "toggle a single segment (1-10)",
			ArgsUsage: "<pin> <led>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				led, err := intArg(c, 1)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.LEDBarToggleLED(ctx, pin, led)
				})
			},
		},
		{
			Name:      "bits",
			Usage:     "set all segments from a bitmask",
			ArgsUsage: "<pin> <mask>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				mask, err := strconv.ParseUint(c.Args().Get(1), 0, 16)
				if err != nil {
					return console.Exit(1, "invalid bitmask %q: %v", c.Args().Get(1), err)
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.LEDBarSetBits(ctx, pin, uint16(mask))
				})
			},
		},
		{
			Name:      "get",
			Usage:     "print the current segment bitmask",
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
				bits, err := b.LEDBarGetBits(ctx, pin)
				if err != nil {
					return console.Exit(1, "ledbar read error: %s", console.Red(err))
				}
				console.Printf("segments: %s\n", console.White(strconv.FormatUint(uint64(bits), 2)))
				return nil
			},
		},
	},
}

var displayCmd = cli.Command{
	Name:  "display",
	Usage: "4-digit display operations",
	Subcommands: []*cli.Command{
		{
			Name:      "init",
			Usage:     "initialise the display",
			ArgsUsage: "<pin>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return console.Exit(1, "expected 1 argument, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.FourDigitInit(ctx, pin)
				})
			},
		},
		{
			Name:      "brightness",
			Usage:     "set display brightness (0-7)",
			ArgsUsage: "<pin> <level>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				level, err := intArg(c, 1)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.FourDigitBrightness(ctx, pin, level)
				})
			},
		},
		{
			Name:      "show",
			Usage:     "render a value on the display",
			ArgsUsage: "<pin> <value>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "zeros",
					Usage: "keep leading zeros",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				value, err := strconv.ParseUint(c.Args().Get(1), 10, 16)
				if err != nil {
					return console.Exit(1, "invalid value %q: %v", c.Args().Get(1), err)
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.FourDigitValue(ctx, pin, uint16(value), c.Bool("zeros"))
				})
			},
		},
		{
			Name:      "score",
			Usage:     "render two values with the colon lit",
			ArgsUsage: "<pin> <left> <right>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return console.Exit(1, "expected 3 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				left, err := intArg(c, 1)
				if err != nil {
					return err
				}
				right, err := intArg(c, 2)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.FourDigitScore(ctx, pin, left, right)
				})
			},
		},
		{
			Name:      "monitor",
			Usage:     "mirror an analog pin on the display for a number of seconds",
			ArgsUsage: "<pin> <analog pin> <seconds>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return console.Exit(1, "expected 3 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				analogPin, err := intArg(c, 1)
				if err != nil {
					return err
				}
				seconds, err := intArg(c, 2)
				if err != nil {
					return err
				}
				answer, err := console.YesOrNo("monitoring blocks the bus for the whole duration, continue?")
				if err != nil {
					return console.Exit(1, "prompt error: %v", err)
				}
				if answer == console.No {
					return nil
				}
				b, closer, err := openBoard(c)
				if err != nil {
					return err
				}
				defer closer()
				ctx, cancel := context.WithTimeout(context.Background(), time.Duration(seconds+10)*time.Second)
				defer cancel()
				if err = b.FourDigitMonitor(ctx, pin, analogPin, seconds); err != nil {
					return console.Exit(1, "monitor error: %s", console.Red(err))
				}
				return nil
			},
		},
		{
			Name:      "on",
			Usage:     "light the whole display",
			ArgsUsage: "<pin>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return console.Exit(1, "expected 1 argument, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.FourDigitOn(ctx, pin)
				})
			},
		},
		{
			Name:      "off",
			Usage:     "turn the whole display off",
			ArgsUsage: "<pin>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return console.Exit(1, "expected 1 argument, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.FourDigitOff(ctx, pin)
				})
			},
		},
	},
}

var rgbCmd = cli.Command{
	Name:  "rgb",
	Usage: "chainable RGB LED operations",
	Subcommands: []*cli.Command{
		{
			Name:      "test",
			Usage:     "initialise a chain and light a 3-bit test color",
			ArgsUsage: "<pin> <leds> <0-7>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return console.Exit(1, "expected 3 arguments, got %d", c.NArg())
				}
				pin, err := pinArg(c, 0)
				if err != nil {
					return err
				}
				numLEDs, err := intArg(c, 1)
				if err != nil {
					return err
				}
				testColor, err := intArg(c, 2)
				if err != nil {
					return err
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					return b.ChainableRGBTest(ctx, pin, numLEDs, testColor)
				})
			},
		},
		{
			Name:      "level",
			Usage:     "store a color and light it bar-graph style",
			ArgsUsage: "<pin> <level> <r> <g> <b>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 5 {
					return console.Exit(1, "expected 5 arguments, got %d", c.NArg())
				}
				args := make([]int, 5)
				for i := range args {
					value, err := intArg(c, i)
					if err != nil {
						return err
					}
					args[i] = value
				}
				return displayAction(c, func(ctx context.Context, b *board.GrovePi) error {
					if err := b.StoreColor(ctx, args[2], args[3], args[4]); err != nil {
						return err
					}
					return b.ChainableRGBLevel(ctx, args[0], args[1], 0)
				})
			},
		},
	},
}

// displayAction wraps the open board, run command, close sequence shared by
// the fire-and-forget display commands.
func displayAction(c *cli.Context, action func(ctx context.Context, b *board.GrovePi) error) error {
	b, closer, err := openBoard(c)
	if err != nil {
		return err
	}
	defer closer()
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err = action(ctx, b); err != nil {
		return console.Exit(1, "display command error: %s", console.Red(err))
	}
	return nil
}
