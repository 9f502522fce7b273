package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	chlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi/cmd/grovepi/console"
)

var version string
var commit string
var date string

func main() {
	os.Exit(run())
}

func run() int {
	app := cli.NewApp()
	app.Name = "grovepi"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s-%s-%s", version, date, commit)
	app.Usage = "expansion board cli"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable verbose logging",
		},
		&cli.StringFlag{
			Name:  "adapter",
			Usage: "bus transport (i2c, mcp2221, gobot)",
		},
		&cli.StringFlag{
			Name:  "device",
			Usage: "i2c bus name or device path",
		},
		&cli.IntFlag{
			Name:  "address",
			Usage: "board i2c address",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "board profile yaml file",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		charm := chlog.NewWithOptions(os.Stdout, chlog.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
		})
		charm.SetColorProfile(termenv.TrueColor)
		charm.SetLevel(chlog.InfoLevel)
		if ctx.Bool("verbose") {
			charm.SetLevel(chlog.DebugLevel)
			console.Trace = true
		}
		slog.SetDefault(slog.New(charm))
		return nil
	}
	app.Commands = cli.Commands{
		&digitalCmd,
		&analogCmd,
		&temperatureCmd,
		&dhtCmd,
		&ultrasonicCmd,
		&firmwareCmd,
		&accelCmd,
		&rtcCmd,
		&irCmd,
		&dustCmd,
		&encoderCmd,
		&flowCmd,
		&ledbarCmd,
		&displayCmd,
		&rgbCmd,
		&publishCmd,
		&usbCmd,
		&mcp2221Cmd,
	}
	err := app.Run(os.Args)
	if err != nil {
		var exerr cli.ExitCoder
		if errors.As(err, &exerr) {
			log.Printf("unexpected error: %v", err)
			return exerr.ExitCode()
		}
		return 1
	}
	return 0
}
