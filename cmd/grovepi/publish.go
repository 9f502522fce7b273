package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/grovepi/cmd/grovepi/console"
	"github.com/mklimuk/grovepi/publish"
)

var publishCmd = cli.Command{
	Name:  "publish",
	Usage: "sample configured probes and publish readings over MQTT",
	Action: func(c *cli.Context) error {
		if c.String("config") == "" {
			return console.Exit(1, "the publish command requires a config file")
		}
		config, err := loadConfig(c.String("config"))
		if err != nil {
			return console.Exit(1, "%v", err)
		}
		if config.Publish.Broker == "" {
			return console.Exit(1, "no broker configured")
		}
		probes, err := config.probes()
		if err != nil {
			return console.Exit(1, "%v", err)
		}
		if len(probes) == 0 {
			return console.Exit(1, "no probes configured")
		}
		interval, err := config.Publish.interval()
		if err != nil {
			return console.Exit(1, "%v", err)
		}
		b, closer, err := openBoard(c)
		if err != nil {
			return err
		}
		defer closer()
		clientID := config.Publish.ClientID
		if clientID == "" {
			clientID = "grovepi"
		}
		client, err := publish.NewClient(config.Publish.Broker, clientID)
		if err != nil {
			return console.Exit(1, "mqtt error: %s", console.Red(err))
		}
		defer client.Disconnect(1000)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		console.Infof("publishing %d probes to %s every %s", len(probes), config.Publish.Broker, interval)
		publisher := publish.NewPublisher(client, b, probes,
			publish.WithInterval(interval),
			publish.WithQOS(config.Publish.QOS))
		err = publisher.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return console.Exit(1, "publisher error: %s", console.Red(err))
		}
		return nil
	},
}
