// Command odata-capabilities inspects the capability annotations of an OData model.
//
//	odata-capabilities inspect --settings settings.yaml model.json
//
// The report lists for every entity set and singleton the decoded capabilities and the
// operations a generated API description would carry.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		slog.Error("error running command", "err", err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "odata-capabilities",
		Usage: "Inspect capability annotations of OData models",
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "Print the capability report of a CSDL JSON model",
				ArgsUsage: "model.json",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "settings",
						Aliases: []string{"s"},
						Usage:   "YAML settings file",
					},
					&cli.StringFlag{
						Name:  "env-file",
						Usage: "Load environment variables from a .env file",
					},
					&cli.IntFlag{
						Name:    "parallel",
						Aliases: []string{"p"},
						Value:   4,
						Usage:   "Number of targets inspected concurrently",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Value: "info",
						Usage: "Log level: debug, info, warn or error",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runInspect(ctx, inspectOptions{
						modelPath:    cmd.Args().First(),
						settingsPath: cmd.String("settings"),
						envFile:      cmd.String("env-file"),
						parallel:     int(cmd.Int("parallel")),
						logLevel:     cmd.String("log-level"),
					}, stdout, stderr)
				},
			},
		},
	}
}
