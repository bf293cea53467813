// cmd/main.go

package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/receipt-generator/internal/config"
	"github.com/receipt-generator/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.App.LogLevel)

	if err := newApp(cfg).Run(os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	fontFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:    "font",
			Usage:   "UTF-8 TrueType font used for receipt text",
			Value:   cfg.Receipt.FontPath,
			EnvVars: []string{"RECEIPT_FONT_PATH"},
		}
	}

	return &cli.App{
		Name:  "receiptgen",
		Usage: "build printable A5 retail receipts",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the receipt form and API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Value: cfg.App.Port, EnvVars: []string{"APP_PORT"}},
					fontFlag(),
				},
				Action: serveAction,
			},
			{
				Name:      "render",
				Usage:     "render a receipt from a YAML or JSON file",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "receipt data file, - for stdin"},
					&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Value: cfg.Receipt.OutputDir},
					fontFlag(),
				},
				Action: renderAction,
			},
		},
	}
}
