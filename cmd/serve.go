// cmd/serve.go

package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/receipt-generator/internal/config"
	"github.com/receipt-generator/internal/server"
	"github.com/receipt-generator/pkg/render"
)

func serveAction(c *cli.Context) error {
	renderer, err := render.NewRenderer(render.Options{FontPath: c.String("font")})
	if err != nil {
		return err
	}
	s, err := server.New(server.Options{Renderer: renderer})
	if err != nil {
		return err
	}

	app := config.AppConfig{Port: c.String("port")}
	srv := &http.Server{
		Addr:              app.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("Receipt server starting", "address", srv.Addr, "url", "http://localhost"+srv.Addr)
	return srv.ListenAndServe()
}
