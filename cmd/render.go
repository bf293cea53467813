// cmd/render.go

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/receipt-generator/pkg/receipt"
	"github.com/receipt-generator/pkg/render"
)

func renderAction(c *cli.Context) error {
	renderer, err := render.NewRenderer(render.Options{FontPath: c.String("font")})
	if err != nil {
		return err
	}
	path, err := renderFile(c.String("input"), c.String("output-dir"), c.App.Reader, renderer, time.Now)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}

// renderFile reads receipt data from input ("-" for stdin), renders it and
// writes the PDF into dir under a name taken from now.
func renderFile(input, dir string, stdin io.Reader, renderer *render.Renderer, now func() time.Time) (string, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	d, err := receipt.Decode(r)
	if err != nil {
		return "", err
	}
	sess, err := d.Session()
	if err != nil {
		return "", err
	}
	doc, err := sess.Submit()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, render.FileName(now()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	slog.Info("Receipt written", "path", path, "items", doc.Len(), "grand_total", doc.GrandTotal().String())
	return path, nil
}
