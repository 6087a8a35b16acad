package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/pixeleditor/internal/export"
)

// exportCmd converts a picture file to PNG, GIF or PDF.
type exportCmd struct {
	*root
	fs     *flag.FlagSet
	input  string
	output string
	format string
	opts   export.Options
}

func (c *exportCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	c := &exportCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.format, "format", "", "png, gif or pdf (defaults to the output extension)")
	fs.IntVar(&c.opts.Scale, "scale", 1, "pixels per cell for png and gif")
	fs.IntVar(&c.opts.Colors, "colors", 256, "gif palette size (2-256)")
	fs.Float64Var(&c.opts.CellMM, "cell-mm", 0, "printed cell size in millimetres for pdf (0 fits the page)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 2 {
		return nil, &UsageError{of: c}
	}
	c.input, c.output = fs.Arg(0), fs.Arg(1)
	if c.opts.Colors < 2 || c.opts.Colors > 256 {
		return nil, fmt.Errorf("colors must be between 2 and 256")
	}
	if c.opts.CellMM < 0 {
		return nil, fmt.Errorf("cell-mm cannot be negative")
	}
	return c, nil
}

func (c *exportCmd) resolveFormat() (export.Format, error) {
	if c.format == "" {
		return export.FormatFromPath(c.output)
	}
	switch f := export.Format(c.format); f {
	case export.FormatPNG, export.FormatGIF, export.FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", c.format)
}

func (c *exportCmd) Run() error {
	format, err := c.resolveFormat()
	if err != nil {
		return err
	}
	pic, err := readPicture(c.input)
	if err != nil {
		return err
	}
	out, err := os.Create(c.output)
	if err != nil {
		return err
	}
	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			log.Printf("error closing %q: %v", out.Name(), err)
		}
	}(out)
	if err := export.Encode(out, pic, format, c.opts); err != nil {
		return fmt.Errorf("export %s: %w", c.output, err)
	}
	if c.root != nil && c.root.stderr != nil {
		fmt.Fprintf(c.root.stderr, "exported %s (%s, %dx%d)\n", c.output, format, pic.Width(), pic.Height())
	}
	return nil
}
