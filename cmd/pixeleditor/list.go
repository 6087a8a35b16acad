package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/tools"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	out := stdout(c.root)
	fmt.Fprintln(out, "available palette colors (* marks the default color):")
	def := editorDefaults(c.root).Color
	for idx, entry := range picture.Palette() {
		marker := " "
		if entry.Color == def {
			marker = "*"
		}
		col := entry.Color
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(out, "%s %2d: %-8s %s %s\n", marker, idx, entry.Name, col.Hex(), block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	cmd := &toolsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *toolsCmd) Run() error {
	out := stdout(c.root)
	reg := tools.Default()
	def := editorDefaults(c.root).Tool
	fmt.Fprintln(out, "available tools (* marks the default tool, key selects it in the editor):")
	for _, name := range reg.Names() {
		marker := " "
		if name == def {
			marker = "*"
		}
		shortcut := "-"
		r := []rune(name)[0]
		if got, ok := reg.Shortcut(r); ok && got == name {
			shortcut = string(r)
		}
		fmt.Fprintf(out, "%s %-10s key %s\n", marker, name, shortcut)
	}
	return nil
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func stdout(r *root) io.Writer {
	if r != nil && r.stdout != nil {
		return r.stdout
	}
	return os.Stdout
}
