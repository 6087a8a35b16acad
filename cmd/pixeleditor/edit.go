package main

import (
	"flag"

	"github.com/example/pixeleditor/internal/editor"
	"github.com/example/pixeleditor/internal/tools"
	"github.com/example/pixeleditor/internal/window"
)

// editCmd opens the desktop editor window.
type editCmd struct {
	*root
	fs      *flag.FlagSet
	session sessionFlags
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	c := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.session.register(fs, r.config)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *editCmd) Run() error {
	reg := tools.Default()
	st, err := c.session.initialState(reg)
	if err != nil {
		return err
	}
	opts := append(c.session.editorOptions(c.root, reg), editor.WithScale(c.session.scale))
	return window.New(st, c.activeTheme, opts...).Run()
}
