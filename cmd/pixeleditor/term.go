package main

import (
	"flag"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/example/pixeleditor/internal/term"
	"github.com/example/pixeleditor/internal/tools"
)

// termCmd runs the editor inside the terminal.
type termCmd struct {
	*root
	fs      *flag.FlagSet
	session sessionFlags
}

func (c *termCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

func parseTermCmd(args []string, r *root) (*termCmd, error) {
	fs := flag.NewFlagSet("term", flag.ExitOnError)
	c := &termCmd{root: r, fs: fs}
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

func (c *termCmd) Run() error {
	reg := tools.Default()
	st, err := c.session.initialState(reg)
	if err != nil {
		return err
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	return term.New(screen, st, c.session.editorOptions(c.root, reg)...).Run()
}
