package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/clipboard"
	"github.com/example/pixeleditor/internal/config"
	"github.com/example/pixeleditor/internal/export"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/render"
	"github.com/example/pixeleditor/internal/tools"
)

// drawCmd applies one tool gesture to a picture file without opening a UI.
type drawCmd struct {
	file        string
	output      string
	toClipboard bool
	colorSpec   string
	background  string
	width       int
	height      int
	toolName    string
	tool        tools.Tool
	from, to    image.Point
	color       picture.Color
	*root
	fs *flag.FlagSet
}

var drawFlagNames = map[string]struct{}{
	"file":         {},
	"output":       {},
	"color":        {},
	"background":   {},
	"width":        {},
	"height":       {},
	"to-clipboard": {},
	"to-clip":      {},
}

var drawBoolFlags = map[string]struct{}{
	"to-clipboard": {},
	"to-clip":      {},
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteImage

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	cfg := editorDefaults(r)
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input picture (a blank one is created when empty)")
	fs.StringVar(&d.output, "output", "", "output PNG path (defaults to the input file)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.StringVar(&d.colorSpec, "color", cfg.Color.Hex(), "color name or hex value")
	fs.StringVar(&d.background, "background", cfg.Background.Hex(), "background of a new picture")
	fs.IntVar(&d.width, "width", cfg.Width, "width of a new picture")
	fs.IntVar(&d.height, "height", cfg.Height, "height of a new picture")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.toolName = strings.ToLower(positionals[0])
	tool, ok := tools.Default().Lookup(d.toolName)
	if !ok {
		return nil, fmt.Errorf("unsupported tool %q", d.toolName)
	}
	d.tool = tool

	remaining := positionals[1:]
	var coords []int
	switch d.toolName {
	case "fill", "pick":
		coords, err = expectInts(remaining, 2, d.toolName)
		if err != nil {
			return nil, err
		}
		coords = append(coords, coords...)
	default:
		if len(remaining) == 2 {
			coords, err = expectInts(remaining, 2, d.toolName)
			coords = append(coords, coords...)
		} else {
			coords, err = expectInts(remaining, 4, d.toolName)
		}
		if err != nil {
			return nil, err
		}
	}
	d.from = image.Pt(coords[0], coords[1])
	d.to = image.Pt(coords[2], coords[3])

	if d.color, err = picture.ParseColor(d.colorSpec); err != nil {
		return nil, err
	}
	if d.output == "" {
		d.output = d.file
	}
	if d.output == "" {
		d.output = cfg.Output
	}
	return d, nil
}

func editorDefaults(r *root) config.Editor {
	if r != nil && r.config != nil {
		return r.config.Editor
	}
	return config.New().Editor
}

func (d *drawCmd) startState() (appstate.State, error) {
	bg, err := picture.ParseColor(d.background)
	if err != nil {
		return appstate.State{}, err
	}
	st, err := appstate.New(d.width, d.height, bg, d.toolName, d.color)
	if err != nil {
		return appstate.State{}, err
	}
	if d.file != "" {
		if st.Picture, err = readPicture(d.file); err != nil {
			return appstate.State{}, err
		}
	}
	return st, nil
}

// apply runs the gesture through a store, as a pointer press, one move and
// a release would.
func (d *drawCmd) apply(st appstate.State) appstate.State {
	store := appstate.NewStore(st)
	dispatch := func(a appstate.Action) { store.Dispatch(a) }
	if next := d.tool.Start(d.from, store.State(), dispatch); next != nil && d.to != d.from {
		next.Move(d.to, store.State())
	}
	return store.State()
}

func (d *drawCmd) Run() error {
	st, err := d.startState()
	if err != nil {
		return err
	}
	final := d.apply(st)
	if d.toolName == "pick" {
		fmt.Fprintln(d.out(), final.Color.Hex())
		return nil
	}

	out, err := os.Create(d.output)
	if err != nil {
		return err
	}
	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			log.Printf("error closing %q: %v", out.Name(), err)
		}
	}(out)
	if err := export.PNG(out, final.Picture, 1); err != nil {
		return fmt.Errorf("write %s: %w", d.output, err)
	}
	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(d.errOut(), "saved %s\n", saved)
	if d.root != nil && d.root.notifier != nil {
		d.root.notifier.Save(saved)
	}
	if d.toClipboard {
		if err := writeClipboard(render.Snapshot(final.Picture)); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(d.output)
		fmt.Fprintf(d.errOut(), "copied %s to clipboard\n", detail)
		if d.root != nil && d.root.notifier != nil {
			d.root.notifier.Copy(detail)
		}
	}
	return nil
}

func (d *drawCmd) out() io.Writer {
	if d.root != nil && d.root.stdout != nil {
		return d.root.stdout
	}
	return os.Stdout
}

func (d *drawCmd) errOut() io.Writer {
	if d.root != nil && d.root.stderr != nil {
		return d.root.stderr
	}
	return os.Stderr
}

func expectInts(args []string, n int, tool string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", tool, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

// splitDrawArgs separates known flags from positionals so flags may follow
// the tool name and negative coordinates are not taken for flags.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
