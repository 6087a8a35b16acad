package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/clipboard"
	"github.com/example/pixeleditor/internal/config"
	"github.com/example/pixeleditor/internal/editor"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/tools"
)

// sessionFlags are shared by the interactive frontends.
type sessionFlags struct {
	file         string
	width        int
	height       int
	scale        int
	historyLimit int
	colorSpec    string
	background   string
	tool         string
	output       string
	saveDir      string
}

func (s *sessionFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	e := cfg.Editor
	fs.StringVar(&s.file, "file", "", "picture to start from; Open offers it as the first path")
	fs.IntVar(&s.width, "width", e.Width, "width of a new picture in cells")
	fs.IntVar(&s.height, "height", e.Height, "height of a new picture in cells")
	fs.IntVar(&s.scale, "scale", e.Scale, "on-screen size of a cell in pixels")
	fs.IntVar(&s.historyLimit, "history-limit", e.HistoryLimit, "maximum undo steps kept (0 keeps all)")
	fs.StringVar(&s.colorSpec, "color", e.Color.Hex(), "starting color name or hex value")
	fs.StringVar(&s.background, "background", e.Background.Hex(), "background color of a new picture")
	fs.StringVar(&s.tool, "tool", e.Tool, "starting tool")
	fs.StringVar(&s.output, "output", e.Output, "file name Save writes")
	fs.StringVar(&s.saveDir, "save-dir", cfg.SaveDir, "directory Save writes into")
}

// initialState builds the start state, loading -file when it is set.
func (s *sessionFlags) initialState(reg *tools.Registry) (appstate.State, error) {
	if _, ok := reg.Lookup(s.tool); !ok {
		return appstate.State{}, fmt.Errorf("unknown tool %q", s.tool)
	}
	col, err := picture.ParseColor(s.colorSpec)
	if err != nil {
		return appstate.State{}, err
	}
	bg, err := picture.ParseColor(s.background)
	if err != nil {
		return appstate.State{}, err
	}
	st, err := appstate.New(s.width, s.height, bg, s.tool, col)
	if err != nil {
		return appstate.State{}, err
	}
	if s.file != "" {
		pic, err := readPicture(s.file)
		if err != nil {
			return appstate.State{}, err
		}
		st.Picture = pic
	}
	return st, nil
}

// editorOptions wires files, clipboard, notifications and history limits.
func (s *sessionFlags) editorOptions(r *root, reg *tools.Registry) []editor.Option {
	opts := []editor.Option{
		editor.WithTools(reg),
		editor.WithFiles(editor.DirFiles{OpenPath: s.file, SaveDir: s.saveDir}),
		editor.WithSaveName(s.output),
		editor.WithClipboard(clipboard.System{}),
	}
	if s.historyLimit > 0 {
		red := appstate.DefaultReducer
		red.Limit = s.historyLimit
		opts = append(opts, editor.WithReducer(red))
	}
	if r != nil && r.notifier != nil {
		opts = append(opts, editor.WithNotifier(r.notifier))
	}
	return opts
}

func readPicture(path string) (*picture.Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pic, _, err := picture.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return pic, nil
}
