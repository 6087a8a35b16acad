package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
		"version": func() string { return version },
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

// usageFunc renders the command's help template for flag.FlagSet.Usage.
func usageFunc(h HelpData) func() {
	return func() {
		out := os.Stderr
		if fs := h.FlagSet(); fs != nil {
			if w, ok := fs.Output().(*os.File); ok {
				out = w
			}
		}
		fmt.Fprintln(out, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string { return "root.txt" }
func (c *editCmd) Template() string { return "edit.txt" }
func (c *termCmd) Template() string { return "term.txt" }
func (d *drawCmd) Template() string { return "draw.txt" }
func (c *exportCmd) Template() string { return "export.txt" }
func (c *colorsCmd) Template() string { return "colors.txt" }
func (c *toolsCmd) Template() string { return "tools.txt" }
func (c *configCmd) Template() string { return "config.txt" }
func (v *versionCmd) Template() string { return "version.txt" }
func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }
func (v *versionCmd) Program() string { return v.r.program }
