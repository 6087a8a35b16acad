package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/pixeleditor/internal/platform"
)

type delivered struct {
	title, body string
	opts        platform.Options
}

func record(t *testing.T, err error) *[]delivered {
	t.Helper()
	var got []delivered
	original := deliver
	deliver = func(title, body string, opts platform.Options) error {
		got = append(got, delivered{title, body, opts})
		return err
	}
	t.Cleanup(func() { deliver = original })
	return &got
}

func TestKindsStartOff(t *testing.T) {
	got := record(t, nil)
	n := New(DefaultMessages())
	n.Save("a.png")
	n.Open("a.png")
	n.Copy("picture")
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %v", *got)
	}
}

func TestEnabledKindsUseTheirFormat(t *testing.T) {
	got := record(t, nil)
	n := New(DefaultMessages())
	n.Set(Opened, true)
	n.Set(Copied, true)
	n.Open("cat.png")
	n.Copy("  ")
	if len(*got) != 2 {
		t.Fatalf("got %d notifications", len(*got))
	}
	if (*got)[0].title != "Pixel Editor" || (*got)[0].body != "Opened cat.png" {
		t.Fatalf("open notification = %+v", (*got)[0])
	}
	if (*got)[1].body != "Copied picture to clipboard" {
		t.Fatalf("copy notification = %+v", (*got)[1])
	}
	n.Set(Opened, false)
	n.Open("dog.png")
	if len(*got) != 2 {
		t.Fatal("open still announced after it was turned off")
	}
}

func TestSaveUsesFileAsIcon(t *testing.T) {
	got := record(t, nil)
	path := filepath.Join(t.TempDir(), "pixelart.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultMessages())
	n.Set(Saved, true)
	n.Save(path)
	n.Save(filepath.Join(filepath.Dir(path), "missing.png"))
	if len(*got) != 2 {
		t.Fatalf("got %d notifications", len(*got))
	}
	if (*got)[0].opts.IconPath != path || (*got)[0].body != "Saved "+path {
		t.Fatalf("save notification = %+v", (*got)[0])
	}
	if (*got)[1].opts.IconPath != "" {
		t.Fatalf("missing file used as icon: %+v", (*got)[1])
	}
}

func TestBlankFormatIsSilent(t *testing.T) {
	got := record(t, nil)
	m := DefaultMessages()
	m.Copied = " "
	n := New(m)
	n.Set(Copied, true)
	n.Copy("picture")
	if len(*got) != 0 {
		t.Fatalf("got %v", *got)
	}
}

func TestDeliveryErrorIsLoggedOnly(t *testing.T) {
	got := record(t, errors.New("no bus"))
	n := New(DefaultMessages())
	n.Set(Copied, true)
	n.Copy("picture")
	if len(*got) != 1 {
		t.Fatalf("got %d notifications", len(*got))
	}
}

func TestMessagesFromEnv(t *testing.T) {
	t.Setenv("PIXELEDITOR_NOTIFY_TITLE", "Pixels")
	t.Setenv("PIXELEDITOR_NOTIFY_SAVE_TEXT", "Wrote %s")
	t.Setenv("PIXELEDITOR_NOTIFY_OPEN_TEXT", "  ")
	m := MessagesFromEnv()
	if m.Title != "Pixels" || m.Saved != "Wrote %s" || m.Opened != DefaultMessages().Opened {
		t.Fatalf("messages = %+v", m)
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Set(Saved, true)
	n.Save("x.png")
	n.Open("x.png")
	n.Copy("x")
	if n.Enabled(Saved) {
		t.Fatal("nil notifier reports enabled")
	}
	if Kind(7).String() != "Kind(7)" || Copied.String() != "copy" {
		t.Fatal("unexpected kind names")
	}
}
