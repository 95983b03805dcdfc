package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/config"
	"github.com/dshills/celledit/internal/engine"
	"github.com/dshills/celledit/internal/renderer"
)

// memoryEnv selects the in-process clipboard so tests never touch the
// system clipboard.
func memoryEnv(key string) (string, bool) {
	if key == config.EnvPrefix+"CLIPBOARD" {
		return "memory", true
	}
	return "", false
}

func newTestApp(t *testing.T, opts Options) (*Application, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts.LogOutput = &logs
	if opts.LookupEnv == nil {
		opts.LookupEnv = memoryEnv
	}

	app, err := New(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	app.attach(s)
	app.renderer.Draw(app.doc)
	return app, &logs
}

func send(t *testing.T, app *Application, evs ...tcell.Event) {
	t.Helper()
	for _, ev := range evs {
		if err := app.handleEvent(ev); err != nil {
			t.Fatalf("unexpected error handling %T: %v", ev, err)
		}
		app.renderer.Draw(app.doc)
	}
}

func typeText(s string) []tcell.Event {
	var evs []tcell.Event
	for _, r := range s {
		evs = append(evs, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return evs
}

func keyEv(k tcell.Key, mod tcell.ModMask) tcell.Event {
	return tcell.NewEventKey(k, 0, mod)
}

func ctrl(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModCtrl)
}

func activeText(app *Application) string {
	return app.doc.Active().Engine.Text()
}

// Bootstrap Tests

func TestNewDefaults(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	if app.doc.Len() != 1 {
		t.Fatalf("expected one cell, got %d", app.doc.Len())
	}
	if app.doc.Active() != app.doc.At(0) {
		t.Error("first cell should be active")
	}
	if app.doc.IsModified() {
		t.Error("fresh document should be clean")
	}
	if app.Config().Editor.TabWidth != engine.DefaultTabWidth {
		t.Errorf("expected default tab width, got %d", app.Config().Editor.TabWidth)
	}
}

func TestNewLoadsDocumentAndConfig(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "notes.yaml")
	cfgPath := filepath.Join(dir, "celledit.toml")

	if err := os.WriteFile(docPath, []byte("cells:\n  - kind: title\n    text: T\n  - kind: input\n    text: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfgPath, []byte("[editor]\ntab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, _ := newTestApp(t, Options{ConfigPath: cfgPath, DocumentPath: docPath})

	if app.doc.Len() != 2 {
		t.Fatalf("expected 2 cells, got %d", app.doc.Len())
	}
	if app.doc.At(0).Kind() != engine.KindTitle {
		t.Errorf("expected title cell, got %s", app.doc.At(0).Kind())
	}
	if app.doc.At(1).Engine.TabWidth() != 2 {
		t.Errorf("expected tab width 2, got %d", app.doc.At(1).Engine.TabWidth())
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "celledit.toml")
	if err := os.WriteFile(cfgPath, []byte("[editor]\ntab_width = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ConfigPath: cfgPath, LogOutput: &bytes.Buffer{}, LookupEnv: memoryEnv})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "config" {
		t.Fatalf("expected config InitError, got %v", err)
	}
	if !errors.Is(err, config.ErrInvalidTabWidth) {
		t.Errorf("expected ErrInvalidTabWidth, got %v", err)
	}
}

func TestLogLevelOverride(t *testing.T) {
	app, logs := newTestApp(t, Options{LogLevel: "debug"})

	if app.Logger().Level() != LogLevelDebug {
		t.Errorf("expected DEBUG, got %s", app.Logger().Level())
	}
	if !strings.Contains(logs.String(), "document ready") {
		t.Errorf("expected debug output, got %q", logs.String())
	}
}

// Key Tests

func TestTypingWithAutoPair(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	send(t, app, typeText("f(x")...)

	if got := activeText(app); got != "f(x)" {
		t.Errorf("expected f(x), got %q", got)
	}
	if got := app.doc.Active().Engine.Caret(); got != 3 {
		t.Errorf("expected caret 3, got %d", got)
	}
}

func TestEditingKeys(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	send(t, app, typeText("ab")...)
	send(t, app,
		keyEv(tcell.KeyEnter, tcell.ModNone),
		keyEv(tcell.KeyTab, tcell.ModNone),
	)
	send(t, app, typeText("c")...)
	send(t, app, keyEv(tcell.KeyBackspace2, tcell.ModNone))

	if got := activeText(app); got != "ab\n    " {
		t.Errorf("unexpected text %q", got)
	}

	send(t, app, ctrl('e'))
	if got := activeText(app); !strings.HasSuffix(got, ";") {
		t.Errorf("expected terminator appended, got %q", got)
	}
}

func TestCopyPaste(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	send(t, app, typeText("ab")...)
	send(t, app,
		ctrl('a'),
		ctrl('c'),
		keyEv(tcell.KeyEnd, tcell.ModCtrl),
		ctrl('v'),
	)

	if got := activeText(app); got != "abab" {
		t.Errorf("expected abab, got %q", got)
	}
	if text, ok := app.Clipboard().Text(); !ok || text != "ab" {
		t.Errorf("expected clipboard ab, got %q", text)
	}
}

func TestWrapSelection(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	send(t, app, typeText("ab")...)
	send(t, app, keyEv(tcell.KeyHome, tcell.ModShift|tcell.ModCtrl))
	send(t, app, typeText("[")...)

	if got := activeText(app); got != "[ab]" {
		t.Errorf("expected [ab], got %q", got)
	}
}

func TestBracketedPaste(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	send(t, app, tcell.NewEventPaste(true))
	send(t, app, typeText("a(")...)
	send(t, app, keyEv(tcell.KeyEnter, tcell.ModNone))
	send(t, app, typeText("b")...)
	send(t, app, tcell.NewEventPaste(false))

	if got := activeText(app); got != "a(\nb" {
		t.Errorf("expected pasted text without auto-pair, got %q", got)
	}
}

func TestReadOnly(t *testing.T) {
	app, _ := newTestApp(t, Options{ReadOnly: true})

	send(t, app, typeText("x")...)
	if got := activeText(app); got != "" {
		t.Errorf("read-only cell should not change, got %q", got)
	}
}

// Command Tests

func TestCellCommands(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	first := app.doc.Active()

	send(t, app, ctrl('n'))
	if app.doc.Len() != 2 || app.doc.Active() == first {
		t.Fatal("Ctrl+N should add and activate a cell")
	}
	second := app.doc.Active()

	send(t, app, keyEv(tcell.KeyUp, tcell.ModAlt))
	if app.doc.Active() != first {
		t.Error("Alt+Up should activate the previous cell")
	}
	send(t, app, keyEv(tcell.KeyDown, tcell.ModAlt))
	if app.doc.Active() != second {
		t.Error("Alt+Down should activate the next cell")
	}

	send(t, app, keyEv(tcell.KeyEscape, tcell.ModNone))
	if app.doc.Active() != nil {
		t.Error("Escape should deactivate the cell")
	}
	send(t, app, typeText("x")...)
	if first.Engine.Text() != "" || second.Engine.Text() != "" {
		t.Error("keys without an active cell should be ignored")
	}
}

func TestQuit(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	if err := app.handleEvent(ctrl('q')); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
	if err := app.handleEvent(tcell.NewEventInterrupt(quitRequest{})); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.yaml")
	app, _ := newTestApp(t, Options{DocumentPath: path})

	send(t, app, typeText("x = 1")...)
	send(t, app, ctrl('s'))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected saved file: %v", err)
	}
	if !strings.Contains(string(data), "x = 1") {
		t.Errorf("unexpected file contents %q", data)
	}
	if app.doc.IsModified() {
		t.Error("document should be clean after save")
	}
}

func TestSaveWithoutPath(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	if err := app.save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
	send(t, app, ctrl('s'))
}

// Mouse Tests

func TestMouseClickSetsCaret(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	send(t, app, typeText("hello")...)

	send(t, app,
		tcell.NewEventMouse(renderer.GutterWidth+2, 0, tcell.ButtonPrimary, tcell.ModNone),
		tcell.NewEventMouse(renderer.GutterWidth+2, 0, tcell.ButtonNone, tcell.ModNone),
	)

	if got := app.doc.Active().Engine.Caret(); got != 2 {
		t.Errorf("expected caret 2, got %d", got)
	}
}

func TestMouseDragSelects(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	send(t, app, typeText("hello")...)

	send(t, app,
		tcell.NewEventMouse(renderer.GutterWidth+1, 0, tcell.ButtonPrimary, tcell.ModNone),
		tcell.NewEventMouse(renderer.GutterWidth+4, 0, tcell.ButtonPrimary, tcell.ModNone),
		tcell.NewEventMouse(renderer.GutterWidth+4, 0, tcell.ButtonNone, tcell.ModNone),
	)

	got, ok := app.doc.Active().Engine.SelectedText()
	if !ok || got != "ell" {
		t.Errorf("expected selection ell, got %q (%t)", got, ok)
	}
}

func TestMouseClickActivatesCell(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	first := app.doc.Active()
	send(t, app, ctrl('n'))
	send(t, app, typeText("abc")...)

	// The first cell is one row tall, followed by a separator row.
	send(t, app, tcell.NewEventMouse(renderer.GutterWidth, 0, tcell.ButtonPrimary, tcell.ModNone))
	if app.doc.Active() != first {
		t.Fatal("clicking a cell should activate it")
	}

	send(t, app,
		tcell.NewEventMouse(renderer.GutterWidth, 0, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(renderer.GutterWidth+1, 2, tcell.ButtonPrimary, tcell.ModNone),
	)
	if app.doc.Active() == first {
		t.Fatal("clicking the second cell should activate it")
	}
	if got := app.doc.Active().Engine.Caret(); got != 1 {
		t.Errorf("expected caret 1, got %d", got)
	}
}

// Config Reload Tests

func TestConfigReload(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	cfg := config.Default()
	cfg.Editor.TabWidth = 8
	cfg.Log.Level = "error"
	send(t, app, tcell.NewEventInterrupt(configReload{cfg: cfg}))

	if got := app.doc.At(0).Engine.TabWidth(); got != 8 {
		t.Errorf("expected tab width 8, got %d", got)
	}
	if app.Logger().Level() != LogLevelError {
		t.Errorf("expected ERROR level, got %s", app.Logger().Level())
	}
}

func TestConfigReloadRejected(t *testing.T) {
	app, logs := newTestApp(t, Options{})

	bad := config.Default()
	bad.Editor.TabWidth = -1
	send(t, app, tcell.NewEventInterrupt(configReload{cfg: bad}))
	send(t, app, tcell.NewEventInterrupt(configReload{err: errors.New("parse failure")}))

	if got := app.doc.At(0).Engine.TabWidth(); got != engine.DefaultTabWidth {
		t.Errorf("rejected reload should keep tab width, got %d", got)
	}
	if !strings.Contains(logs.String(), "parse failure") {
		t.Errorf("expected reload failure to be logged, got %q", logs.String())
	}
}

// Run Tests

func TestRunStopsOnCancel(t *testing.T) {
	app, err := New(Options{LogOutput: &bytes.Buffer{}, LookupEnv: memoryEnv})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx, tcell.NewSimulationScreen("UTF-8"))
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
