package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/document"
	"github.com/dshills/celledit/internal/engine"
	"github.com/dshills/celledit/internal/input"
	"github.com/dshills/celledit/internal/input/key"
	"github.com/dshills/celledit/internal/input/mouse"
)

// handleEvent routes a screen event. It returns ErrQuit when the
// application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventPaste:
		app.handlePaste(ev)
	case *tcell.EventInterrupt:
		return app.handleInterrupt(ev)
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	k := key.FromTcell(ev)

	if app.paste != nil {
		app.collectPaste(k)
		return nil
	}

	cell := app.doc.Active()
	action := input.Translate(k, cell != nil && cell.Engine.HasSelection())
	if action.Command != input.CommandNone {
		return app.runCommand(action.Command)
	}
	if action.Intent != nil && cell != nil {
		app.apply(cell, action.Intent)
	}
	return nil
}

// collectPaste appends a key received inside a bracketed paste.
func (app *Application) collectPaste(k key.Event) {
	switch k.Key {
	case key.KeyRune:
		app.paste.WriteRune(k.Rune)
	case key.KeyEnter:
		app.paste.WriteRune('\n')
	case key.KeyTab:
		app.paste.WriteRune('\t')
	}
}

func (app *Application) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		app.paste = &strings.Builder{}
		return
	}
	if app.paste == nil {
		return
	}
	text := app.paste.String()
	app.paste = nil
	if cell := app.doc.Active(); cell != nil {
		app.apply(cell, engine.Paste{Text: text})
	}
}

func (app *Application) handleMouse(ev *tcell.EventMouse) {
	mev := app.mouse.Decode(ev)

	if mev.Action == mouse.ActionPress {
		id, ok := app.renderer.CellAt(mev.Position.X, mev.Position.Y)
		if !ok {
			return
		}
		if active := app.doc.Active(); active == nil || active.ID != id {
			_ = app.doc.Activate(id)
		}
	}

	cell := app.doc.Active()
	if cell == nil {
		return
	}
	for _, in := range app.mouse.Handle(mev, app.renderer) {
		app.apply(cell, in)
	}
}

func (app *Application) handleInterrupt(ev *tcell.EventInterrupt) error {
	switch data := ev.Data().(type) {
	case quitRequest:
		return ErrQuit
	case configReload:
		app.reload(data)
	}
	return nil
}

// apply runs an intent on a cell and reports rejections in the status line.
func (app *Application) apply(cell *document.Cell, in engine.Intent) {
	res := cell.Engine.Apply(in)
	switch {
	case res.Err != nil:
		app.renderer.SetStatus(res.Err.Error())
	case res.Applied:
		app.renderer.SetStatus("")
	}
}

func (app *Application) runCommand(cmd input.Command) error {
	app.logger.Debug("command %s", cmd)

	switch cmd {
	case input.CommandQuit:
		return ErrQuit
	case input.CommandNewCell:
		app.newCell()
	case input.CommandNextCell:
		app.doc.Next()
	case input.CommandPrevCell:
		app.doc.Prev()
	case input.CommandDeactivate:
		app.doc.Deactivate()
	case input.CommandSave:
		if err := app.save(); err != nil {
			app.logger.Warn("save failed: %v", err)
			app.renderer.SetStatus(err.Error())
		} else {
			app.renderer.SetStatus("saved " + app.doc.Path)
		}
	}
	return nil
}

// newCell inserts an empty input cell after the active one and activates it.
func (app *Application) newCell() {
	var c *document.Cell
	if active := app.doc.Active(); active != nil {
		c, _ = app.doc.InsertAfter(active.ID, engine.KindInput, "")
	} else {
		c = app.doc.Append(engine.KindInput, "")
	}
	_ = app.doc.Activate(c.ID)
}

func (app *Application) save() error {
	if app.doc.Path == "" {
		return ErrNoPath
	}
	if err := app.doc.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", app.doc.Path, err)
	}
	app.logger.Info("saved %s", app.doc.Path)
	return nil
}

// reload applies a configuration read by the watcher. The clipboard backend
// and log file are fixed at startup.
func (app *Application) reload(r configReload) {
	log := app.logger.WithComponent("config")

	cfg := r.cfg
	err := r.err
	if err == nil {
		err = app.applyOverrides(&cfg)
	}
	if err != nil {
		log.Warn("reload rejected: %v", err)
		app.renderer.SetStatus("config: " + err.Error())
		return
	}

	app.cfg = cfg
	app.doc.Configure(cfg.EngineOptions()...)
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	log.Info("reloaded")
	app.renderer.SetStatus("config reloaded")
}
