package app

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/config"
	"github.com/dshills/celledit/internal/renderer"
)

// quitRequest is posted to the event queue when the run context ends.
type quitRequest struct{}

// configReload carries a reloaded configuration onto the event loop.
type configReload struct {
	cfg config.Config
	err error
}

// Run drives the application on screen until the user quits or ctx is
// cancelled. All engine access happens on the calling goroutine; the
// config watcher only posts events.
func (app *Application) Run(ctx context.Context, screen tcell.Screen) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnablePaste()
	app.attach(screen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}()
	if app.opts.ConfigPath != "" {
		go app.watchConfig(ctx)
	}

	app.logger.Info("editing %d cells", app.doc.Len())
	return app.eventLoop()
}

// attach binds the application to a screen.
func (app *Application) attach(screen tcell.Screen) {
	app.screen = screen
	app.renderer = renderer.New(screen)
}

func (app *Application) eventLoop() error {
	for {
		app.renderer.Draw(app.doc)

		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
	}
}

// watchConfig forwards config file changes to the event loop.
func (app *Application) watchConfig(ctx context.Context) {
	log := app.logger.WithComponent("config")
	err := config.Watch(ctx, app.opts.ConfigPath, func(cfg config.Config, err error) {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(configReload{cfg: cfg, err: err}))
	})
	if err != nil && ctx.Err() == nil {
		log.Warn("watcher stopped: %v", err)
	}
}
