package app

import (
	"os"

	"github.com/dshills/celledit/internal/clipboard"
	"github.com/dshills/celledit/internal/config"
	"github.com/dshills/celledit/internal/document"
	"github.com/dshills/celledit/internal/engine"
)

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	if err := app.initConfig(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.initClipboard()
	if err := app.initDocument(); err != nil {
		return &InitError{Component: "document", Err: err}
	}
	return nil
}

func (app *Application) initConfig() error {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := app.applyOverrides(&cfg); err != nil {
		return err
	}
	app.cfg = cfg
	return nil
}

// applyOverrides layers the environment and command line over a loaded
// configuration and validates the result.
func (app *Application) applyOverrides(cfg *config.Config) error {
	lookup := app.opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return err
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	return cfg.Validate()
}

func (app *Application) initLogger() error {
	out := app.opts.LogOutput
	if out == nil {
		w, err := OpenLogFile(app.cfg.Log.File)
		if err != nil {
			return err
		}
		app.logOut = w
		out = w
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(app.cfg.Log.Level)
	cfg.Output = out
	app.logger = NewLogger(cfg)
	return nil
}

// initClipboard falls back to the in-process clipboard when the configured
// backend is unavailable.
func (app *Application) initClipboard() {
	log := app.logger.WithComponent("clipboard")
	clip, err := clipboard.New(app.cfg.Clipboard.Backend, log)
	if err != nil {
		log.Warn("backend %q unavailable, using memory: %v", app.cfg.Clipboard.Backend, err)
		clip = clipboard.NewMemory()
	}
	app.clip = clip
}

func (app *Application) initDocument() error {
	opts := app.engineOptions()

	var doc *document.Document
	if app.opts.DocumentPath != "" {
		var err error
		doc, err = document.Open(app.opts.DocumentPath, opts...)
		if err != nil {
			return err
		}
	} else {
		doc = document.New(opts...)
	}

	if doc.Len() == 0 {
		doc.Append(engine.KindInput, "")
		doc.MarkSaved()
	}
	doc.Next()

	app.doc = doc
	app.logger.Debug("document ready: %d cells", doc.Len())
	return nil
}

// engineOptions returns the options every cell engine is created with.
func (app *Application) engineOptions() []engine.Option {
	opts := append(app.cfg.EngineOptions(),
		engine.WithClipboard(app.clip),
		engine.WithLogger(app.logger.WithComponent("engine")),
	)
	if app.opts.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	return opts
}
