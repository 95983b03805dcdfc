// Package app wires the cell editor together: the document of cells, the
// terminal renderer, key and mouse translation, the clipboard and the
// configuration, driven by a single event loop over a tcell screen.
package app

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/clipboard"
	"github.com/dshills/celledit/internal/config"
	"github.com/dshills/celledit/internal/document"
	"github.com/dshills/celledit/internal/input/mouse"
	"github.com/dshills/celledit/internal/renderer"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. It is watched for changes
	// while the application runs.
	ConfigPath string

	// DocumentPath is the document to open. A missing file starts an
	// empty document that saves to this path.
	DocumentPath string

	// ReadOnly opens every cell read-only.
	ReadOnly bool

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput overrides the configured log file when set.
	LogOutput io.Writer

	// LookupEnv reads environment overrides. Defaults to os.LookupEnv.
	LookupEnv config.LookupFunc
}

// Application is the central coordinator of the editor.
type Application struct {
	opts Options
	cfg  config.Config

	logger *Logger
	logOut io.Closer
	clip   clipboard.Clipboard
	doc    *document.Document

	screen   tcell.Screen
	renderer *renderer.Renderer
	mouse    *mouse.Handler

	// paste collects keys between bracketed paste markers.
	paste *strings.Builder

	running atomic.Bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:  opts,
		mouse: mouse.NewHandler(mouse.DefaultConfig()),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Document returns the document being edited.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// Clipboard returns the clipboard shared by all cells.
func (app *Application) Clipboard() clipboard.Clipboard {
	return app.clip
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Close releases the log file.
func (app *Application) Close() error {
	if app.logOut == nil {
		return nil
	}
	err := app.logOut.Close()
	app.logOut = nil
	return err
}
