package mouse

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/engine"
	"github.com/dshills/celledit/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event represents a mouse input event.
type Event struct {
	Position  Position
	Button    Button
	Modifiers key.Modifier
	Action    Action
	Timestamp time.Time
}

// HitTester maps a screen position to a buffer offset. It returns false
// when the position is outside the cell.
type HitTester interface {
	HitTest(x, y int) (engine.Offset, bool)
}

// Config configures mouse handler behavior.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int

	// EnableDragSelection enables selection via drag.
	EnableDragSelection bool

	// EnableMiddleClickPaste enables middle-click paste.
	EnableMiddleClickPaste bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:        400 * time.Millisecond,
		DoubleClickDistance:    1,
		EnableDragSelection:    true,
		EnableMiddleClickPaste: true,
	}
}

// Handler tracks clicks and drags and turns mouse events into intents.
type Handler struct {
	config Config
	click  *clickTracker
	drag   *dragTracker

	// held is the button state seen by the last decoded event.
	held Button
}

// NewHandler creates a new mouse handler with the given configuration.
func NewHandler(config Config) *Handler {
	return &Handler{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
		drag:   newDragTracker(),
	}
}

// Decode converts a tcell mouse event. tcell reports button state rather
// than transitions, so press, release and drag are derived from the state
// seen by the previous call.
func (h *Handler) Decode(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btn := convertButton(ev.Buttons())

	out := Event{
		Position:  Position{X: x, Y: y},
		Button:    btn,
		Modifiers: convertMod(ev.Modifiers()),
		Timestamp: ev.When(),
	}

	switch {
	case btn != ButtonNone && h.held == ButtonNone:
		out.Action = ActionPress
	case btn != ButtonNone:
		out.Action = ActionDrag
	case h.held != ButtonNone:
		out.Action = ActionRelease
		out.Button = h.held
	default:
		out.Action = ActionMove
	}
	h.held = btn
	return out
}

// Handle returns the intents for a mouse event, in the order they should
// be applied.
func (h *Handler) Handle(ev Event, hit HitTester) []engine.Intent {
	switch ev.Action {
	case ActionPress:
		return h.handlePress(ev, hit)
	case ActionDrag:
		return h.handleDrag(ev, hit)
	case ActionRelease:
		h.drag.end()
	}
	return nil
}

func (h *Handler) handlePress(ev Event, hit HitTester) []engine.Intent {
	offset, ok := hit.HitTest(ev.Position.X, ev.Position.Y)
	if !ok {
		h.drag.end()
		return nil
	}

	switch ev.Button {
	case ButtonLeft:
		h.drag.start(offset)
		switch h.click.recordClick(ev.Position, ev.Timestamp) {
		case ClickDouble:
			h.drag.end()
			return []engine.Intent{engine.SetCaret{Offset: offset}, engine.SelectWordAtCaret{}}
		case ClickTriple:
			h.drag.end()
			return []engine.Intent{engine.SelectRange{From: 0, To: math.MaxInt}}
		}
		return []engine.Intent{engine.SetCaret{Offset: offset}}
	case ButtonMiddle:
		if h.config.EnableMiddleClickPaste {
			return []engine.Intent{engine.SetCaret{Offset: offset}, engine.PasteFromClipboard{}}
		}
	}
	return nil
}

func (h *Handler) handleDrag(ev Event, hit HitTester) []engine.Intent {
	if !h.config.EnableDragSelection || !h.drag.isActive() {
		return nil
	}
	offset, ok := hit.HitTest(ev.Position.X, ev.Position.Y)
	if !ok || !h.drag.update(offset) {
		return nil
	}
	return []engine.Intent{engine.SelectRange{From: h.drag.anchor, To: offset}}
}

func convertButton(b tcell.ButtonMask) Button {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return ButtonLeft
	case b&tcell.ButtonMiddle != 0:
		return ButtonMiddle
	case b&tcell.ButtonSecondary != 0:
		return ButtonRight
	default:
		return ButtonNone
	}
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	return result
}
