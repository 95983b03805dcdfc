// Package key provides the key event model of the input layer.
//
// Terminal events are converted into Event values with FromTcell so that
// the rest of the input layer never depends on the terminal library:
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift and Meta
//   - Event: a single key press with modifiers and timestamp
//
// Control characters reported by the terminal (Ctrl+A through Ctrl+Z) are
// unfolded into a KeyRune event for the letter with ModCtrl set.
package key
