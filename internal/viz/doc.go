// Package viz draws a running universe in the terminal.
//
// It only reads body positions, masses and charges; the physics never sees
// screen coordinates or colors.
//
//   - [Classify]: heavy / negative / positive bucketing used for color
//   - [Camera]: world-to-dot projection with pan, zoom and fit
//   - [Canvas]: braille dot grid colored per category
//   - [Model]: Bubble Tea program that ticks the universe every frame
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single tick while paused
//	+/-   - Double/halve ticks per frame
//	Z/X   - Zoom
//	F     - Fit all bodies
//	T     - Cycle color themes
package viz
