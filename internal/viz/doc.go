// Package viz provides the interactive terminal viewer for the torus.
//
// [Model] is a Bubble Tea model that renders one frame per tick from a
// [torus.Renderer] and shows the live frame rate and a chart of recent
// render times beside it. [Run] starts it on the alternate screen.
//
// # Key Bindings
//
//	Space - Pause/Resume rotation
//	R     - Reset rotation to zero
//	M     - Switch between baseline and optimized mode
//	+/-   - Change steps per tick (1 to 8)
//	?     - Show help
//	Q     - Quit
package viz
