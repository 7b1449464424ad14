// Package torus renders a rotating torus onto a character grid.
//
// The package holds the whole per-frame pipeline:
//
//   - [Sampler]: ordered (sin, cos) samples of a surface parameter
//   - [Rotation]: the A/B angle pair advanced once per frame
//   - [Frame]: character buffer plus depth buffer for one frame
//   - [Renderer]: owns the configuration, the samplers and the rotation
//
// # Example
//
//	r, err := torus.NewRenderer(torus.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for {
//		fmt.Print(r.Render())
//		r.Step()
//	}
//
// # Modes
//
// [Baseline] evaluates sin/cos of every theta and phi on each frame.
// [Optimized] computes the samples once per renderer and replays them.
// Both modes produce identical frames.
//
// # Thread Safety
//
// Renderer instances are NOT thread-safe. Frames returned by [Renderer.RenderAt]
// are owned by the caller.
package torus
