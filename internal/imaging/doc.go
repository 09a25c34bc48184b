// Package imaging provides the raster operations used to draw a tactical map.
//
// The package wraps a mutable RGBA surface (Canvas) with the drawing
// primitives the renderer needs: styled lines, outlines, fixed-pitch text,
// pixel fades, and sprite compositing. It also prepares sprite and background
// images (recolouring, scaling, rotation, fitting) and loads and encodes
// image files.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Drawing outside the canvas is clipped silently
//   - Fades and outlines treat geom.Box edges as inclusive
//
// # Libraries
//
// Scaling and rotation of sprites use github.com/anthonynsimon/bild, pixel
// recolouring uses bild's adjust package, colour blending uses
// github.com/lucasb-eyer/go-colorful, and decoding, background fitting and
// encoding use github.com/disintegration/imaging.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. A Canvas is not; it is
// owned by a single render.
package imaging
