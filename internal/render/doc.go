// Package render draws frames onto canvases.
//
// A [Canvas] is the small set of drawing primitives a frame needs: a filled
// circle, a styled scatter set, a text box and a legend. [Renderer] turns a
// frame into calls on a Canvas, once per frame, in a fixed order:
//
//	Begin → Title → Grid → hive → flowers → one scatter per state → Legend → TextBox
//
// Backends:
//
//   - [RasterCanvas]: RGBA image for GIF and video export
//   - [BrailleCanvas]: Unicode Braille grid for the terminal player
//   - [SVGCanvas]: SVG document, one per frame
//
// Coordinates passed to a Canvas are world units with the origin at the
// bottom-left corner of the world; each backend maps them to its own space.
// Marker sizes are areas in typographic points squared.
package render
