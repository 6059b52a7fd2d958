// Package render turns a layout plan into paintable pages.
//
// A [Context] resolves the identifiers carried by layout blocks through a
// model index and holds the duplicate annotations to overlay. [Paint] walks
// a plan and produces one [Canvas] per page: a display list of rectangles,
// text runs, lines and check marks in logical pixels with a top-left origin.
// The PDF and PNG backends (packages pdfdoc and raster) only translate that
// list, so both exports look the same. The HTML preview (package htmlview)
// builds its DOM from the same plan and context.
//
// Blocks are painted at the offset the layout engine recorded for them; a
// lesson header is painted once across both columns.
package render
