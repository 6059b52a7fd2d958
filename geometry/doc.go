// Package geometry provides the unit conversions and page geometry shared by the
// layout engine and every renderer.
//
// All layout work happens in logical pixels at 96 px per inch. Physical sizes
// (page, margins, gaps) are expressed in millimetres and exported documents use
// PostScript points (72 per inch).
//
// # Units
//
//	px := geometry.MMToPx(15)   // 56.69...
//	pt := geometry.PxToPt(px)   // 42.51...
//
// # Page Bounds
//
// [PageBounds] describes the content area of a fixed A4 page split into two
// columns:
//
//	bounds := geometry.NewPageBounds(geometry.Margins{Top: 15, Bottom: 15, Left: 15, Right: 15}, 8)
//	fmt.Println(bounds.ColumnWidth, bounds.ContentHeight)
//
// # Boxes
//
// [BBox] and [Point] are small value types used by renderers to position
// blocks. Unlike PDF user space, Y grows downwards from the top of the page.
package geometry
