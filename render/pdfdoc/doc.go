// Package pdfdoc writes layout plans as A4 PDF documents.
//
// The writer emits a single-revision PDF 1.4 file: a catalog, a page tree,
// the four standard Type1 fonts it needs (Helvetica in regular, bold and
// oblique, plus ZapfDingbats for check marks), one content stream per page
// and a document information dictionary. No fonts are embedded, so text is
// converted to WinAnsiEncoding and characters outside it print as '?'.
//
// # Coordinates
//
// Pages are painted by [render.Paint] in logical pixels (794 x 1123 for A4)
// with the origin at the top left. The writer scales them to points and
// flips the y axis, so a PDF page and an HTML preview page share one layout.
//
// # Usage
//
//	plan := layout.Compute(lessons, settings)
//	ctx := render.NewContext(lessons, settings, pairs, choices)
//	err := pdfdoc.Export(w, plan, ctx)
package pdfdoc
