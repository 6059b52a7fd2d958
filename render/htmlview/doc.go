// Package htmlview renders layout plans as an HTML preview.
//
// Each plan page becomes a fixed-size 794 x 1123 pixel box and every block
// is absolutely positioned at the offset the layout engine recorded, so the
// preview and the PDF export show the same pagination. Class names
// (lesson-header, mcq, stem, choice, explanation, answer-key, dup) are
// stable and may be targeted by custom stylesheets.
//
// The package also extracts plain text from HTML question banks for the
// importer; see [PlainText].
package htmlview
