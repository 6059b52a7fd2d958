// Package layout paginates MCQ lessons into fixed A4 pages of two columns.
//
// The package has two parts: an [Estimator] that predicts the rendered height
// of every block without real text shaping, and an [Engine] that greedily
// packs those blocks into columns and pages. Both are pure functions of their
// input; the preview and the exported document call them with the same
// snapshot so they agree on pagination before either paints a pixel.
//
// # Computing a Plan
//
//	plan := layout.Compute(lessons, settings)
//	for i, page := range plan.Pages {
//	    for c, col := range page.Columns {
//	        for _, b := range col.Blocks {
//	            fmt.Println(i, c, b.Kind, b.Y, b.Height)
//	        }
//	    }
//	}
//
// # Placement Rules
//
//   - every lesson after the first starts on a fresh page
//   - a lesson header spans both columns; it is recorded once, in column 0,
//     and pushes the cursor of every column below it
//   - questions and the trailing answer key advance to the next column (or
//     page) only when they would strictly overflow a non-empty column
//   - a block taller than an empty column is placed anyway and overflows
//
// # Configuration
//
// The empirical constants of the estimator can be tuned:
//
//	config := layout.DefaultEstimatorConfig()
//	config.CharWidthFactor = 0.5
//	engine := layout.NewEngineWithConfig(config)
package layout
