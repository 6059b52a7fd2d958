package geometry

// Fixed output page: A4 portrait.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0

	// A4 at 96 px per inch, rounded the way browsers size an A4 sheet.
	A4WidthPx  = 794.0
	A4HeightPx = 1123.0
)

// Conversion factors.
const (
	MMPerInch = 25.4
	PxPerInch = 96.0
	PtPerInch = 72.0

	// PxPerMM is the number of logical pixels in one millimetre (3.7795...).
	PxPerMM = PxPerInch / MMPerInch

	// PtPerPx is the number of points in one logical pixel.
	PtPerPx = PtPerInch / PxPerInch
)

// MMToPx converts millimetres to logical pixels.
func MMToPx(mm float64) float64 {
	return mm * PxPerMM
}

// PxToMM converts logical pixels to millimetres.
func PxToMM(px float64) float64 {
	return px / PxPerMM
}

// PxToPt converts logical pixels to print points.
func PxToPt(px float64) float64 {
	return px * PtPerPx
}

// PtToPx converts print points to logical pixels.
func PtToPx(pt float64) float64 {
	return pt / PtPerPx
}

// MMToPt converts millimetres to print points.
func MMToPt(mm float64) float64 {
	return mm * PtPerInch / MMPerInch
}

// A4SizePt returns the physical page size in points (595.28 x 841.89).
func A4SizePt() (width, height float64) {
	return MMToPt(A4WidthMM), MMToPt(A4HeightMM)
}
