package frame

// computeStats fills the per-column min/max slices from the loaded rows.
// Both are seeded from row 0, so the caller must ensure at least one row
// exists before calling.
func (f *Frame) computeStats() {
	cols := len(f.columns)
	f.colMin = make([]float64, cols)
	f.colMax = make([]float64, cols)

	copy(f.colMin, f.rows[0])
	copy(f.colMax, f.rows[0])

	for _, row := range f.rows[1:] {
		for c, v := range row {
			if v < f.colMin[c] {
				f.colMin[c] = v
			}
			if v > f.colMax[c] {
				f.colMax[c] = v
			}
		}
	}
}
