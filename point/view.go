package point

// RowSource is the minimal shape a caller's matrix must expose so point
// views can borrow rows without copying. fpsio.Matrix implements it.
type RowSource interface {
	Row(i int) []float32
	P() int
	D() int
}

// View is an immutable accessor into a single D-dimensional row of the
// input matrix. It never allocates: At and the underlying slice both point
// into the caller-owned backing array.
type View struct {
	pos []float32
}

// NewView wraps a row slice as a View. The slice is borrowed, not copied.
func NewView(row []float32) View {
	return View{pos: row}
}

// Dim returns the number of coordinates in the view.
func (v View) Dim() int {
	return len(v.pos)
}

// At returns the d-th coordinate.
func (v View) At(d int) float32 {
	return v.pos[d]
}

// Raw exposes the backing slice for bulk operations (distance kernels).
// Callers must not mutate it.
func (v View) Raw() []float32 {
	return v.pos
}

// Views builds one View per row of src, borrowing each row's backing slice.
func Views(src RowSource) []View {
	out := make([]View, src.P())
	for i := range out {
		out[i] = NewView(src.Row(i))
	}
	return out
}
