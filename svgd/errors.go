package svgd

import "fmt"

// ShapeError reports a matrix whose dimensions do not match what an
// operation required. Want holds the expected shape, Got the one seen.
type ShapeError struct {
	Op       string
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("svgd: %s: want %dx%d matrix, got %dx%d",
		e.Op, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}
