package torus

import "strings"

// Frame is one character grid and its depth buffer. Depth stores ooz
// (one over z); larger values are nearer the viewer.
type Frame struct {
	Width, Height int
	Cells         []rune
	Depth         []float64
}

// NewFrame allocates a blank frame. A non-positive dimension yields an
// empty frame.
func NewFrame(w, h int) *Frame {
	if w <= 0 || h <= 0 {
		return &Frame{}
	}
	f := &Frame{
		Width:  w,
		Height: h,
		Cells:  make([]rune, w*h),
		Depth:  make([]float64, w*h),
	}
	for i := range f.Cells {
		f.Cells[i] = Blank
	}
	return f
}

// Plot writes c at (x, y) when the cell is on the grid and ooz is nearer
// than what the cell already holds. It reports whether the cell changed.
func (f *Frame) Plot(x, y int, ooz float64, c rune) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	idx := x + f.Width*y
	if ooz <= f.Depth[idx] {
		return false
	}
	f.Depth[idx] = ooz
	f.Cells[idx] = c
	return true
}

// At returns the character at (x, y), or Blank off the grid.
func (f *Frame) At(x, y int) rune {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Blank
	}
	return f.Cells[x+f.Width*y]
}

// Lit counts the cells holding something other than Blank.
func (f *Frame) Lit() int {
	n := 0
	for _, c := range f.Cells {
		if c != Blank {
			n++
		}
	}
	return n
}

// String joins the rows with newlines and ends with a trailing newline.
func (f *Frame) String() string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		for _, c := range f.Cells[y*f.Width : (y+1)*f.Width] {
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
