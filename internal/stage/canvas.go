package stage

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell drawing surface. Coordinates passed to the
// drawing methods are sub-pixel coordinates: the drawable area is
// (Width*2) x (Height*4) dots on a Width x Height cell grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// DotWidth returns the drawable width in dots.
func (c *Canvas) DotWidth() int { return c.Width * 2 }

// DotHeight returns the drawable height in dots.
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset turns off the dot at (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < 0x2800 {
		c.Grid[row][col] = 0x2800
	}
}

// On reports whether the dot at (x, y) is set.
func (c *Canvas) On(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Blank reports whether no dot is set anywhere on the canvas.
func (c *Canvas) Blank() bool {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				return false
			}
		}
	}
	return true
}

// Line draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect fills the axis-aligned rectangle between (x0, y0) and (x1, y1).
func (c *Canvas) Rect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y)
		}
	}
}

// Dot draws a filled disc of the given radius around (x, y).
func (c *Canvas) Dot(x, y, r int) {
	if r < 0 {
		r = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

// Circle draws the outline of a circle of the given radius around (x, y).
func (c *Canvas) Circle(x, y, r int) {
	if r <= 0 {
		c.Set(x, y)
		return
	}
	steps := 8 * r
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(x+int(float64(r)*math.Cos(a)), y+int(float64(r)*math.Sin(a)))
	}
}

// Merge ORs every set dot of src into c. Both canvases must share cell
// dimensions; extra cells in either are ignored.
func (c *Canvas) Merge(src *Canvas) {
	if src == nil {
		return
	}
	for i := 0; i < len(c.Grid) && i < len(src.Grid); i++ {
		for j := 0; j < len(c.Grid[i]) && j < len(src.Grid[i]); j++ {
			c.Grid[i][j] |= src.Grid[i][j] & 0xFF
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
