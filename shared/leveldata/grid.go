package leveldata

import (
	"fmt"
	"slices"

	"github.com/automoto/koopa/shared/gamemath"
)

// Grid is an immutable level layout. Colliders are extracted once, in
// row-major scan order, and never change afterwards.
type Grid struct {
	rows, cols int
	tileSize   float64
	cells      []Code
	colliders  []gamemath.Rect
	markers    []Marker
}

// NewGrid builds a grid from equal-length rows of tile characters.
func NewGrid(rows []string, tileSize float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedLevel)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v", ErrMalformedLevel, tileSize)
	}
	cols := len(rows[0])
	cells := make([]Code, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedLevel, r, len(row), cols)
		}
		for c := 0; c < cols; c++ {
			code := Code(row[c])
			if !code.Valid() {
				return nil, fmt.Errorf("%w: unknown tile %q at %d,%d", ErrMalformedLevel, row[c], r, c)
			}
			cells = append(cells, code)
		}
	}
	return newGrid(len(rows), cols, tileSize, cells), nil
}

func newGrid(rows, cols int, tileSize float64, cells []Code) *Grid {
	g := &Grid{rows: rows, cols: cols, tileSize: tileSize, cells: cells}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			code := cells[r*cols+c]
			switch {
			case code.Solid():
				g.colliders = append(g.colliders, gamemath.Rect{
					X: float64(c) * tileSize,
					Y: float64(r) * tileSize,
					W: tileSize,
					H: tileSize,
				})
			case code != Empty:
				g.markers = append(g.markers, Marker{Code: code, Cell: Cell{Row: r, Col: c}})
			}
		}
	}
	return g
}

func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) TileSize() float64 { return g.tileSize }

// PixelWidth is the grid's width in world units.
func (g *Grid) PixelWidth() float64 { return float64(g.cols) * g.tileSize }

// PixelHeight is the grid's height in world units.
func (g *Grid) PixelHeight() float64 { return float64(g.rows) * g.tileSize }

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the code at a cell, or Empty outside the grid.
func (g *Grid) At(row, col int) Code {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row*g.cols+col]
}

// CellAt maps a world position to the cell containing it.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{Row: floorDiv(y, g.tileSize), Col: floorDiv(x, g.tileSize)}
}

func floorDiv(v, size float64) int {
	i := int(v / size)
	if v < 0 && float64(i)*size != v {
		i--
	}
	return i
}

// Colliders returns a copy of the collider list in scan order.
func (g *Grid) Colliders() []gamemath.Rect {
	return slices.Clone(g.colliders)
}

// NumColliders returns the collider count.
func (g *Grid) NumColliders() int { return len(g.colliders) }

// AppendCandidates appends every collider to dst in scan order. The linear
// query never filters; callers test overlap themselves.
func (g *Grid) AppendCandidates(dst []gamemath.Rect, _ gamemath.Rect) []gamemath.Rect {
	return append(dst, g.colliders...)
}

// Markers returns the non-solid, non-empty tiles in scan order.
func (g *Grid) Markers() []Marker {
	return slices.Clone(g.markers)
}

// Count returns how many tiles carry code.
func (g *Grid) Count(code Code) int {
	n := 0
	for _, c := range g.cells {
		if c == code {
			n++
		}
	}
	return n
}

// Spawn returns the world position of the last player start in scan order.
func (g *Grid) Spawn() (x, y float64, ok bool) {
	for i := len(g.markers) - 1; i >= 0; i-- {
		if m := g.markers[i]; m.Code == Start {
			return float64(m.Cell.Col) * g.tileSize, float64(m.Cell.Row) * g.tileSize, true
		}
	}
	return 0, 0, false
}

// Strings renders the grid back into its row format.
func (g *Grid) Strings() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = byte(g.cells[r*g.cols+c])
		}
		out[r] = string(buf)
	}
	return out
}

// Edit returns a mutable copy for editors and generators.
func (g *Grid) Edit() *Draft {
	return &Draft{rows: g.rows, cols: g.cols, tileSize: g.tileSize, cells: slices.Clone(g.cells)}
}

// Draft is a mutable grid under construction.
type Draft struct {
	rows, cols int
	tileSize   float64
	cells      []Code
}

// NewDraft returns an all-empty draft.
func NewDraft(rows, cols int, tileSize float64) *Draft {
	cells := make([]Code, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return &Draft{rows: rows, cols: cols, tileSize: tileSize, cells: cells}
}

func (d *Draft) Rows() int { return d.rows }
func (d *Draft) Cols() int { return d.cols }

// At returns the code at a cell, or Empty outside the draft.
func (d *Draft) At(row, col int) Code {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return Empty
	}
	return d.cells[row*d.cols+col]
}

// Set writes a tile. Writes outside the draft are rejected and leave it untouched.
func (d *Draft) Set(row, col int, code Code) error {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return fmt.Errorf("%w: %d,%d", ErrOutOfBounds, row, col)
	}
	if !code.Valid() {
		return fmt.Errorf("%w: unknown tile %q", ErrMalformedLevel, byte(code))
	}
	d.cells[row*d.cols+col] = code
	return nil
}

// Fill writes code across a whole row.
func (d *Draft) Fill(row int, code Code) {
	for c := 0; c < d.cols; c++ {
		_ = d.Set(row, c, code)
	}
}

// Build freezes the draft into a new grid. The draft stays usable.
func (d *Draft) Build() *Grid {
	return newGrid(d.rows, d.cols, d.tileSize, slices.Clone(d.cells))
}
