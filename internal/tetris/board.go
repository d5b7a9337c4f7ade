package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is a well coordinate. Col lies in [0, columns); rows grow downward
// and negative rows form the spawn buffer above the visible well.
type Cell struct {
	Col, Row int
}

// Board owns the well's occupancy state: a sparse map from occupied cell to
// its color. The map is the sole persistent state of the well; the dense
// Grid view exists only for rendering convenience. Rows >= the well height
// never appear as keys.
type Board struct {
	columns int
	rows    int
	cells   map[Cell]core.Color
}

// NewBoard creates an empty well with the given dimensions.
func NewBoard(columns, rows int) *Board {
	return &Board{
		columns: columns,
		rows:    rows,
		cells:   make(map[Cell]core.Color),
	}
}

// Columns returns the well width.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the visible well height.
func (b *Board) Rows() int {
	return b.rows
}

// At reports the color at a cell and whether it is occupied.
func (b *Board) At(c Cell) (core.Color, bool) {
	color, ok := b.cells[c]
	return color, ok
}

// CellCount returns the number of occupied cells.
func (b *Board) CellCount() int {
	return len(b.cells)
}

// Fits reports whether every cell of a placement is legal: column within the
// well, row above the floor, and no overlap with occupied cells at visible
// rows. Cells at negative rows are exempt from the occupancy check (spawn
// buffer) but still bounded by the column range. This is the single source
// of truth for movement and rotation legality.
func (b *Board) Fits(cells []Cell) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= b.columns || c.Row >= b.rows {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if _, occupied := b.cells[c]; occupied {
			return false
		}
	}
	return true
}

// Merge writes the cells into the occupancy map with the given color.
// Called exactly once per piece lock. Returns true if any written cell sits
// above the visible well (row < 0), which signals game over to the caller.
func (b *Board) Merge(cells []Cell, color core.Color) bool {
	aboveWell := false
	for _, c := range cells {
		if c.Row < 0 {
			aboveWell = true
		}
		b.cells[c] = color
	}
	return aboveWell
}

// ClearLines removes every fully occupied row in one atomic pass and
// collapses the remainder: each surviving cell shifts down by the number of
// cleared rows strictly below it. Handles multiple non-adjacent rows in a
// single call. Returns the number of rows cleared.
func (b *Board) ClearLines() int {
	var full []int
	for row := 0; row < b.rows; row++ {
		if b.rowFull(row) {
			full = append(full, row)
		}
	}
	if len(full) == 0 {
		return 0
	}

	isFull := make(map[int]bool, len(full))
	for _, row := range full {
		isFull[row] = true
	}

	next := make(map[Cell]core.Color, len(b.cells))
	for c, color := range b.cells {
		if isFull[c.Row] {
			continue
		}
		shift := 0
		for _, row := range full {
			if row > c.Row {
				shift++
			}
		}
		next[Cell{Col: c.Col, Row: c.Row + shift}] = color
	}
	b.cells = next

	return len(full)
}

// rowFull reports whether every column of the given visible row is occupied.
func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.columns; col++ {
		if _, ok := b.cells[Cell{Col: col, Row: row}]; !ok {
			return false
		}
	}
	return true
}

// Grid returns a dense rows x columns view of the visible well for
// rendering. Unoccupied cells hold ColorDefault; occupancy is reported
// separately so the default color stays usable for pieces.
func (b *Board) Grid() [][]GridCell {
	grid := make([][]GridCell, b.rows)
	for row := range grid {
		grid[row] = make([]GridCell, b.columns)
	}
	for c, color := range b.cells {
		if c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.columns {
			grid[c.Row][c.Col] = GridCell{Color: color, Occupied: true}
		}
	}
	return grid
}

// GridCell is one entry of the dense rendering view.
type GridCell struct {
	Color    core.Color
	Occupied bool
}
