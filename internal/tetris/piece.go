package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino families.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
	kindCount
)

// String returns the canonical one-letter family name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the classic display color for the family.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindT:
		return core.ColorMagenta
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// rotation is one precomputed rotation state: the occupied cell offsets
// relative to the anchor, plus the pattern grid dimensions used for spawning.
type rotation struct {
	cells  []Cell
	width  int
	height int
}

// patternStrings spells out every rotation state per family. The states are
// fixed tables rather than a runtime matrix transform, so each one can be
// audited on its own. Distinct state counts: O has 1, I/S/Z have 2,
// J/L/T have 4.
var patternStrings = [kindCount][][]string{
	KindI: {
		{
			"0000",
			"1111",
			"0000",
			"0000",
		},
		{
			"0010",
			"0010",
			"0010",
			"0010",
		},
	},
	KindJ: {
		{
			"100",
			"111",
			"000",
		},
		{
			"011",
			"010",
			"010",
		},
		{
			"000",
			"111",
			"001",
		},
		{
			"010",
			"010",
			"110",
		},
	},
	KindL: {
		{
			"001",
			"111",
			"000",
		},
		{
			"010",
			"010",
			"011",
		},
		{
			"000",
			"111",
			"100",
		},
		{
			"110",
			"010",
			"010",
		},
	},
	KindO: {
		{
			"11",
			"11",
		},
	},
	KindS: {
		{
			"011",
			"110",
			"000",
		},
		{
			"010",
			"011",
			"001",
		},
	},
	KindT: {
		{
			"010",
			"111",
			"000",
		},
		{
			"010",
			"011",
			"010",
		},
		{
			"000",
			"111",
			"010",
		},
		{
			"010",
			"110",
			"010",
		},
	},
	KindZ: {
		{
			"110",
			"011",
			"000",
		},
		{
			"001",
			"011",
			"010",
		},
	},
}

// rotations holds the parsed rotation states, indexed by Kind.
var rotations [kindCount][]rotation

func init() {
	for k := range patternStrings {
		for _, pattern := range patternStrings[k] {
			r := rotation{
				width:  len(pattern[0]),
				height: len(pattern),
			}
			for y, row := range pattern {
				for x, ch := range row {
					if ch == '1' {
						r.cells = append(r.cells, Cell{Col: x, Row: y})
					}
				}
			}
			rotations[k] = append(rotations[k], r)
		}
	}
}

// kickOffsets is the ordered horizontal kick sequence tried when a rotation
// collides at the current anchor. There are no vertical kicks and no
// per-family kick tables; this is a deliberate simplification of guideline
// wall kicks, not an omission.
var kickOffsets = [4]int{-1, 1, -2, 2}

// Piece is the falling tetromino: a shape family, a rotation index and an
// anchor position. The anchor translates the rotation's cell pattern into
// well coordinates.
type Piece struct {
	Kind Kind
	rot  int
	Col  int
	Row  int
}

// Spawn creates a piece of the given family, centered horizontally and
// placed so every cell sits above the visible well.
func Spawn(k Kind, columns int) Piece {
	first := rotations[k][0]
	return Piece{
		Kind: k,
		Col:  columns/2 - first.width/2,
		Row:  -first.height,
	}
}

// Rotation returns the current rotation index.
func (p Piece) Rotation() int {
	return p.rot
}

// Cells returns the occupied well coordinates of the piece at its current
// rotation and anchor.
func (p Piece) Cells() []Cell {
	return p.cellsAt(p.rot, p.Col, p.Row)
}

func (p Piece) cellsAt(rot, col, row int) []Cell {
	pattern := rotations[p.Kind][rot].cells
	cells := make([]Cell, len(pattern))
	for i, c := range pattern {
		cells[i] = Cell{Col: col + c.Col, Row: row + c.Row}
	}
	return cells
}

// MoveLeft translates the piece one column left if the board allows it.
func (p *Piece) MoveLeft(b *Board) bool {
	return p.translate(b, -1, 0)
}

// MoveRight translates the piece one column right if the board allows it.
func (p *Piece) MoveRight(b *Board) bool {
	return p.translate(b, 1, 0)
}

// SoftDrop translates the piece one row down if the board allows it.
// A false return means the piece is resting and should lock.
func (p *Piece) SoftDrop(b *Board) bool {
	return p.translate(b, 0, 1)
}

// translate moves the anchor by (dc, dr) iff the target placement is valid.
// Invalid moves are silent no-ops.
func (p *Piece) translate(b *Board, dc, dr int) bool {
	if !b.Fits(p.cellsAt(p.rot, p.Col+dc, p.Row+dr)) {
		return false
	}
	p.Col += dc
	p.Row += dr
	return true
}

// RotateCW advances the rotation index clockwise, trying the horizontal kick
// sequence on collision. Reports false and leaves the piece untouched when
// no placement works.
func (p *Piece) RotateCW(b *Board) bool {
	return p.rotate(b, 1)
}

// RotateCCW advances the rotation index counter-clockwise, with the same
// kick sequence as RotateCW.
func (p *Piece) RotateCCW(b *Board) bool {
	return p.rotate(b, -1)
}

func (p *Piece) rotate(b *Board, dir int) bool {
	states := len(rotations[p.Kind])
	next := (p.rot + dir + states) % states

	if b.Fits(p.cellsAt(next, p.Col, p.Row)) {
		p.rot = next
		return true
	}

	// Same row only; first offset that fits wins.
	for _, dx := range kickOffsets {
		if b.Fits(p.cellsAt(next, p.Col+dx, p.Row)) {
			p.rot = next
			p.Col += dx
			return true
		}
	}

	return false
}

// HardDrop translates the piece down while the board allows it and returns
// the number of rows traveled. The loop is bounded by the well height, so it
// always terminates; the caller locks the piece afterwards.
func (p *Piece) HardDrop(b *Board) int {
	dropped := 0
	for p.SoftDrop(b) {
		dropped++
	}
	return dropped
}
