package game

import (
	"fmt"
	"strings"
)

// Disc is the content of a board cell.
type Disc int8

const (
	Empty Disc = iota
	Dark
	Light
)

// DefaultSize is the standard Othello board size.
const DefaultSize = 8

// ReversiMove is a board coordinate, or the pass sentinel (-1, -1).
type ReversiMove struct {
	X, Y int
}

// Pass is the null move: it switches the mover and leaves the board alone.
var Pass = ReversiMove{X: -1, Y: -1}

func (m ReversiMove) IsPass() bool {
	return m.X == -1 && m.Y == -1
}

func (m ReversiMove) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}

// directions covers the 8 neighbours of a cell.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// ReversiPosition is a Reversi/Othello position: a square board plus the
// player to move. It implements Position.
type ReversiPosition struct {
	size  int
	cells []Disc // row-major, y*size+x
	mover Disc
}

// NewPosition returns the standard 8x8 opening position: the four center
// discs placed in diagonal pairs, Dark to move.
func NewPosition() *ReversiPosition {
	return NewPositionSize(DefaultSize)
}

// NewPositionSize returns the opening position on a size x size board.
// Size must be even and at least 4 to fit the center discs.
func NewPositionSize(size int) *ReversiPosition {
	if size < 4 || size%2 != 0 {
		panic(fmt.Sprintf("board size must be even and >= 4, got %d", size))
	}
	p := &ReversiPosition{
		size:  size,
		cells: make([]Disc, size*size),
		mover: Dark,
	}
	hi := size / 2
	lo := hi - 1
	p.set(lo, lo, Light)
	p.set(hi, hi, Light)
	p.set(lo, hi, Dark)
	p.set(hi, lo, Dark)
	return p
}

// Size returns the board edge length.
func (p *ReversiPosition) Size() int {
	return p.size
}

// Mover returns the player to move.
func (p *ReversiPosition) Mover() Disc {
	return p.mover
}

// At returns the disc at (x, y).
func (p *ReversiPosition) At(x, y int) Disc {
	return p.cells[y*p.size+x]
}

func (p *ReversiPosition) set(x, y int, d Disc) {
	p.cells[y*p.size+x] = d
}

func (p *ReversiPosition) inBounds(x, y int) bool {
	return x >= 0 && x < p.size && y >= 0 && y < p.size
}

func opponent(d Disc) Disc {
	if d == Dark {
		return Light
	}
	return Dark
}

// Copy returns an independent deep copy of the position.
func (p *ReversiPosition) Copy() Position {
	cells := make([]Disc, len(p.cells))
	copy(cells, p.cells)
	return &ReversiPosition{
		size:  p.size,
		cells: cells,
		mover: p.mover,
	}
}

// flipsInDirection counts the opponent discs outflanked from (x, y) along
// (dx, dy) for the given player: a contiguous run of opponent discs
// terminated by the player's own disc. Zero means the direction does not
// qualify.
func (p *ReversiPosition) flipsInDirection(x, y, dx, dy int, player Disc) int {
	opp := opponent(player)
	run := 0
	cx, cy := x+dx, y+dy
	for p.inBounds(cx, cy) && p.At(cx, cy) == opp {
		run++
		cx, cy = cx+dx, cy+dy
	}
	if run == 0 || !p.inBounds(cx, cy) || p.At(cx, cy) != player {
		return 0
	}
	return run
}

// isLegal reports whether player may place a disc at (x, y): the cell is
// empty and at least one direction outflanks.
func (p *ReversiPosition) isLegal(x, y int, player Disc) bool {
	if p.At(x, y) != Empty {
		return false
	}
	for _, d := range directions {
		if p.flipsInDirection(x, y, d[0], d[1], player) > 0 {
			return true
		}
	}
	return false
}

// coordinateMoves lists the legal non-pass moves for player, scanning row
// by row, left to right. The scan order is the enumeration order LegalMoves
// promises.
func (p *ReversiPosition) coordinateMoves(player Disc) []ReversiMove {
	var moves []ReversiMove
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			if p.isLegal(x, y, player) {
				moves = append(moves, ReversiMove{X: x, Y: y})
			}
		}
	}
	return moves
}

// LegalMoves enumerates the mover's moves in scan order. When the mover has
// no legal placement it returns the single pass move, never an empty slice.
func (p *ReversiPosition) LegalMoves() []Move {
	coords := p.coordinateMoves(p.mover)
	if len(coords) == 0 {
		return []Move{Pass}
	}
	moves := make([]Move, len(coords))
	for i, m := range coords {
		moves[i] = m
	}
	return moves
}

// Apply plays a move and returns the resulting position. A coordinate move
// flips every outflanked run in every qualifying direction, places the
// mover's disc, and switches the mover. A pass only switches the mover.
func (p *ReversiPosition) Apply(move Move) (Position, error) {
	m, ok := move.(ReversiMove)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a reversi move", ErrInvalidMove, move)
	}

	next := p.Copy().(*ReversiPosition)
	if m.IsPass() {
		next.mover = opponent(next.mover)
		return next, nil
	}

	if !p.inBounds(m.X, m.Y) {
		return nil, fmt.Errorf("%w: %v is off the board", ErrInvalidMove, m)
	}
	if p.At(m.X, m.Y) != Empty {
		return nil, fmt.Errorf("%w: %v is occupied", ErrInvalidMove, m)
	}

	flipped := 0
	for _, d := range directions {
		run := p.flipsInDirection(m.X, m.Y, d[0], d[1], p.mover)
		for i := 1; i <= run; i++ {
			next.set(m.X+d[0]*i, m.Y+d[1]*i, p.mover)
		}
		flipped += run
	}
	if flipped == 0 {
		return nil, fmt.Errorf("%w: %v outflanks nothing", ErrInvalidMove, m)
	}

	next.set(m.X, m.Y, p.mover)
	next.mover = opponent(next.mover)
	return next, nil
}

// Evaluate scores the position as the mobility difference: the mover's
// legal placement count minus the opponent's. It never touches the board.
func (p *ReversiPosition) Evaluate() int {
	return len(p.coordinateMoves(p.mover)) - len(p.coordinateMoves(opponent(p.mover)))
}

// IsTerminal reports whether the game is over: neither player has a legal
// placement (the double-pass rule).
func (p *ReversiPosition) IsTerminal() bool {
	return len(p.coordinateMoves(Dark)) == 0 && len(p.coordinateMoves(Light)) == 0
}

// Count returns the number of discs of the given color on the board.
func (p *ReversiPosition) Count(d Disc) int {
	n := 0
	for _, c := range p.cells {
		if c == d {
			n++
		}
	}
	return n
}

// String renders the board compactly for logs and test failures.
func (p *ReversiPosition) String() string {
	var sb strings.Builder
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			switch p.At(x, y) {
			case Dark:
				sb.WriteByte('X')
			case Light:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
