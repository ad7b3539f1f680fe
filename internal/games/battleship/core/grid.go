package core

// Grid is a square board of cells stored packed at 2 bits per cell.
// A 10x10 board takes 25 bytes instead of 100, and a session keeps four of
// them.
//
// Cell accessors do not bounds-check: callers keep coordinates inside
// [0, Size()-1]. The cursor and the gunner both clamp before touching the
// grid.
type Grid struct {
	size int
	bits []byte
}

// NewGrid creates an all-empty grid with the given side length.
func NewGrid(size int) *Grid {
	nbits := size * size * 2
	return &Grid{
		size: size,
		bits: make([]byte, (nbits+7)/8),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Cell returns the state stored at (x, y).
func (g *Grid) Cell(x, y int) CellState {
	return CellState(readPair(g.bits, (y*g.size+x)*2))
}

// SetCell overwrites the 2 bits at (x, y) with the given state,
// leaving every other bit in the buffer unchanged.
func (g *Grid) SetCell(x, y int, s CellState) {
	writePair(g.bits, (y*g.size+x)*2, uint8(s))
}

// Count returns the number of cells currently in the given state.
func (g *Grid) Count(s CellState) int {
	n := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.Cell(x, y) == s {
				n++
			}
		}
	}
	return n
}

// Untried returns the number of cells still empty. On an attack grid this
// is the count of coordinates not yet fired at, which bounds every gunner
// retry loop.
func (g *Grid) Untried() int {
	return g.Count(CellEmpty)
}

// Reset clears every cell back to CellEmpty.
func (g *Grid) Reset() {
	for i := range g.bits {
		g.bits[i] = 0
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	bits := make([]byte, len(g.bits))
	copy(bits, g.bits)
	return &Grid{size: g.size, bits: bits}
}

// writePair stores a 2-bit value at the given bit offset. The two bits are
// addressed independently, so a pair whose offset puts its second bit past
// a byte boundary (offset 7: one bit in buf[0], one in buf[1]) is handled
// the same as an aligned pair.
func writePair(buf []byte, off int, v uint8) {
	setBit(buf, off, v&1)
	setBit(buf, off+1, (v>>1)&1)
}

// readPair reads a 2-bit value from the given bit offset, with the same
// boundary-straddling handling as writePair.
func readPair(buf []byte, off int) uint8 {
	return getBit(buf, off) | getBit(buf, off+1)<<1
}

func setBit(buf []byte, off int, b uint8) {
	idx := off / 8
	sh := uint(off % 8)
	if b == 0 {
		buf[idx] &^= 1 << sh
	} else {
		buf[idx] |= 1 << sh
	}
}

func getBit(buf []byte, off int) uint8 {
	return (buf[off/8] >> uint(off%8)) & 1
}
