package core

import "testing"

func TestGridBufferSize(t *testing.T) {
	tests := []struct {
		size  int
		bytes int
	}{
		{8, 16},  // 128 bits
		{10, 25}, // 200 bits
		{12, 36}, // 288 bits
		{5, 13},  // 50 bits, rounded up
	}

	for _, tc := range tests {
		g := NewGrid(tc.size)
		if len(g.bits) != tc.bytes {
			t.Errorf("NewGrid(%d): buffer is %d bytes, want %d", tc.size, len(g.bits), tc.bytes)
		}
	}
}

func TestGridRoundTrip(t *testing.T) {
	states := []CellState{CellEmpty, CellShip, CellHit, CellMiss}

	for _, size := range []int{8, 10, 12} {
		g := NewGrid(size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				for _, s := range states {
					g.SetCell(x, y, s)
					if got := g.Cell(x, y); got != s {
						t.Fatalf("size %d: cell (%d,%d) = %v after writing %v", size, x, y, got, s)
					}
				}
			}
		}
	}
}

func TestGridNonInterference(t *testing.T) {
	const size = 10
	g := NewGrid(size)

	// Fill with a known pattern.
	pattern := func(x, y int) CellState {
		return CellState((x + y) % 4)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.SetCell(x, y, pattern(x, y))
		}
	}

	// Overwrite one cell and verify nothing else moved.
	g.SetCell(3, 7, CellHit)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			want := pattern(x, y)
			if x == 3 && y == 7 {
				want = CellHit
			}
			if got := g.Cell(x, y); got != want {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// The pair helpers must work at any bit offset, including offsets where the
// two bits land in different bytes.
func TestPairStraddlesByteBoundary(t *testing.T) {
	offsets := []int{0, 3, 6, 7, 13, 15, 23}
	values := []uint8{0b00, 0b01, 0b10, 0b11}

	for _, off := range offsets {
		for _, v := range values {
			buf := make([]byte, 4)
			// Surrounding bits set so a sloppy mask would show up.
			for i := range buf {
				buf[i] = 0xFF
			}

			writePair(buf, off, v)

			if got := readPair(buf, off); got != v {
				t.Errorf("offset %d: readPair = %02b, want %02b", off, got, v)
			}

			// Every bit outside the pair must still be set.
			for bit := 0; bit < len(buf)*8; bit++ {
				if bit == off || bit == off+1 {
					continue
				}
				if getBit(buf, bit) != 1 {
					t.Errorf("offset %d value %02b: disturbed unrelated bit %d", off, v, bit)
				}
			}
		}
	}
}

func TestGridCountAndUntried(t *testing.T) {
	g := NewGrid(8)
	if g.Untried() != 64 {
		t.Fatalf("fresh grid Untried() = %d, want 64", g.Untried())
	}

	g.SetCell(0, 0, CellShip)
	g.SetCell(1, 0, CellShip)
	g.SetCell(2, 0, CellHit)
	g.SetCell(3, 0, CellMiss)

	if got := g.Count(CellShip); got != 2 {
		t.Errorf("Count(CellShip) = %d, want 2", got)
	}
	if got := g.Untried(); got != 60 {
		t.Errorf("Untried() = %d, want 60", got)
	}
}

func TestGridResetAndClone(t *testing.T) {
	g := NewGrid(8)
	g.SetCell(4, 4, CellShip)

	clone := g.Clone()
	g.Reset()

	if g.Cell(4, 4) != CellEmpty {
		t.Error("Reset() did not clear cell")
	}
	if clone.Cell(4, 4) != CellShip {
		t.Error("Clone() shares storage with original")
	}
}
