package life

import (
	"math/rand"
	"testing"
)

func TestEmptyStaysEmpty(t *testing.T) {
	t.Parallel()

	g := Empty().Run(10)

	if g.Alive() != 0 {
		t.Fatalf("empty grid produced %d live cells", g.Alive())
	}
}

func TestBlinkerOscillates(t *testing.T) {
	t.Parallel()

	g := Empty()
	g[5][4] = 1
	g[5][5] = 1
	g[5][6] = 1

	next := g.Step()

	// Horizontal bar flips to vertical
	for _, x := range []int{4, 5, 6} {
		if next[x][5] != 1 {
			t.Fatalf("cell (%d,5) should be alive after one step", x)
		}
	}
	if next.Alive() != 3 {
		t.Fatalf("blinker has %d live cells, want 3", next.Alive())
	}

	// And back after a second step
	again := next.Step()
	for _, y := range []int{4, 5, 6} {
		if again[5][y] != 1 {
			t.Fatalf("cell (5,%d) should be alive after two steps", y)
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	t.Parallel()

	g := Empty()
	g[4][4] = 1
	g[4][5] = 1
	g[5][4] = 1
	g[5][5] = 1

	next := g.Step()

	for x := range next {
		for y := range next[x] {
			if next[x][y] != g[x][y] {
				t.Fatalf("block changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestGliderMoves(t *testing.T) {
	t.Parallel()

	g := Glider()

	// A glider translates one cell diagonally every four generations
	moved := g.Run(4)

	if moved.Alive() != 5 {
		t.Fatalf("glider has %d live cells, want 5", moved.Alive())
	}

	for _, cell := range [][2]int{{2, 3}, {3, 4}, {4, 2}, {4, 3}, {4, 4}} {
		if moved[cell[0]][cell[1]] != 1 {
			t.Fatalf("cell (%d,%d) should be alive", cell[0], cell[1])
		}
	}
}

func TestRandomRespectsProbability(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	if alive := Random(0, rng).Alive(); alive != 0 {
		t.Fatalf("p=0 grid has %d live cells", alive)
	}

	if alive := Random(1, rng).Alive(); alive != GridSize*GridSize {
		t.Fatalf("p=1 grid has %d live cells, want %d", alive, GridSize*GridSize)
	}
}

func TestNameSeedsCells(t *testing.T) {
	t.Parallel()

	g := Name("John")

	if g.Alive() == 0 {
		t.Fatal("name seed produced no live cells")
	}

	// Lowercase and uppercase spell the same pattern
	if Name("JOHN").Alive() != g.Alive() {
		t.Fatal("case changed the seeded pattern")
	}

	// Unknown letters are skipped
	if Name("zzz").Alive() != 0 {
		t.Fatal("unknown letters seeded cells")
	}
}
