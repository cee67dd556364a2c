// Package life is the grid engine behind the Conway's Game of Life
// demo page.
package life

import "math/rand"

// GridSize is the fixed edge length of the demo grid.
const GridSize = 30

// Grid is a GridSize x GridSize field of dead (0) and live (1) cells.
// The board is bounded, cells past the edge count as dead.
type Grid [][]int

func Empty() Grid {
	g := make(Grid, GridSize)
	for i := range g {
		g[i] = make([]int, GridSize)
	}

	return g
}

// Random fills a fresh grid, each cell live with probability p.
func Random(p float64, rng *rand.Rand) Grid {
	g := Empty()
	for x := range g {
		for y := range g[x] {
			if rng.Float64() < p {
				g[x][y] = 1
			}
		}
	}

	return g
}

// Glider places the classic glider near the top-left corner.
func Glider() Grid {
	g := Empty()
	g[1][2] = 1
	g[2][3] = 1
	g[3][1] = 1
	g[3][2] = 1
	g[3][3] = 1

	return g
}

// letterPatterns maps the letters the demo can spell to cell offsets.
var letterPatterns = map[rune][][2]int{
	'J': {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}, {0, 2}, {0, 3}},
	'O': {{0, 0}, {0, 3}, {2, 0}, {2, 3}, {1, 1}, {1, 2}},
	'H': {{0, 0}, {1, 0}, {2, 0}, {1, 1}, {0, 3}, {1, 3}, {2, 3}},
	'N': {{0, 0}, {1, 1}, {2, 2}, {2, 3}, {0, 3}, {1, 2}},
}

// Name spells the given name across the grid, five columns per
// letter. Letters without a pattern are skipped but still advance the
// cursor.
func Name(name string) Grid {
	g := Empty()

	startX, startY := 5, 5
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}

		for _, d := range letterPatterns[r] {
			x, y := startX+d[0], startY+d[1]
			if x < GridSize && y < GridSize {
				g[x][y] = 1
			}
		}

		startY += 5
	}

	return g
}

func (g Grid) neighbors(x, y int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < len(g) && ny >= 0 && ny < len(g[nx]) {
				count += g[nx][ny]
			}
		}
	}

	return count
}

// Step applies one generation of the standard rules: a live cell
// survives with two or three neighbors, a dead cell with exactly
// three neighbors comes alive.
func (g Grid) Step() Grid {
	next := make(Grid, len(g))
	for x := range g {
		next[x] = make([]int, len(g[x]))
		for y, cell := range g[x] {
			n := g.neighbors(x, y)

			switch {
			case cell == 1 && (n < 2 || n > 3):
				next[x][y] = 0
			case cell == 0 && n == 3:
				next[x][y] = 1
			default:
				next[x][y] = cell
			}
		}
	}

	return next
}

// Run advances the grid n generations.
func (g Grid) Run(n int) Grid {
	for range n {
		g = g.Step()
	}

	return g
}

// Alive counts the live cells.
func (g Grid) Alive() int {
	count := 0
	for x := range g {
		for _, cell := range g[x] {
			count += cell
		}
	}

	return count
}
