/*package d2q9 simulates two dimensional incompressible fluid flow with a
D2Q9 lattice Boltzmann scheme and BGK collisions. The grid's rows are split
into contiguous bands, one per worker, which exchange halo rows every step
and reassemble the full grid at a designated master once the run finishes.

The nine speeds in each cell are indexed rest first, then the axis
directions east, north, west, south, then the diagonals NE, NW, SW, SE.
*/
package d2q9

// NSpeeds is the number of discrete velocity directions per cell.
const NSpeeds = 9

// Cell holds the distribution function values of a single grid cell. The
// sum over all nine speeds is the local fluid density.
type Cell [NSpeeds]float32

// Grid is a dense row-major grid of cells. Cells are stored flat and
// indexed as ii + jj*Nx, with ii the column and jj the row.
type Grid struct {
	Nx, Ny int
	Cells  []Cell
}

// NewGrid creates an nx by ny grid with every cell set to the equilibrium
// distribution of a fluid at rest with the given density.
func NewGrid(nx, ny int, density float32) *Grid {
	g := &Grid{Nx: nx, Ny: ny, Cells: make([]Cell, nx*ny)}

	w0 := density * 4 / 9
	w1 := density / 9
	w2 := density / 36

	for i := range g.Cells {
		c := &g.Cells[i]
		c[0] = w0
		c[1], c[2], c[3], c[4] = w1, w1, w1, w1
		c[5], c[6], c[7], c[8] = w2, w2, w2, w2
	}

	return g
}

// At returns the cell in column ii of row jj.
func (g *Grid) At(ii, jj int) *Cell {
	return &g.Cells[ii+jj*g.Nx]
}

// PackRow copies row jj into buf, cell by cell, NSpeeds values per cell.
// buf must have length Nx*NSpeeds.
func (g *Grid) PackRow(jj int, buf []float32) {
	for ii := 0; ii < g.Nx; ii++ {
		c := g.At(ii, jj)
		for kk := 0; kk < NSpeeds; kk++ {
			buf[ii*NSpeeds+kk] = c[kk]
		}
	}
}

// UnpackRow copies buf, as packed by PackRow, into row jj.
func (g *Grid) UnpackRow(jj int, buf []float32) {
	for ii := 0; ii < g.Nx; ii++ {
		c := g.At(ii, jj)
		for kk := 0; kk < NSpeeds; kk++ {
			c[kk] = buf[ii*NSpeeds+kk]
		}
	}
}

// Density returns the local fluid density of the cell.
func (c *Cell) Density() float32 {
	var density float32
	for kk := 0; kk < NSpeeds; kk++ {
		density += c[kk]
	}
	return density
}

// Velocity returns the bulk velocity components of the cell. density must
// be the value returned by c.Density().
func (c *Cell) Velocity(density float32) (ux, uy float32) {
	ux = (c[1] + c[5] + c[8] - (c[3] + c[6] + c[7])) / density
	uy = (c[2] + c[5] + c[6] - (c[4] + c[7] + c[8])) / density
	return ux, uy
}

// Mask marks the grid cells blocked by obstacles. It is immutable once the
// run starts and is shared read-only by every worker.
type Mask struct {
	Nx, Ny  int
	Blocked []bool
}

// NewMask creates an all-clear obstacle mask for an nx by ny grid.
func NewMask(nx, ny int) *Mask {
	return &Mask{Nx: nx, Ny: ny, Blocked: make([]bool, nx*ny)}
}

// At reports whether the cell in column ii of row jj is blocked.
func (m *Mask) At(ii, jj int) bool {
	return m.Blocked[ii+jj*m.Nx]
}

// Set blocks the cell in column ii of row jj.
func (m *Mask) Set(ii, jj int) {
	m.Blocked[ii+jj*m.Nx] = true
}
