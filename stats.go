package d2q9

import (
	"math"

	"github.com/phil-mansfield/d2q9/comm"
)

// localVelocity sums the velocity magnitudes of the fluid cells in the rows
// of dom and counts those cells. Obstacle cells contribute nothing.
func localVelocity(cells *Grid, obst *Mask, dom Domain) (sum float32, count int) {
	for jj := dom.Start; jj < dom.End(); jj++ {
		for ii := 0; ii < cells.Nx; ii++ {
			if obst.At(ii, jj) {
				continue
			}

			c := cells.At(ii, jj)
			density := c.Density()
			ux, uy := c.Velocity(density)
			sum += float32(math.Sqrt(float64(ux*ux + uy*uy)))
			count++
		}
	}
	return sum, count
}

// avVelocity returns the average fluid velocity over the rows of dom,
// reduced across all workers. The master rank gets the global average.
// Every other rank falls back to the average over its own band, since the
// reduction only delivers totals to the master. A band with no fluid cells
// divides by zero and the NaN propagates to the caller.
func avVelocity(cells *Grid, obst *Mask, dom Domain, cm *comm.Comm, master int) float32 {
	sum, count := localVelocity(cells, obst, dom)

	if cm.Size() > 1 {
		tot := cm.Reduce(master, []float32{sum, float32(count)})
		if cm.Rank() == master {
			return tot[0] / tot[1]
		}
	}

	return sum / float32(count)
}

// AvVelocity returns the average fluid velocity over the full grid. The
// grid must be complete, which after a multi-worker run is only true of the
// master's gathered grid.
func AvVelocity(cells *Grid, obst *Mask) float32 {
	sum, count := localVelocity(cells, obst, Domain{0, cells.Ny})
	return sum / float32(count)
}

// Reynolds returns the Reynolds number of the flow, computed from the
// average velocity of the full grid and the viscosity implied by
// par.Omega.
func Reynolds(par *Params, cells *Grid, obst *Mask) float32 {
	viscosity := 1.0 / 6.0 * (2.0/par.Omega - 1.0)
	return AvVelocity(cells, obst) * float32(par.ReynoldsDim) / viscosity
}

// TotalDensity sums the speeds of every cell in the grid. With periodic
// boundaries and no forcing the total stays constant between steps, which
// makes it a useful debugging check.
func TotalDensity(cells *Grid) float32 {
	var total float32
	for i := range cells.Cells {
		total += cells.Cells[i].Density()
	}
	return total
}
