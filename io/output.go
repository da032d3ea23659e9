package io

import (
	"fmt"
	"math"
	"os"

	"github.com/phil-mansfield/d2q9"
)

// WriteState writes one line per cell of the gathered grid: column, row,
// the velocity components, the velocity magnitude, the pressure, and the
// obstacle flag. Obstacle cells report zero velocity and the pressure of
// the configured rest density.
func WriteState(fname string, par *d2q9.Params, cells *d2q9.Grid, obst *d2q9.Mask) error {
	const cSq = 1.0 / 3.0

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	for jj := 0; jj < par.Ny; jj++ {
		for ii := 0; ii < par.Nx; ii++ {
			var ux, uy, u, pressure float32
			blocked := 0

			if obst.At(ii, jj) {
				pressure = par.Density * cSq
				blocked = 1
			} else {
				c := cells.At(ii, jj)
				density := c.Density()
				ux, uy = c.Velocity(density)
				u = float32(math.Sqrt(float64(ux*ux + uy*uy)))
				pressure = density * cSq
			}

			_, err := fmt.Fprintf(
				f, "%d %d %.12E %.12E %.12E %.12E %d\n",
				ii, jj, ux, uy, u, pressure, blocked,
			)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteAvVels writes the average velocity series, one "step: value" line
// per time step.
func WriteAvVels(fname string, avVels []float32) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	for tt, v := range avVels {
		if _, err := fmt.Fprintf(f, "%d:\t%.12E\n", tt, v); err != nil {
			return err
		}
	}

	return nil
}
