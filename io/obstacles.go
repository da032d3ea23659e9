package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/d2q9"
)

// ReadObstacles reads an obstacle file into a mask for an nx by ny grid.
// Each line of the file holds three columns: the x coordinate, the y
// coordinate, and a blocked value which must be 1. Coordinates outside the
// grid are an error.
func ReadObstacles(fname string, nx, ny int) (mask *d2q9.Mask, err error) {
	// The table package reports unreadable or malformed files by panicking,
	// so convert that back into the error this function promises to return.
	defer func() {
		if r := recover(); r != nil {
			mask, err = nil, fmt.Errorf("%v", r)
		}
	}()
	cols := table.TextFile(fname).ReadFloat64s([]int{0, 1, 2})
	xs, ys, blocked := cols[0], cols[1], cols[2]

	mask = d2q9.NewMask(nx, ny)
	for i := range xs {
		ii, jj := int(xs[i]), int(ys[i])

		if ii < 0 || ii >= nx {
			return nil, fmt.Errorf(
				"Obstacle %d has x coordinate %d, but the valid range is [0, %d).",
				i, ii, nx,
			)
		} else if jj < 0 || jj >= ny {
			return nil, fmt.Errorf(
				"Obstacle %d has y coordinate %d, but the valid range is [0, %d).",
				i, jj, ny,
			)
		} else if blocked[i] != 1 {
			return nil, fmt.Errorf(
				"Obstacle %d has blocked value %g, but it must be 1.",
				i, blocked[i],
			)
		}

		mask.Set(ii, jj)
	}

	return mask, nil
}
