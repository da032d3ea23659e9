package d2q9

// accelerate nudges the second row from the top of the grid eastward,
// adding a fixed share of the configured forcing to the east-facing speeds
// and removing the same share from the west-facing ones. Cells where the
// subtraction would leave a negative speed are skipped, as are obstacles.
func accelerate(par *Params, cells *Grid, obst *Mask) {
	w1 := par.Density * par.Accel / 9
	w2 := par.Density * par.Accel / 36

	jj := par.Ny - 2

	for ii := 0; ii < par.Nx; ii++ {
		if obst.At(ii, jj) {
			continue
		}

		c := cells.At(ii, jj)
		if c[3]-w1 <= 0 || c[6]-w2 <= 0 || c[7]-w2 <= 0 {
			continue
		}

		c[1] += w1
		c[5] += w2
		c[8] += w2
		c[3] -= w1
		c[6] -= w2
		c[7] -= w2
	}
}

// propagate streams the speeds of the cells surrounding (ii, jj) into the
// matching slots of the scratch cell at (ii, jj). Every speed arrives from
// the neighbor opposite its direction of travel, wrapping periodically at
// all four grid edges.
func propagate(ii, jj int, cells, tmp *Grid) {
	yn := (jj + 1) % cells.Ny
	xe := (ii + 1) % cells.Nx
	ys := jj - 1
	if ys < 0 {
		ys = cells.Ny - 1
	}
	xw := ii - 1
	if xw < 0 {
		xw = cells.Nx - 1
	}

	t := tmp.At(ii, jj)
	t[0] = cells.At(ii, jj)[0]
	t[1] = cells.At(xw, jj)[1]
	t[2] = cells.At(ii, ys)[2]
	t[3] = cells.At(xe, jj)[3]
	t[4] = cells.At(ii, yn)[4]
	t[5] = cells.At(xw, ys)[5]
	t[6] = cells.At(xe, ys)[6]
	t[7] = cells.At(xe, yn)[7]
	t[8] = cells.At(xw, yn)[8]
}

// rebound applies the no-slip bounce-back condition at obstacle cells:
// every streamed speed in the scratch grid is written back into the main
// grid pointing the opposite way. Fluid cells are untouched. Must run after
// propagate has filled the scratch cell.
func rebound(ii, jj int, cells, tmp *Grid, obst *Mask) {
	if !obst.At(ii, jj) {
		return
	}

	c, t := cells.At(ii, jj), tmp.At(ii, jj)
	c[1], c[3] = t[3], t[1]
	c[2], c[4] = t[4], t[2]
	c[5], c[7] = t[7], t[5]
	c[6], c[8] = t[8], t[6]
}

// collide relaxes the streamed speeds of the fluid cell at (ii, jj) toward
// the local Maxwell-Boltzmann equilibrium at rate par.Omega, reading the
// scratch grid and writing the main grid. Obstacle cells are untouched.
// Omega outside (0, 2) or a vanishing local density is not guarded.
func collide(par *Params, ii, jj int, cells, tmp *Grid, obst *Mask) {
	const (
		cSq = 1.0 / 3.0 // square of the speed of sound
		w0  = 4.0 / 9.0
		w1  = 1.0 / 9.0
		w2  = 1.0 / 36.0
	)

	if obst.At(ii, jj) {
		return
	}

	t := tmp.At(ii, jj)

	density := t.Density()
	ux, uy := t.Velocity(density)
	uSq := ux*ux + uy*uy

	// Velocity projected onto each of the eight moving directions.
	var u [NSpeeds]float32
	u[1] = ux
	u[2] = uy
	u[3] = -ux
	u[4] = -uy
	u[5] = ux + uy
	u[6] = -ux + uy
	u[7] = -ux - uy
	u[8] = ux - uy

	var equ [NSpeeds]float32
	equ[0] = w0 * density * (1 - uSq/(2*cSq))
	for kk := 1; kk < NSpeeds; kk++ {
		w := float32(w1)
		if kk >= 5 {
			w = w2
		}
		equ[kk] = w * density *
			(1 + u[kk]/cSq + u[kk]*u[kk]/(2*cSq*cSq) - uSq/(2*cSq))
	}

	c := cells.At(ii, jj)
	for kk := 0; kk < NSpeeds; kk++ {
		c[kk] = t[kk] + par.Omega*(equ[kk]-t[kk])
	}
}
