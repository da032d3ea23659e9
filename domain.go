package d2q9

// Domain is the contiguous band of rows owned by one worker. Rows are dealt
// round-robin by index modulo the worker count, which makes every band's
// size either floor(ny/size) or one more, and makes Start the number of
// rows dealt to lower ranks. The union of all domains tiles [0, ny) exactly
// once.
type Domain struct {
	Start, Size int
}

// NewDomain computes the row band owned by the given rank. It is a pure
// function of its arguments, so every worker can recompute any other
// worker's band and all the answers agree.
func NewDomain(ny, size, rank int) Domain {
	d := Domain{}
	for jj := 0; jj < ny; jj++ {
		if jj%size == rank {
			d.Size++
		}
		if jj%size < rank {
			d.Start++
		}
	}
	return d
}

// End returns the row one past the last owned row.
func (d Domain) End() int { return d.Start + d.Size }

// Contains reports whether row jj belongs to the domain.
func (d Domain) Contains(jj int) bool {
	return jj >= d.Start && jj < d.End()
}
