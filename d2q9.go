package d2q9

import (
	"log"

	"github.com/phil-mansfield/d2q9/comm"
)

// Message tags for the two halo directions and the final gather.
const (
	tagHaloUp = iota
	tagHaloDown
	tagGather
)

// Params holds the physical and numerical parameters of a run.
type Params struct {
	Nx, Ny      int     // grid width and height in cells
	MaxIters    int     // number of time steps
	ReynoldsDim int     // characteristic dimension for the Reynolds number
	Density     float32 // initial density per cell
	Accel       float32 // forcing magnitude applied to the accelerated row
	Omega       float32 // BGK relaxation parameter
}

// Worker advances one band of the grid through the time-step loop. Each
// worker owns a full-size pair of grid buffers but only ever writes the
// rows of its own band, plus the two halo rows filled by its neighbors.
type Worker struct {
	par    *Params
	cells  *Grid // post-collision state, authoritative at step start
	tmp    *Grid // scratch grid written by propagate
	obst   *Mask
	dom    Domain
	comm   *comm.Comm
	master int

	sendBuf, recvBuf []float32

	avVels []float32
}

// NewWorker creates the worker for one rank of the world behind cm. The
// master rank aggregates the per-step statistics and the final grid. obst
// is shared read-only between workers.
func NewWorker(par *Params, obst *Mask, cm *comm.Comm, master int) *Worker {
	return &Worker{
		par:     par,
		cells:   NewGrid(par.Nx, par.Ny, par.Density),
		tmp:     NewGrid(par.Nx, par.Ny, 0),
		obst:    obst,
		dom:     NewDomain(par.Ny, cm.Size(), cm.Rank()),
		comm:    cm,
		master:  master,
		sendBuf: make([]float32, par.Nx*NSpeeds),
		recvBuf: make([]float32, par.Nx*NSpeeds),
		avVels:  make([]float32, 0, par.MaxIters),
	}
}

// Run executes the full time-step loop and then joins the final gather.
// Every step appends one value to the average velocity series.
func (w *Worker) Run() {
	for tt := 0; tt < w.par.MaxIters; tt++ {
		w.avVels = append(w.avVels, w.step())
	}
	w.gather()
}

// step advances the worker's band by one time step and returns the average
// fluid velocity after the step.
func (w *Worker) step() float32 {
	if w.dom.Contains(w.par.Ny - 2) {
		accelerate(w.par, w.cells, w.obst)
	}

	w.haloExchange()

	for jj := w.dom.Start; jj < w.dom.End(); jj++ {
		for ii := 0; ii < w.par.Nx; ii++ {
			propagate(ii, jj, w.cells, w.tmp)
			rebound(ii, jj, w.cells, w.tmp, w.obst)
		}
	}
	for jj := w.dom.Start; jj < w.dom.End(); jj++ {
		for ii := 0; ii < w.par.Nx; ii++ {
			collide(w.par, ii, jj, w.cells, w.tmp, w.obst)
		}
	}

	return avVelocity(w.cells, w.obst, w.dom, w.comm, w.master)
}

// haloExchange trades boundary rows with the two ring neighbors so that the
// rows just outside the band are current before propagate reads them. The
// first owned row travels upstream to the predecessor and the last owned
// row travels downstream to the successor, on separate tags so the two
// concurrent exchanges cannot cross. Both exchanges have fully completed
// when haloExchange returns. A single worker wraps onto itself through the
// periodic propagate indexing, so it skips the exchange.
func (w *Worker) haloExchange() {
	if w.comm.Size() == 1 {
		return
	}

	rank, size := w.comm.Rank(), w.comm.Size()
	ny := w.par.Ny
	prev := (rank + size - 1) % size
	next := (rank + 1) % size

	w.cells.PackRow(w.dom.Start, w.sendBuf)
	w.comm.Sendrecv(prev, w.sendBuf, next, w.recvBuf, tagHaloUp)
	w.cells.UnpackRow(w.dom.End()%ny, w.recvBuf)

	w.cells.PackRow(w.dom.End()-1, w.sendBuf)
	w.comm.Sendrecv(next, w.sendBuf, prev, w.recvBuf, tagHaloDown)
	w.cells.UnpackRow((w.dom.Start+ny-1)%ny, w.recvBuf)
}

// gather reassembles the full grid at the master. Every other worker ships
// its band in one message, and the master recomputes each rank's domain to
// know where the rows land. After gather only the master's grid is
// authoritative.
func (w *Worker) gather() {
	if w.comm.Size() == 1 {
		return
	}

	nx := w.par.Nx
	rowLen := nx * NSpeeds

	if w.comm.Rank() != w.master {
		buf := make([]float32, w.dom.Size*rowLen)
		for jj := 0; jj < w.dom.Size; jj++ {
			w.cells.PackRow(w.dom.Start+jj, buf[jj*rowLen:(jj+1)*rowLen])
		}
		w.comm.Send(w.master, tagGather, buf)
		return
	}

	for rank := 0; rank < w.comm.Size(); rank++ {
		if rank == w.master {
			continue
		}

		dom := NewDomain(w.par.Ny, w.comm.Size(), rank)
		buf := make([]float32, dom.Size*rowLen)
		w.comm.Recv(rank, tagGather, buf)
		for jj := 0; jj < dom.Size; jj++ {
			w.cells.UnpackRow(dom.Start+jj, buf[jj*rowLen:(jj+1)*rowLen])
		}
	}
}

// Cells returns the worker's grid. Meaningful for the master after Run
// returns; other workers' grids are stale outside their own band.
func (w *Worker) Cells() *Grid { return w.cells }

// AvVels returns the average velocity series. Only the master's series
// holds global averages.
func (w *Worker) AvVels() []float32 { return w.avVels }

// Domain returns the worker's row band.
func (w *Worker) Domain() Domain { return w.dom }

// Run simulates par.MaxIters time steps of the flow over the given
// obstacles, split across the given number of workers, and returns the
// gathered final grid along with the average velocity series. Rank 0 acts
// as the master.
func Run(par *Params, obst *Mask, workers int) (*Grid, []float32) {
	if workers < 1 || workers > par.Ny {
		log.Fatalf(
			"Worker count is %d, but must be in the range [1, %d].",
			workers, par.Ny,
		)
	}

	world := comm.NewWorld(workers)
	out := make(chan int, workers)

	for rank := 1; rank < workers; rank++ {
		go func(rank int) {
			w := NewWorker(par, obst, world.Comm(rank), 0)
			w.Run()
			out <- rank
		}(rank)
	}

	master := NewWorker(par, obst, world.Comm(0), 0)
	master.Run()

	for i := 1; i < workers; i++ {
		<-out
	}

	return master.cells, master.avVels
}
