/*package comm provides synchronous tagged message passing between a fixed
group of ranked workers running in a single process.

The semantics follow two-sided messaging with fatal errors: a send blocks
until the matching receive runs, a receive blocks until its message
arrives, and a mismatched tag or length panics rather than returning an
error code. A message whose counterpart never shows up deadlocks the run.
*/
package comm

import (
	"fmt"
)

const reduceTag = -1

type packet struct {
	tag  int
	data []float32
}

// World connects a group of workers. Rank i sends to rank j over the
// dedicated unbuffered channel pipes[i][j], so messages between a given
// pair of ranks can never be reordered or cross-delivered.
type World struct {
	size  int
	pipes [][]chan packet
}

// NewWorld creates a communicator for the given number of ranks.
func NewWorld(size int) *World {
	if size < 1 {
		panic(fmt.Sprintf("comm: world size %d is not positive", size))
	}

	w := &World{size: size, pipes: make([][]chan packet, size)}
	for i := range w.pipes {
		w.pipes[i] = make([]chan packet, size)
		for j := range w.pipes[i] {
			w.pipes[i][j] = make(chan packet)
		}
	}
	return w
}

// Comm returns the endpoint used by the given rank.
func (w *World) Comm(rank int) *Comm {
	if rank < 0 || rank >= w.size {
		panic(fmt.Sprintf("comm: rank %d outside world of size %d", rank, w.size))
	}
	return &Comm{rank: rank, w: w}
}

// Comm is one rank's endpoint into a World.
type Comm struct {
	rank int
	w    *World
}

// Rank returns the rank of this endpoint.
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of ranks in the world.
func (c *Comm) Size() int { return c.w.size }

// Send copies data and ships it to the given rank under the given tag,
// blocking until the receiver accepts it. The receiver owns the copy, so
// the caller may reuse data immediately.
func (c *Comm) Send(to, tag int, data []float32) {
	buf := make([]float32, len(data))
	copy(buf, data)
	c.w.pipes[c.rank][to] <- packet{tag: tag, data: buf}
}

// Recv blocks until a message from the given rank arrives and copies it
// into data. The message must carry the expected tag and exactly
// len(data) values.
func (c *Comm) Recv(from, tag int, data []float32) {
	p := <-c.w.pipes[from][c.rank]
	if p.tag != tag {
		panic(fmt.Sprintf(
			"comm: rank %d expected tag %d from rank %d, got tag %d",
			c.rank, tag, from, p.tag,
		))
	}
	if len(p.data) != len(data) {
		panic(fmt.Sprintf(
			"comm: rank %d expected %d values from rank %d, got %d",
			c.rank, len(data), from, len(p.data),
		))
	}
	copy(data, p.data)
}

// Sendrecv ships send to one rank and fills recv with the message arriving
// from another, both under the same tag. The send is posted concurrently,
// so a ring of workers can all call Sendrecv at the same time without
// deadlocking. Both halves have completed when Sendrecv returns.
func (c *Comm) Sendrecv(to int, send []float32, from int, recv []float32, tag int) {
	done := make(chan struct{})
	go func() {
		c.Send(to, tag, send)
		close(done)
	}()
	c.Recv(from, tag, recv)
	<-done
}

// Reduce element-wise sums vals across every rank. The totals are
// accumulated in rank order, so the result is deterministic. Reduce
// returns the totals at the root rank and nil at every other rank.
func (c *Comm) Reduce(root int, vals []float32) []float32 {
	if c.rank != root {
		c.Send(root, reduceTag, vals)
		return nil
	}

	tot := make([]float32, len(vals))
	buf := make([]float32, len(vals))
	for rank := 0; rank < c.w.size; rank++ {
		if rank == root {
			copy(buf, vals)
		} else {
			c.Recv(rank, reduceTag, buf)
		}
		for i := range tot {
			tot[i] += buf[i]
		}
	}
	return tot
}
