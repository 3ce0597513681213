// Package pool provides a simple worker pool for the CPU-bound parts of the
// protocol: safe-prime search and per-peer proof generation.
package pool

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"
)

// command tells an idle worker what to do: either evaluate f at a fixed
// index, or keep evaluating f until enough non-nil results were found.
type command struct {
	search bool
	// number of results that still need to be produced
	ctr *int64
	// index to evaluate f at, when not searching
	i       int
	f       func(int) interface{}
	results []interface{}
}

func worker(commands <-chan command, done chan<- struct{}) {
	for c := range commands {
		if c.search {
			for atomic.LoadInt64(c.ctr) > 0 {
				res := c.f(0)
				if res == nil {
					continue
				}
				i := atomic.AddInt64(c.ctr, -1)
				done <- struct{}{}
				if i < 0 {
					break
				}
				c.results[i] = res
			}
		} else {
			c.results[c.i] = c.f(c.i)
			atomic.AddInt64(c.ctr, -1)
			done <- struct{}{}
		}
	}
}

// Pool is a pool of long-lived workers.
//
// Functions taking a *Pool accept a nil receiver, and then do the equivalent
// work on the calling goroutine instead.
type Pool struct {
	// shared command channel; workers steal from it
	commands chan command
	// signals one finished task
	done        chan struct{}
	workerCount int
}

// NewPool creates a pool with the given number of workers.
// If count <= 0, the number of available CPUs is used.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		commands:    make(chan command),
		done:        make(chan struct{}),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go worker(p.commands, p.done)
	}
	return p
}

// TearDown stops the pool's workers. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	close(p.commands)
}

// Search queries f until count successes are found.
//
// f tries a single candidate, returning nil when that candidate fails.
// The result contains the first count successes.
func (p *Pool) Search(count int, f func() interface{}) []interface{} {
	if p == nil {
		results := make([]interface{}, count)
		for i := 0; i < count; i++ {
			for results[i] = f(); results[i] == nil; results[i] = f() {
			}
		}
		return results
	}

	results := make([]interface{}, count)
	ctr := int64(count)
	cmd := command{
		search:  true,
		ctr:     &ctr,
		f:       func(int) interface{} { return f() },
		results: results,
	}
	for i := 0; i < p.workerCount; i++ {
		p.commands <- cmd
	}
	for atomic.LoadInt64(&ctr) > 0 {
		<-p.done
	}
	return results
}

// Parallelize returns [f(0), f(1), …, f(count-1)], evaluated concurrently.
func (p *Pool) Parallelize(count int, f func(int) interface{}) []interface{} {
	if p == nil {
		results := make([]interface{}, count)
		for i := 0; i < count; i++ {
			results[i] = f(i)
		}
		return results
	}

	results := make([]interface{}, count)
	ctr := int64(count)
	sent := 0
	for sent < count {
		cmd := command{
			i:       sent,
			ctr:     &ctr,
			f:       f,
			results: results,
		}
		// Drain finished tasks while submitting, otherwise all workers could
		// be blocked on the done channel and never accept a new command.
		select {
		case p.commands <- cmd:
			sent++
		case <-p.done:
		}
	}
	for atomic.LoadInt64(&ctr) > 0 {
		<-p.done
	}
	return results
}

// LockedReader wraps an io.Reader so that concurrent reads are safe.
// Which goroutine reads which bytes is still raced, but no bytes are ever
// returned twice.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader wraps r.
func NewLockedReader(r io.Reader) *LockedReader {
	return &LockedReader{reader: r}
}

func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}
