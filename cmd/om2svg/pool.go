package main

import (
	"runtime"
	"sync"

	"github.com/alnah/go-om2svg/internal/report"
)

// GeneratorPool manages report generators for parallel workers.
// A generator is not safe for concurrent use, so each worker holds one
// for the duration of its jobs. Generators are created lazily on first
// acquire to avoid startup cost when few files are converted.
type GeneratorPool struct {
	style   string
	size    int
	sem     chan *report.Generator
	mu      sync.Mutex
	created int
}

// NewGeneratorPool creates a pool with capacity for n generators using
// the given highlight style.
func NewGeneratorPool(n int, style string) *GeneratorPool {
	if n < 1 {
		n = 1
	}
	return &GeneratorPool{
		style: style,
		size:  n,
		sem:   make(chan *report.Generator, n),
	}
}

// Compile-time check that GeneratorPool implements ReportPool.
var _ ReportPool = (*GeneratorPool)(nil)

// Acquire gets a generator from the pool, creating one if needed.
// Blocks if all generators are in use.
func (p *GeneratorPool) Acquire() (*report.Generator, error) {
	select {
	case g := <-p.sem:
		return g, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		g, err := report.NewGenerator(p.style)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return g, nil
	}
	p.mu.Unlock()

	return <-p.sem, nil
}

// Release returns a generator to the pool.
func (p *GeneratorPool) Release(g *report.Generator) {
	if g == nil {
		return
	}
	p.sem <- g
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Printing is CPU-bound.
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 16 {
		return 16
	}
	return n
}
