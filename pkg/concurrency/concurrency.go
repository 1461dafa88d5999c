package concurrency

// DefaultMax default max
const DefaultMax = 16

// GoLimit bounds the number of goroutines in flight
type GoLimit struct {
	ch chan struct{}
}

// NewGoLimit new go limit
func NewGoLimit(max int) *GoLimit {
	if max <= 0 {
		max = DefaultMax
	}

	return &GoLimit{
		ch: make(chan struct{}, max),
	}
}

// Add blocks while max goroutines are running
func (g *GoLimit) Add() {
	g.ch <- struct{}{}
}

// Done release one slot
func (g *GoLimit) Done() {
	<-g.ch
}
