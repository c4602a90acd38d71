package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one
// execution; every caller receives the leader's result. The standings
// read path keys on tournament ID so a burst of table reads costs one
// repository round trip.
type SingleFlight struct {
	mu       sync.Mutex
	inFlight map[string]*flightCall
}

type flightCall struct {
	done  chan struct{}
	value any
	err   error
}

// Do runs fn once per key among concurrent callers. The third return
// value reports whether this caller shared another call's result.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.inFlight == nil {
		g.inFlight = make(map[string]*flightCall)
	}

	if c, ok := g.inFlight[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.value, c.err, true
	}

	c := &flightCall{done: make(chan struct{})}
	g.inFlight[key] = c
	g.mu.Unlock()

	c.value, c.err = fn()
	close(c.done)

	g.mu.Lock()
	delete(g.inFlight, key)
	g.mu.Unlock()

	return c.value, c.err, false
}
