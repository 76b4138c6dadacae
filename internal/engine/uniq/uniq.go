// Package uniq collects the unique word tokens of a corpus.
package uniq

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Collector accumulates unique tokens across transcript segments. Safe for
// concurrent use; insertion order is preserved for stable reporting.
type Collector struct {
	mu    sync.Mutex
	seen  mapset.Set[string]
	order []string
}

// New creates an empty Collector.
func New() *Collector {
	return &Collector{seen: mapset.NewThreadUnsafeSet[string]()}
}

// Add records the given tokens and returns those not seen before, in the
// order they first appeared.
func (c *Collector) Add(tokens ...string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fresh []string
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if c.seen.Add(tok) {
			c.order = append(c.order, tok)
			fresh = append(fresh, tok)
		}
	}
	return fresh
}

// Words returns all unique tokens in first-occurrence order.
func (c *Collector) Words() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of unique tokens collected.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen.Cardinality()
}
