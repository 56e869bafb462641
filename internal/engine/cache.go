package engine

import (
	"sync"

	"github.com/roach88/zigzag/internal/diagram"
)

// Normalizer memoizes NormalizeDiagram results. The cache keys on the
// content-addressed diagram hash, never on identity: two structurally
// equal diagrams share one cache entry. Caching is purely additive; a
// Normalizer returns exactly what NormalizeDiagram would.
//
// The map is guarded by a mutex so a concurrent host may share one
// Normalizer; the values themselves are immutable and need no locking.
type Normalizer struct {
	mu   sync.Mutex
	memo map[string]diagram.Diagram
}

// NewNormalizer creates an empty memoizing normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{memo: make(map[string]diagram.Diagram)}
}

// Normalize returns the normal form of d, consulting the memo first.
// Errors are never cached: invalid input fails on every call.
func (n *Normalizer) Normalize(d diagram.Diagram) (diagram.Diagram, error) {
	if err := diagram.CheckDiagram(d); err != nil {
		return nil, err
	}
	key, err := diagram.DiagramHash(d)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	cached, ok := n.memo[key]
	n.mu.Unlock()
	if ok {
		return cached, nil
	}

	normalized, err := normalizeDiagram(d)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	n.memo[key] = normalized
	// The normal form is its own fixed point; prime its entry too so a
	// follow-up Normalize(normalized) is a cache hit.
	if resultKey, err := diagram.DiagramHash(normalized); err == nil {
		n.memo[resultKey] = normalized
	}
	n.mu.Unlock()

	return normalized, nil
}

// Size reports the number of memoized entries.
func (n *Normalizer) Size() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.memo)
}
