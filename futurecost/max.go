package futurecost

import "github.com/katalvlaran/dsteiner/core"

// Max composes two estimators by taking their pointwise maximum, which is
// itself an admissible lower bound whenever both inputs are.
type Max struct {
	a, b FutureCost
}

// NewMax returns a FutureCost that is the max of a and b.
func NewMax(a, b FutureCost) *Max {
	return &Max{a: a, b: b}
}

// Cost returns max(a.Cost(label), b.Cost(label)).
func (m *Max) Cost(label core.Label) core.Cost {
	ca, cb := m.a.Cost(label), m.b.Cost(label)
	if ca > cb {
		return ca
	}
	return cb
}
