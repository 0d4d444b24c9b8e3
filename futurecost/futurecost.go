package futurecost

import "github.com/katalvlaran/dsteiner/core"

// FutureCost lower-bounds the cost of extending the partial Steiner tree
// represented by a label into one that also spans every terminal outside
// the label's subset, plus the root.
type FutureCost interface {
	Cost(label core.Label) core.Cost
}
