// Package animal implements the "animal" capabilities: prey that can flee and
// predators that can hunt, with dispatch that never inspects concrete types.
package animal

// Fleer is the capability of fleeing from a predator.
type Fleer interface {
	Flee()
}

// Hunter is the capability of hunting prey.
type Hunter interface {
	Hunt()
}

// MakeFlee invokes the flee capability through its contract.
// The caller supplies any Fleer; no concrete type is examined here.
func MakeFlee(p Fleer) {
	p.Flee()
}

// MakeHunt invokes the hunt capability through its contract.
func MakeHunt(p Hunter) {
	p.Hunt()
}
