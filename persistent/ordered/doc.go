/*
Package ordered implements persistent (immutable) sorted collections: a Set of
elements and a key/value Map, both backed by one size-balanced binary search
tree engine.

The engine keeps subtree sizes in every node and restores balance after each
structural change with single or double rotations, following the
weight-balanced trees of Adams ("Implementing Sets Efficiently in a Functional
Language", 1992). Set algebra (union, intersection, difference) uses the hedge
technique: comparison bounds travel down the recursion, so that subtrees
provably outside the relevant key range are trimmed away before combining.

All operations have copy-on-write behaviour: “modifying” a Set or Map returns
a new incarnation, allocating new nodes only along the touched path and
sharing every untouched subtree with the original. Previously returned values
are never mutated, which makes them safe to share across concurrent readers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.ordered'.
func tracer() tracing.Trace {
	return tracing.Select("persist.ordered")
}
