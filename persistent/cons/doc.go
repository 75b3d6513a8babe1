/*
Package cons implements an immutable persistent list, built from singly-linked
cons cells.

An immutable persistent list has copy-on-write behaviour: Each “modification” of
the list (prepending, appending, mapping, …) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write retains the unaffected suffix of the
original and allocates new cells only for the prefix that changes. Thus, most of
the structure/memory is shared between original and copy, transparently to
clients.

Immutable lists are inherently concurrency-safe.

List-producing operations internally construct their result through a Buffer, a
mutable builder with an O(1) tail pointer, so that building a list of n elements
costs O(n) rather than the O(n²) of repeated immutable appends. A Buffer may also
be used directly for incremental construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cons

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.cons'.
func tracer() tracing.Trace {
	return tracing.Select("persist.cons")
}
