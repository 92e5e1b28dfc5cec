/*
Package formatter prints WAVL trees to consoles with fixed-width fonts.

Trees are printed sideways: the root sits at the left margin, right
subtrees above and left subtrees below their parent, with every level
indented. Each node occupies a single line of the form

	key: value [r=rank s=size]

Labels are measured in display cells (UAX#11) and truncated to fit the
configured line width, so wide East Asian keys do not break the layout.
Nodes with a rank difference of 2 to one of their children are
highlighted, leaves are printed in a separate colour.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wavl'
func tracer() tracing.Trace {
	return tracing.Select("wavl")
}
