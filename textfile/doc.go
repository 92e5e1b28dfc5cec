/*
Package textfile provides API helpers to load text files of key/value pairs
into WAVL trees.

Files are read line by line. Every non-blank line not starting with '#'
holds one entry. The loader uses a bounded asynchronous prefetch pipeline
internally: a reader goroutine broadcasts batches of lines, which are
parsed and inserted into the tree by the calling goroutine. The API stays
synchronous and the tree is never touched by more than one goroutine.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wavl'
func tracer() tracing.Trace {
	return tracing.Select("wavl")
}
